package ingest

import "sync"

// urlLocks serializes pipeline runs per canonical URL. Mutexes are created
// lazily on first use and kept for the process lifetime, so the arena grows
// with the set of distinct URLs ingested.
type urlLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// acquire locks the mutex for key, creating it if needed. The caller must
// Unlock the returned mutex when done.
func (l *urlLocks) acquire(key string) *sync.Mutex {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m
}
