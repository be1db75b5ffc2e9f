// Package http provides the HTTP implementations for recipeclip: the page
// fetcher used by the extraction pipeline and the API server consumed by the
// presentation layer.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/recipeclip/recipeclip"
)

// Fetcher defaults. Recipe pages are rarely large; the byte cap protects
// against unbounded or streamed responses.
const (
	DefaultFetchTimeout = 15 * time.Second
	DefaultMaxBytes     = 5 << 20 // 5 MiB
	DefaultRetryDelay   = 500 * time.Millisecond
)

// userAgent mirrors a desktop browser. Many recipe sites refuse obvious
// bot agents.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// Ensure Fetcher implements recipeclip.Fetcher at compile time.
var _ recipeclip.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page HTML with a single GET. Transient network failures
// are retried once with a short backoff; HTTP status failures and oversized
// responses are not retried.
type Fetcher struct {
	client     *http.Client
	timeout    time.Duration
	maxBytes   int64
	retryDelay time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout. Defaults to DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxBytes sets the response size cap. Defaults to DefaultMaxBytes.
func WithMaxBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBytes = n
	}
}

// WithRetryDelay sets the backoff before the single network retry.
// Defaults to DefaultRetryDelay. Useful for tests.
func WithRetryDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.retryDelay = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:    DefaultFetchTimeout,
		maxBytes:   DefaultMaxBytes,
		retryDelay: DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	html, err := f.fetchOnce(ctx, url)
	if recipeclip.ErrorCode(err) != recipeclip.EUNAVAILABLE {
		return html, err
	}

	// One retry for transient network failures only.
	select {
	case <-ctx.Done():
		return "", recipeclip.Errorf(recipeclip.EUNAVAILABLE, "fetch canceled: %v", ctx.Err())
	case <-time.After(f.retryDelay):
	}

	return f.fetchOnce(ctx, url)
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", recipeclip.Errorf(recipeclip.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", recipeclip.Errorf(recipeclip.EUNAVAILABLE, "site unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", recipeclip.Errorf(recipeclip.EUPSTREAM, "fetch failed: HTTP %d for %s", resp.StatusCode, url)
	}

	// Read one byte past the cap to detect oversized responses.
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "", recipeclip.Errorf(recipeclip.EUNAVAILABLE, "fetch timed out reading %s", url)
		}
		return "", recipeclip.Errorf(recipeclip.EUNAVAILABLE, "reading response from %s: %v", url, err)
	}
	if int64(len(body)) > f.maxBytes {
		return "", recipeclip.Errorf(recipeclip.ETOOLARGE, "page exceeds %d byte limit", f.maxBytes)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
