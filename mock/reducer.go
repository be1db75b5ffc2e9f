package mock

import "github.com/recipeclip/recipeclip"

var _ recipeclip.Reducer = (*Reducer)(nil)

// Reducer is a mock implementation of recipeclip.Reducer.
type Reducer struct {
	ReduceFn func(html string) (*recipeclip.ReducedPage, error)
}

func (r *Reducer) Reduce(html string) (*recipeclip.ReducedPage, error) {
	return r.ReduceFn(html)
}
