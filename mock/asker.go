package mock

import (
	"context"

	"github.com/recipeclip/recipeclip"
)

var _ recipeclip.Asker = (*Asker)(nil)

// Asker is a mock implementation of recipeclip.Asker.
type Asker struct {
	AskFn func(ctx context.Context, sourceURL, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, sourceURL, question string) (string, error) {
	return a.AskFn(ctx, sourceURL, question)
}
