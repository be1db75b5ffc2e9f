package mock

import (
	"context"

	"github.com/recipeclip/recipeclip"
)

var _ recipeclip.Ingestor = (*Ingestor)(nil)

// Ingestor is a mock implementation of recipeclip.Ingestor.
type Ingestor struct {
	IngestURLFn func(ctx context.Context, rawURL string) (*recipeclip.RecipeRecord, error)
}

func (i *Ingestor) IngestURL(ctx context.Context, rawURL string) (*recipeclip.RecipeRecord, error) {
	return i.IngestURLFn(ctx, rawURL)
}
