package mock

import (
	"context"

	"github.com/recipeclip/recipeclip"
)

var _ recipeclip.RecipeExtractor = (*RecipeExtractor)(nil)

// RecipeExtractor is a mock implementation of recipeclip.RecipeExtractor.
type RecipeExtractor struct {
	ExtractFn func(ctx context.Context, page *recipeclip.ReducedPage, sourceURL string) (*recipeclip.RecipeRecord, error)
}

func (e *RecipeExtractor) Extract(ctx context.Context, page *recipeclip.ReducedPage, sourceURL string) (*recipeclip.RecipeRecord, error) {
	return e.ExtractFn(ctx, page, sourceURL)
}
