package mock

import (
	"context"

	"github.com/recipeclip/recipeclip"
)

var _ recipeclip.RecipeService = (*RecipeService)(nil)

// RecipeService is a mock implementation of recipeclip.RecipeService.
type RecipeService struct {
	UpsertRecipeFn          func(ctx context.Context, rec *recipeclip.RecipeRecord) error
	FindRecipeBySourceURLFn func(ctx context.Context, sourceURL string) (*recipeclip.RecipeRecord, error)
	FindRecipesFn           func(ctx context.Context) ([]*recipeclip.RecipeRecord, error)
	UpdateRecipeFn          func(ctx context.Context, upd recipeclip.RecipeUpdate) (*recipeclip.RecipeRecord, error)
	DeleteRecipeFn          func(ctx context.Context, sourceURL string) error
}

func (s *RecipeService) UpsertRecipe(ctx context.Context, rec *recipeclip.RecipeRecord) error {
	return s.UpsertRecipeFn(ctx, rec)
}

func (s *RecipeService) FindRecipeBySourceURL(ctx context.Context, sourceURL string) (*recipeclip.RecipeRecord, error) {
	return s.FindRecipeBySourceURLFn(ctx, sourceURL)
}

func (s *RecipeService) FindRecipes(ctx context.Context) ([]*recipeclip.RecipeRecord, error) {
	return s.FindRecipesFn(ctx)
}

func (s *RecipeService) UpdateRecipe(ctx context.Context, upd recipeclip.RecipeUpdate) (*recipeclip.RecipeRecord, error) {
	return s.UpdateRecipeFn(ctx, upd)
}

func (s *RecipeService) DeleteRecipe(ctx context.Context, sourceURL string) error {
	return s.DeleteRecipeFn(ctx, sourceURL)
}
