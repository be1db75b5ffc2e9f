package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/recipeclip/recipeclip"
)

// Ensure LoggingRecipeService implements recipeclip.RecipeService.
var _ recipeclip.RecipeService = (*LoggingRecipeService)(nil)

// LoggingRecipeService wraps a RecipeService with logging on write paths.
// Reads are left quiet; they dominate volume and carry little signal.
type LoggingRecipeService struct {
	next   recipeclip.RecipeService
	logger *slog.Logger
}

// NewLoggingRecipeService creates a new LoggingRecipeService.
func NewLoggingRecipeService(next recipeclip.RecipeService, logger *slog.Logger) *LoggingRecipeService {
	return &LoggingRecipeService{next: next, logger: logger}
}

// UpsertRecipe delegates to the wrapped service and logs the operation.
func (s *LoggingRecipeService) UpsertRecipe(ctx context.Context, rec *recipeclip.RecipeRecord) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("recipe upsert",
			"source_url", rec.SourceURL,
			"title", rec.Title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpsertRecipe(ctx, rec)
}

// FindRecipeBySourceURL delegates to the wrapped service.
func (s *LoggingRecipeService) FindRecipeBySourceURL(ctx context.Context, sourceURL string) (*recipeclip.RecipeRecord, error) {
	return s.next.FindRecipeBySourceURL(ctx, sourceURL)
}

// FindRecipes delegates to the wrapped service.
func (s *LoggingRecipeService) FindRecipes(ctx context.Context) ([]*recipeclip.RecipeRecord, error) {
	return s.next.FindRecipes(ctx)
}

// UpdateRecipe delegates to the wrapped service and logs the operation.
func (s *LoggingRecipeService) UpdateRecipe(ctx context.Context, upd recipeclip.RecipeUpdate) (rec *recipeclip.RecipeRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Info("recipe update",
			"source_url", upd.SourceURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateRecipe(ctx, upd)
}

// DeleteRecipe delegates to the wrapped service and logs the operation.
func (s *LoggingRecipeService) DeleteRecipe(ctx context.Context, sourceURL string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("recipe delete",
			"source_url", sourceURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRecipe(ctx, sourceURL)
}
