package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/recipeclip/recipeclip"
)

// Compile-time interface verification.
var _ recipeclip.RecipeService = (*RecipeService)(nil)

// RecipeService implements recipeclip.RecipeService using SQLite. The
// canonical source URL carries a UNIQUE constraint; upserts replace the
// previous record for the same URL in place.
type RecipeService struct {
	db *DB
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(db *DB) *RecipeService {
	return &RecipeService{db: db}
}

const recipeColumns = "id, source_url, title, author, servings, prep_time, cook_time, total_time, ingredients, steps, image_url, content_hash, created_at, updated_at"

// syntheticKey builds a stable storage key for records without a source
// URL, derived from the recipe content itself.
func syntheticKey(rec *recipeclip.RecipeRecord) string {
	seed := rec.Title + "|" + strings.Join(recipeclip.FlattenSections(rec.Ingredients), "\n")
	return fmt.Sprintf("generated:%016x", xxhash.Sum64String(seed))
}

// UpsertRecipe inserts the record or fully replaces the row with the same
// canonical source URL. The original row's id and created_at survive a
// replace; the caller's rec is updated to reflect the stored row.
func (s *RecipeService) UpsertRecipe(ctx context.Context, rec *recipeclip.RecipeRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.SourceURL = recipeclip.CanonicalURL(rec.SourceURL)
	if rec.SourceURL == "" {
		rec.SourceURL = syntheticKey(rec)
	}

	ingredients, err := json.Marshal(rec.Ingredients)
	if err != nil {
		return err
	}
	steps, err := json.Marshal(rec.Steps)
	if err != nil {
		return err
	}

	id := uuid.New().String()
	now := time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO recipes (`+recipeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_url) DO UPDATE SET
			title = excluded.title,
			author = excluded.author,
			servings = excluded.servings,
			prep_time = excluded.prep_time,
			cook_time = excluded.cook_time,
			total_time = excluded.total_time,
			ingredients = excluded.ingredients,
			steps = excluded.steps,
			image_url = excluded.image_url,
			content_hash = excluded.content_hash,
			updated_at = excluded.updated_at
	`, id, rec.SourceURL, rec.Title, rec.Author, rec.Servings,
		rec.PrepTime, rec.CookTime, rec.TotalTime,
		string(ingredients), string(steps), rec.ImageURL, rec.ContentHash,
		now.Format(time.RFC3339), now.Format(time.RFC3339))
	if err != nil {
		return err
	}

	stored, err := s.FindRecipeBySourceURL(ctx, rec.SourceURL)
	if err != nil {
		return err
	}
	rec.ID = stored.ID
	rec.CreatedAt = stored.CreatedAt
	rec.UpdatedAt = stored.UpdatedAt

	return nil
}

// FindRecipeBySourceURL retrieves a record by canonical source URL.
func (s *RecipeService) FindRecipeBySourceURL(ctx context.Context, sourceURL string) (*recipeclip.RecipeRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+recipeColumns+`
		FROM recipes
		WHERE source_url = ?
	`, sourceURL)

	rec, err := scanRecipe(row.Scan)
	if err == sql.ErrNoRows {
		return nil, recipeclip.Errorf(recipeclip.ENOTFOUND, "recipe not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindRecipes retrieves all stored records, newest first.
func (s *RecipeService) FindRecipes(ctx context.Context) ([]*recipeclip.RecipeRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+recipeColumns+`
		FROM recipes
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*recipeclip.RecipeRecord
	for rows.Next() {
		rec, err := scanRecipe(rows.Scan)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// UpdateRecipe applies a sparse patch to an existing record. Flat
// ingredient and step lines are split back into sections, with a line
// ending in ":" starting a new named section. Nothing is written when the
// patched record fails validation.
func (s *RecipeService) UpdateRecipe(ctx context.Context, upd recipeclip.RecipeUpdate) (*recipeclip.RecipeRecord, error) {
	rec, err := s.FindRecipeBySourceURL(ctx, recipeclip.CanonicalURL(upd.SourceURL))
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		rec.Title = *upd.Title
	}
	if upd.Author != nil {
		rec.Author = *upd.Author
	}
	if upd.Servings != nil {
		rec.Servings = *upd.Servings
	}
	if upd.PrepTime != nil {
		rec.PrepTime = *upd.PrepTime
	}
	if upd.CookTime != nil {
		rec.CookTime = *upd.CookTime
	}
	if upd.TotalTime != nil {
		rec.TotalTime = *upd.TotalTime
	}
	if upd.ImageURL != nil {
		rec.ImageURL = *upd.ImageURL
	}
	if upd.Ingredients != nil {
		rec.Ingredients = recipeclip.ApplyDefaultSectionName(
			recipeclip.SplitSections(upd.Ingredients), recipeclip.DefaultIngredientsSection)
	}
	if upd.Steps != nil {
		rec.Steps = recipeclip.ApplyDefaultSectionName(
			recipeclip.SplitSections(upd.Steps), recipeclip.DefaultStepsSection)
	}

	if err := recipeclip.NormalizeRecipe(rec); err != nil {
		return nil, err
	}

	ingredients, err := json.Marshal(rec.Ingredients)
	if err != nil {
		return nil, err
	}
	steps, err := json.Marshal(rec.Steps)
	if err != nil {
		return nil, err
	}

	rec.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE recipes
		SET title = ?, author = ?, servings = ?,
			prep_time = ?, cook_time = ?, total_time = ?,
			ingredients = ?, steps = ?, image_url = ?, updated_at = ?
		WHERE source_url = ?
	`, rec.Title, rec.Author, rec.Servings,
		rec.PrepTime, rec.CookTime, rec.TotalTime,
		string(ingredients), string(steps), rec.ImageURL,
		rec.UpdatedAt.Format(time.RFC3339), rec.SourceURL)
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// DeleteRecipe removes a record. Deleting a non-existent key is not an
// error.
func (s *RecipeService) DeleteRecipe(ctx context.Context, sourceURL string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM recipes WHERE source_url = ?",
		recipeclip.CanonicalURL(sourceURL))
	return err
}

// scanRecipe reads one recipes row via the given scan function.
func scanRecipe(scan func(dest ...any) error) (*recipeclip.RecipeRecord, error) {
	var (
		rec                  recipeclip.RecipeRecord
		ingredients, steps   string
		createdAt, updatedAt string
	)

	err := scan(&rec.ID, &rec.SourceURL, &rec.Title, &rec.Author, &rec.Servings,
		&rec.PrepTime, &rec.CookTime, &rec.TotalTime,
		&ingredients, &steps, &rec.ImageURL, &rec.ContentHash,
		&createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(ingredients), &rec.Ingredients); err != nil {
		return nil, fmt.Errorf("failed to parse ingredients: %w", err)
	}
	if err := json.Unmarshal([]byte(steps), &rec.Steps); err != nil {
		return nil, fmt.Errorf("failed to parse steps: %w", err)
	}

	if rec.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if rec.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &rec, nil
}
