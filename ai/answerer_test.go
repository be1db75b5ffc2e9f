package ai_test

import (
	"context"
	"errors"
	"testing"

	"github.com/recipeclip/recipeclip"
	"github.com/recipeclip/recipeclip/ai"
	"github.com/recipeclip/recipeclip/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedRecipe() *recipeclip.RecipeRecord {
	return &recipeclip.RecipeRecord{
		ID:        "rec-1",
		SourceURL: "https://example.com/shakshuka",
		Title:     "Classic Shakshuka",
		Author:    "Example Kitchen",
		Servings:  "4",
		PrepTime:  10,
		CookTime:  20,
		TotalTime: 30,
		Ingredients: []recipeclip.Section{
			{Name: "Sauce", Items: []string{"1 can crushed tomatoes"}},
			{Name: "", Items: []string{"4 large eggs"}},
		},
		Steps: []recipeclip.Section{
			{Name: "", Items: []string{"Simmer the sauce.", "Crack in the eggs."}},
		},
	}
}

func TestAnswerer_Ask(t *testing.T) {
	t.Parallel()

	t.Run("grounds the prompt in the stored record", func(t *testing.T) {
		t.Parallel()

		recipes := &mock.RecipeService{
			FindRecipeBySourceURLFn: func(_ context.Context, sourceURL string) (*recipeclip.RecipeRecord, error) {
				assert.Equal(t, "https://example.com/shakshuka", sourceURL)
				return storedRecipe(), nil
			},
		}
		completer := &mock.Completer{
			CompleteFn: func(_ context.Context, system, prompt string) (string, error) {
				assert.Contains(t, system, "I can only answer questions about this recipe.")
				assert.Contains(t, prompt, "Title: Classic Shakshuka")
				assert.Contains(t, prompt, "1 can crushed tomatoes")
				assert.Contains(t, prompt, "How many eggs do I need?")
				return "You need 4 large eggs.\n", nil
			},
		}

		answer, err := ai.NewAnswerer(completer, recipes).Ask(context.Background(),
			"https://example.com/shakshuka/#reviews", "How many eggs do I need?")
		require.NoError(t, err)
		assert.Equal(t, "You need 4 large eggs.", answer)
	})

	t.Run("unknown recipe passes through ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		recipes := &mock.RecipeService{
			FindRecipeBySourceURLFn: func(context.Context, string) (*recipeclip.RecipeRecord, error) {
				return nil, recipeclip.Errorf(recipeclip.ENOTFOUND, "recipe not found")
			},
		}
		completer := &mock.Completer{
			CompleteFn: func(context.Context, string, string) (string, error) {
				t.Fatal("model should not be called")
				return "", nil
			},
		}

		_, err := ai.NewAnswerer(completer, recipes).Ask(context.Background(),
			"https://example.com/missing", "How long does it take?")
		require.Error(t, err)
		assert.Equal(t, recipeclip.ENOTFOUND, recipeclip.ErrorCode(err))
	})

	t.Run("model failure returns EMODEL without retry", func(t *testing.T) {
		t.Parallel()

		calls := 0
		recipes := &mock.RecipeService{
			FindRecipeBySourceURLFn: func(context.Context, string) (*recipeclip.RecipeRecord, error) {
				return storedRecipe(), nil
			},
		}
		completer := &mock.Completer{
			CompleteFn: func(context.Context, string, string) (string, error) {
				calls++
				return "", errors.New("deadline exceeded")
			},
		}

		_, err := ai.NewAnswerer(completer, recipes).Ask(context.Background(),
			"https://example.com/shakshuka", "How many eggs?")
		require.Error(t, err)
		assert.Equal(t, recipeclip.EMODEL, recipeclip.ErrorCode(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("rejects blank inputs", func(t *testing.T) {
		t.Parallel()

		a := ai.NewAnswerer(&mock.Completer{}, &mock.RecipeService{})

		_, err := a.Ask(context.Background(), "  ", "How many eggs?")
		assert.Equal(t, recipeclip.EINVALID, recipeclip.ErrorCode(err))

		_, err = a.Ask(context.Background(), "https://example.com/shakshuka", "  ")
		assert.Equal(t, recipeclip.EINVALID, recipeclip.ErrorCode(err))
	})
}

func TestBuildRecipeContext(t *testing.T) {
	t.Parallel()

	text := ai.BuildRecipeContext(storedRecipe())

	assert.Contains(t, text, "Title: Classic Shakshuka")
	assert.Contains(t, text, "Servings: 4")
	assert.Contains(t, text, "Prep time: 10 min | Cook time: 20 min | Total time: 30 min")
	assert.Contains(t, text, "- Sauce:")
	assert.Contains(t, text, "* 1 can crushed tomatoes")
	assert.Contains(t, text, "1. Simmer the sauce.")
	assert.Contains(t, text, "2. Crack in the eggs.")
}

func TestBuildRecipeContext_ZeroTimesRenderNA(t *testing.T) {
	t.Parallel()

	rec := storedRecipe()
	rec.PrepTime, rec.CookTime, rec.TotalTime = 0, 0, 0

	text := ai.BuildRecipeContext(rec)
	assert.Contains(t, text, "Prep time: N/A | Cook time: N/A | Total time: N/A")
}
