package ai_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/recipeclip/recipeclip"
	"github.com/recipeclip/recipeclip/ai"
	"github.com/recipeclip/recipeclip/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRecipeJSON = `{
	"title": "Classic Shakshuka",
	"author": "Example Kitchen",
	"servings": "4",
	"prep_time": 10,
	"cook_time": "20 minutes",
	"total_time": 0,
	"image_url": "https://example.com/shakshuka.jpg",
	"ingredients": [{"section": "", "items": ["2 tbsp olive oil", "4 large eggs"]}],
	"steps": [{"section": "", "items": ["Heat the oil.", "Crack in the eggs."]}]
}`

func reducedPage() *recipeclip.ReducedPage {
	return &recipeclip.ReducedPage{
		Title: "Classic Shakshuka",
		Text:  "Ingredients\n- 2 tbsp olive oil\n- 4 large eggs\nInstructions\n- Heat the oil.\n- Crack in the eggs.",
	}
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("parses well formed output", func(t *testing.T) {
		t.Parallel()

		completer := &mock.Completer{
			CompleteFn: func(_ context.Context, _, prompt string) (string, error) {
				assert.Contains(t, prompt, "olive oil")
				return validRecipeJSON, nil
			},
		}

		rec, err := ai.NewExtractor(completer).Extract(context.Background(), reducedPage(), "https://example.com/shakshuka")
		require.NoError(t, err)

		assert.Equal(t, "https://example.com/shakshuka", rec.SourceURL)
		assert.Equal(t, "Classic Shakshuka", rec.Title)
		assert.Equal(t, 10, rec.PrepTime)
		assert.Equal(t, 20, rec.CookTime, "prose time should be coerced to minutes")
		assert.Equal(t, "https://example.com/shakshuka.jpg", rec.ImageURL)
		require.Len(t, rec.Ingredients, 1)
		assert.Equal(t, []string{"2 tbsp olive oil", "4 large eggs"}, rec.Ingredients[0].Items)
		require.Len(t, rec.Steps, 1)
		assert.Len(t, rec.Steps[0].Items, 2)
	})

	t.Run("tolerates code fences and commentary", func(t *testing.T) {
		t.Parallel()

		completer := &mock.Completer{
			CompleteFn: func(context.Context, string, string) (string, error) {
				return "Here is the recipe:\n```json\n" + validRecipeJSON + "\n```\nLet me know if you need anything else.", nil
			},
		}

		rec, err := ai.NewExtractor(completer).Extract(context.Background(), reducedPage(), "https://example.com/shakshuka")
		require.NoError(t, err)
		assert.Equal(t, "Classic Shakshuka", rec.Title)
	})

	t.Run("repairs malformed output once", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		completer := &mock.Completer{
			CompleteFn: func(_ context.Context, _, prompt string) (string, error) {
				if calls.Add(1) == 1 {
					return "Sure! The recipe is shakshuka with eggs and tomatoes.", nil
				}
				assert.Contains(t, prompt, "could not be parsed")
				assert.Contains(t, prompt, "shakshuka with eggs")
				return validRecipeJSON, nil
			},
		}

		rec, err := ai.NewExtractor(completer).Extract(context.Background(), reducedPage(), "https://example.com/shakshuka")
		require.NoError(t, err)
		assert.Equal(t, "Classic Shakshuka", rec.Title)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("failed repair returns EMALFORMED without a third call", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		completer := &mock.Completer{
			CompleteFn: func(context.Context, string, string) (string, error) {
				calls.Add(1)
				return "not json at all", nil
			},
		}

		_, err := ai.NewExtractor(completer).Extract(context.Background(), reducedPage(), "https://example.com/shakshuka")
		require.Error(t, err)
		assert.Equal(t, recipeclip.EMALFORMED, recipeclip.ErrorCode(err))
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("missing required keys trigger repair", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		completer := &mock.Completer{
			CompleteFn: func(context.Context, string, string) (string, error) {
				if calls.Add(1) == 1 {
					return `{"title": "Shakshuka"}`, nil
				}
				return validRecipeJSON, nil
			},
		}

		rec, err := ai.NewExtractor(completer).Extract(context.Background(), reducedPage(), "https://example.com/shakshuka")
		require.NoError(t, err)
		assert.Equal(t, "Classic Shakshuka", rec.Title)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("model failure returns EMODEL", func(t *testing.T) {
		t.Parallel()

		completer := &mock.Completer{
			CompleteFn: func(context.Context, string, string) (string, error) {
				return "", errors.New("429 resource exhausted")
			},
		}

		_, err := ai.NewExtractor(completer).Extract(context.Background(), reducedPage(), "https://example.com/shakshuka")
		require.Error(t, err)
		assert.Equal(t, recipeclip.EMODEL, recipeclip.ErrorCode(err))
		assert.Contains(t, recipeclip.ErrorMessage(err), "429")
	})

	t.Run("oversized prompt returns ETOOLARGE without a model call", func(t *testing.T) {
		t.Parallel()

		completer := &mock.Completer{
			CompleteFn: func(context.Context, string, string) (string, error) {
				t.Fatal("model should not be called")
				return "", nil
			},
		}
		counter := &mock.TokenCounter{
			CountTokensFn: func(context.Context, string) (int, error) {
				return 50000, nil
			},
		}

		e := ai.NewExtractor(completer, ai.WithTokenCounter(counter, 30000))
		_, err := e.Extract(context.Background(), reducedPage(), "https://example.com/huge")
		require.Error(t, err)
		assert.Equal(t, recipeclip.ETOOLARGE, recipeclip.ErrorCode(err))
	})

	t.Run("counting failure falls through to the model", func(t *testing.T) {
		t.Parallel()

		completer := &mock.Completer{
			CompleteFn: func(context.Context, string, string) (string, error) {
				return validRecipeJSON, nil
			},
		}
		counter := &mock.TokenCounter{
			CountTokensFn: func(context.Context, string) (int, error) {
				return 0, errors.New("tokenizer unavailable")
			},
		}

		e := ai.NewExtractor(completer, ai.WithTokenCounter(counter, 30000))
		rec, err := e.Extract(context.Background(), reducedPage(), "https://example.com/shakshuka")
		require.NoError(t, err)
		assert.Equal(t, "Classic Shakshuka", rec.Title)
	})

	t.Run("rejects empty reduced page", func(t *testing.T) {
		t.Parallel()

		completer := &mock.Completer{
			CompleteFn: func(context.Context, string, string) (string, error) {
				t.Fatal("model should not be called")
				return "", nil
			},
		}

		_, err := ai.NewExtractor(completer).Extract(context.Background(), &recipeclip.ReducedPage{}, "https://example.com/x")
		require.Error(t, err)
		assert.Equal(t, recipeclip.EINVALID, recipeclip.ErrorCode(err))
	})
}
