package recipeclip_test

import (
	"testing"

	"github.com/recipeclip/recipeclip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeRecord_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts record with title and ingredients", func(t *testing.T) {
		t.Parallel()

		rec := &recipeclip.RecipeRecord{
			Title:       "Shakshuka",
			Ingredients: []recipeclip.Section{{Name: "Ingredients", Items: []string{"4 eggs"}}},
		}

		assert.NoError(t, rec.Validate())
	})

	t.Run("rejects empty title", func(t *testing.T) {
		t.Parallel()

		rec := &recipeclip.RecipeRecord{
			Title:       "   ",
			Ingredients: []recipeclip.Section{{Items: []string{"4 eggs"}}},
		}

		err := rec.Validate()
		require.Error(t, err)
		assert.Equal(t, recipeclip.EINCOMPLETE, recipeclip.ErrorCode(err))
	})

	t.Run("rejects record without ingredient items", func(t *testing.T) {
		t.Parallel()

		rec := &recipeclip.RecipeRecord{
			Title:       "Shakshuka",
			Ingredients: []recipeclip.Section{{Name: "Sauce", Items: []string{"  "}}},
		}

		err := rec.Validate()
		require.Error(t, err)
		assert.Equal(t, recipeclip.EINCOMPLETE, recipeclip.ErrorCode(err))
	})
}

func TestFlattenSections(t *testing.T) {
	t.Parallel()

	sections := []recipeclip.Section{
		{Name: "Sauce", Items: []string{"1 can tomatoes", "2 cloves garlic"}},
		{Name: "Topping", Items: []string{"feta"}},
	}

	assert.Equal(t, []string{"1 can tomatoes", "2 cloves garlic", "feta"}, recipeclip.FlattenSections(sections))
}

func TestFlattenSections_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, recipeclip.FlattenSections(nil))
}

func TestSplitSections(t *testing.T) {
	t.Parallel()

	t.Run("header lines start named sections", func(t *testing.T) {
		t.Parallel()

		lines := []string{"Sauce:", "1 can tomatoes", "2 cloves garlic", "Topping:", "feta"}

		got := recipeclip.SplitSections(lines)

		require.Len(t, got, 2)
		assert.Equal(t, "Sauce", got[0].Name)
		assert.Equal(t, []string{"1 can tomatoes", "2 cloves garlic"}, got[0].Items)
		assert.Equal(t, "Topping", got[1].Name)
		assert.Equal(t, []string{"feta"}, got[1].Items)
	})

	t.Run("lines before first header form unnamed leading section", func(t *testing.T) {
		t.Parallel()

		lines := []string{"salt", "Dough:", "flour"}

		got := recipeclip.SplitSections(lines)

		require.Len(t, got, 2)
		assert.Empty(t, got[0].Name)
		assert.Equal(t, []string{"salt"}, got[0].Items)
		assert.Equal(t, "Dough", got[1].Name)
	})

	t.Run("empty lines skipped", func(t *testing.T) {
		t.Parallel()

		got := recipeclip.SplitSections([]string{"", "salt", "  ", "pepper"})

		require.Len(t, got, 1)
		assert.Equal(t, []string{"salt", "pepper"}, got[0].Items)
	})

	t.Run("header without items is dropped", func(t *testing.T) {
		t.Parallel()

		got := recipeclip.SplitSections([]string{"Sauce:", "Topping:", "feta"})

		require.Len(t, got, 1)
		assert.Equal(t, "Topping", got[0].Name)
	})
}

// Flatten/reconstruct round-trip: flatten(split(flatten(S))) == flatten(S).
func TestSplitSections_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := [][]recipeclip.Section{
		{{Name: "Sauce", Items: []string{"tomatoes", "garlic"}}, {Name: "Topping", Items: []string{"feta"}}},
		{{Name: "", Items: []string{"eggs", "milk"}}},
		{{Name: "Steps", Items: []string{"Preheat oven", "Whisk eggs", "Bake 20 min"}}},
	}

	for _, sections := range inputs {
		flat := recipeclip.FlattenSections(sections)
		again := recipeclip.FlattenSections(recipeclip.SplitSections(flat))
		assert.Equal(t, flat, again)
	}
}
