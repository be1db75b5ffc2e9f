package recipeclip_test

import (
	"testing"

	"github.com/recipeclip/recipeclip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() *recipeclip.RecipeRecord {
	return &recipeclip.RecipeRecord{
		SourceURL:   "https://x.com/r",
		Title:       "Shakshuka",
		Ingredients: []recipeclip.Section{{Items: []string{"4 eggs", "1 can tomatoes"}}},
		Steps:       []recipeclip.Section{{Items: []string{"Simmer sauce", "Crack in eggs"}}},
	}
}

func TestNormalizeRecipe_DerivesTotalTime(t *testing.T) {
	t.Parallel()

	rec := validRecord()
	rec.PrepTime = 10
	rec.CookTime = 20

	require.NoError(t, recipeclip.NormalizeRecipe(rec))
	assert.Equal(t, 30, rec.TotalTime)
}

func TestNormalizeRecipe_KeepsExplicitTotalTime(t *testing.T) {
	t.Parallel()

	rec := validRecord()
	rec.PrepTime = 10
	rec.CookTime = 20
	rec.TotalTime = 99

	require.NoError(t, recipeclip.NormalizeRecipe(rec))
	assert.Equal(t, 99, rec.TotalTime)
}

func TestNormalizeRecipe_NegativeTimesTreatedAsAbsent(t *testing.T) {
	t.Parallel()

	rec := validRecord()
	rec.PrepTime = -5
	rec.CookTime = 15
	rec.TotalTime = -1

	require.NoError(t, recipeclip.NormalizeRecipe(rec))
	assert.Equal(t, 0, rec.PrepTime)
	assert.Equal(t, 15, rec.TotalTime)
}

func TestNormalizeRecipe_DefaultSectionNames(t *testing.T) {
	t.Parallel()

	rec := validRecord()

	require.NoError(t, recipeclip.NormalizeRecipe(rec))
	assert.Equal(t, "Ingredients", rec.Ingredients[0].Name)
	assert.Equal(t, "Steps", rec.Steps[0].Name)
}

func TestNormalizeRecipe_MultipleSectionsKeepNames(t *testing.T) {
	t.Parallel()

	rec := validRecord()
	rec.Ingredients = []recipeclip.Section{
		{Name: "", Items: []string{"salt"}},
		{Name: "Dough", Items: []string{"flour"}},
	}

	require.NoError(t, recipeclip.NormalizeRecipe(rec))
	assert.Empty(t, rec.Ingredients[0].Name)
	assert.Equal(t, "Dough", rec.Ingredients[1].Name)
}

func TestNormalizeRecipe_DropsEmptyItemsAndSections(t *testing.T) {
	t.Parallel()

	rec := validRecord()
	rec.Ingredients = []recipeclip.Section{
		{Name: "Sauce", Items: []string{"  tomatoes  ", ""}},
		{Name: "Empty", Items: []string{"   "}},
	}

	require.NoError(t, recipeclip.NormalizeRecipe(rec))
	require.Len(t, rec.Ingredients, 1)
	assert.Equal(t, []string{"tomatoes"}, rec.Ingredients[0].Items)
}

func TestNormalizeRecipe_RejectsIncomplete(t *testing.T) {
	t.Parallel()

	rec := &recipeclip.RecipeRecord{SourceURL: "https://x.com/r"}

	err := recipeclip.NormalizeRecipe(rec)
	require.Error(t, err)
	assert.Equal(t, recipeclip.EINCOMPLETE, recipeclip.ErrorCode(err))
}

func TestParseMinutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"PT30M", 30},
		{"PT1H30M", 90},
		{"pt2h", 120},
		{"45 minutes", 45},
		{"1 hour 20 minutes", 80},
		{"1 hr", 60},
		{"1 1/2 hours", 90},
		{"0.5 hour", 30},
		{"90 min", 90},
		{"overnight", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, recipeclip.ParseMinutes(tt.in))
		})
	}
}
