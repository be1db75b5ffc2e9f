package recipeclip

import (
	"context"
	"strings"
	"time"
)

// Section is a named (or unnamed) ordered group of ingredient or step
// strings. Item order within a section and section order within a recipe are
// significant and preserved end-to-end.
type Section struct {
	Name  string   `json:"section"`
	Items []string `json:"items"`
}

// RecipeRecord represents a normalized recipe extracted from a web page.
// The canonical source URL is the sole identity key; two records never
// coexist for the same canonical URL.
type RecipeRecord struct {
	ID        string `json:"id"`
	SourceURL string `json:"source_url"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Servings  string `json:"servings"`

	// Times are minutes. Zero means absent; TotalTime is derived from
	// PrepTime+CookTime at normalize time when absent, but an explicit
	// value is never overwritten.
	PrepTime  int `json:"prep_time"`
	CookTime  int `json:"cook_time"`
	TotalTime int `json:"total_time"`

	Ingredients []Section `json:"ingredients"`
	Steps       []Section `json:"steps"`

	ImageURL string `json:"image_url,omitempty"`

	// ContentHash is the hash of the raw page bytes the record was
	// extracted from. Not part of the API shape.
	ContentHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate returns an error unless the record has a title and at least one
// ingredient item.
func (r *RecipeRecord) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return Errorf(EINCOMPLETE, "recipe title is missing")
	}
	for _, s := range r.Ingredients {
		for _, item := range s.Items {
			if strings.TrimSpace(item) != "" {
				return nil
			}
		}
	}
	return Errorf(EINCOMPLETE, "recipe has no ingredients")
}

// RecipeUpdate represents a sparse patch applied to a stored record.
// Nil pointer fields are left untouched. Ingredients and Steps, when
// non-nil, arrive as flat ordered lines; a line ending in ":" starts a new
// named section (see SplitSections).
type RecipeUpdate struct {
	SourceURL string  `json:"source_url"`
	Title     *string `json:"title"`
	Author    *string `json:"author"`
	Servings  *string `json:"servings"`
	PrepTime  *int    `json:"prep_time"`
	CookTime  *int    `json:"cook_time"`
	TotalTime *int    `json:"total_time"`
	ImageURL  *string `json:"image_url"`

	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

// RecipeService represents a service for storing recipes keyed by canonical
// source URL.
type RecipeService interface {
	// UpsertRecipe inserts the record or fully replaces the existing one
	// with the same canonical source URL.
	UpsertRecipe(ctx context.Context, rec *RecipeRecord) error

	// FindRecipeBySourceURL retrieves a record by canonical source URL.
	// Returns ENOTFOUND if the record does not exist.
	FindRecipeBySourceURL(ctx context.Context, sourceURL string) (*RecipeRecord, error)

	// FindRecipes retrieves all stored records, newest first.
	FindRecipes(ctx context.Context) ([]*RecipeRecord, error)

	// UpdateRecipe applies a sparse patch to an existing record and returns
	// the updated record. Returns ENOTFOUND if the record does not exist and
	// EINCOMPLETE if the patched record would be invalid.
	UpdateRecipe(ctx context.Context, upd RecipeUpdate) (*RecipeRecord, error)

	// DeleteRecipe removes a record. Deleting a non-existent key is not an
	// error.
	DeleteRecipe(ctx context.Context, sourceURL string) error
}

// FlattenSections projects sectioned content into one ordered list of
// strings, dropping section boundaries. Pure and order-preserving.
func FlattenSections(sections []Section) []string {
	var out []string
	for _, s := range sections {
		out = append(out, s.Items...)
	}
	return out
}

// SplitSections reconstructs Section structure from a flat editable
// representation. A line ending in ":" starts a new named section; following
// lines become its items. Lines before the first header form an unnamed
// leading section. Empty lines are skipped.
//
// The round-trip property holds: flattening the result of SplitSections over
// a flattened sequence yields the original flattened items.
func SplitSections(lines []string) []Section {
	var sections []Section
	current := Section{}

	flush := func() {
		if len(current.Items) > 0 {
			sections = append(sections, current)
		}
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.HasSuffix(line, ":") && len(line) > 1 {
			flush()
			current = Section{Name: strings.TrimSpace(strings.TrimSuffix(line, ":"))}
			continue
		}
		current.Items = append(current.Items, line)
	}
	flush()

	return sections
}
