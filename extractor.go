package recipeclip

import "context"

// RecipeExtractor structures reduced page text into a RecipeRecord.
type RecipeExtractor interface {
	// Extract asks a generative model to produce a schema-conformant
	// record from the reduced page. Returns EMALFORMED if the model output
	// cannot be parsed after one repair attempt, EMODEL if the model call
	// itself fails.
	Extract(ctx context.Context, page *ReducedPage, sourceURL string) (*RecipeRecord, error)
}
