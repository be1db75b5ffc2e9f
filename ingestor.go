package recipeclip

import "context"

// Ingestor runs the full extraction pipeline for one URL:
// canonicalize, fetch, reduce, extract, normalize, upsert.
type Ingestor interface {
	// IngestURL extracts the recipe at rawURL and stores it under its
	// canonical source URL. Concurrent calls for the same canonical URL
	// serialize; calls for different URLs proceed in parallel.
	IngestURL(ctx context.Context, rawURL string) (*RecipeRecord, error)
}
