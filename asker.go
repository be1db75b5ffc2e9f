package recipeclip

import "context"

// Asker answers natural language questions scoped to a single stored
// recipe. Questions outside the recipe's content are declined, not
// answered.
type Asker interface {
	// Ask answers a question about the recipe stored under sourceURL.
	// Returns ENOTFOUND if no record exists for the URL, EMODEL if the
	// model call fails. The stored record is never mutated.
	Ask(ctx context.Context, sourceURL, question string) (string, error)
}
