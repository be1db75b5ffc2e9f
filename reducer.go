package recipeclip

// ReducedPage holds the bounded excerpt of a page handed to the structuring
// model.
type ReducedPage struct {
	// Title is the page title extracted from metadata.
	Title string

	// Text is the visible content with boilerplate removed, block order
	// preserved, truncated to the reducer's character budget.
	Text string
}

// Reducer strips boilerplate markup from raw HTML and serializes the
// visible text. This is best-effort lossy compression: implementations must
// never discard the title or anything structurally resembling an ingredient
// or step list, since the extractor only sees the reduced text.
type Reducer interface {
	Reduce(html string) (*ReducedPage, error)
}
