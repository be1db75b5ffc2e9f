package recipeclip

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean content HTML (e.g., from a Reducer's
	// underlying extraction) into Markdown.
	Convert(html string) (string, error)
}
