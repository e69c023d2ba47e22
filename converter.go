package brochure

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g. an extractor's main-content
	// subtree) into its Markdown representation.
	Convert(html string) (string, error)
}
