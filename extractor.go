package brochure

// ExtractResult holds the content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title, NoTitle if the page has none.
	Title string

	// Text is the body text with boilerplate subtrees removed and
	// block-level separation preserved, NoBody if the page has none.
	Text string

	// Links holds the raw anchor href values in document order,
	// unresolved and unfiltered.
	Links []string
}

// Extractor extracts title, body text and links from raw HTML.
type Extractor interface {
	// Extract processes raw HTML and returns the page content.
	// Returns EINVALID if the markup cannot be parsed.
	Extract(html string) (*ExtractResult, error)
}
