// Package readability provides a content extractor backed by go-readability.
// It focuses on article-style main content and does not collect links, which
// makes it a fit for single-page summarization rather than the full
// brochure pipeline.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"

	"github.com/fwojciec/brochure"
)

// Ensure Extractor implements brochure.Extractor at compile time.
var _ brochure.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*brochure.ExtractResult, error) {
	if rawHTML == "" {
		return nil, brochure.Errorf(brochure.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(article.Title)
	if title == "" {
		title = brochure.NoTitle
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		text = brochure.NoBody
	}

	return &brochure.ExtractResult{
		Title: title,
		Text:  text,
	}, nil
}
