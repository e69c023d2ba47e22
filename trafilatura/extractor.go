// Package trafilatura provides a content extractor backed by
// go-trafilatura. The extracted main content is rendered back to HTML
// and converted to markdown, which preserves more document structure
// than plain text extraction.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	"github.com/fwojciec/brochure"
)

// Ensure Extractor implements brochure.Extractor at compile time.
var _ brochure.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	converter brochure.Converter
}

// NewExtractor creates a new Extractor. The converter renders the
// extracted content HTML as markdown.
func NewExtractor(converter brochure.Converter) *Extractor {
	return &Extractor{converter: converter}
}

// Extract processes raw HTML and returns the main content plus the
// document's raw links. Links are collected from the full document, not
// just the extracted content, so navigation links survive boilerplate
// removal.
func (e *Extractor) Extract(rawHTML string) (*brochure.ExtractResult, error) {
	if rawHTML == "" {
		return nil, brochure.Errorf(brochure.EINVALID, "empty HTML input")
	}

	links, err := collectLinks(rawHTML)
	if err != nil {
		return nil, brochure.Errorf(brochure.EINVALID, "unparseable HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	text, err := e.contentText(result)
	if err != nil {
		return nil, err
	}
	if text == "" {
		text = brochure.NoBody
	}

	title := strings.TrimSpace(result.Metadata.Title)
	if title == "" {
		title = brochure.NoTitle
	}

	return &brochure.ExtractResult{
		Title: title,
		Text:  text,
		Links: links,
	}, nil
}

// contentText renders the extracted content node to markdown, falling
// back to trafilatura's plain-text extraction when no node is available.
func (e *Extractor) contentText(result *trafilatura.ExtractResult) (string, error) {
	if result.ContentNode == nil || e.converter == nil {
		return strings.TrimSpace(result.ContentText), nil
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return "", err
	}

	markdown, err := e.converter.Convert(contentHTML)
	if err != nil {
		return strings.TrimSpace(result.ContentText), nil
	}
	return strings.TrimSpace(markdown), nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// collectLinks walks the parsed document and returns raw href values in
// document order.
func collectLinks(rawHTML string) ([]string, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}

	var links []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					links = append(links, attr.Val)
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return links, nil
}
