// Package goquery provides a goquery-based implementation of
// brochure.Extractor for general web pages.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/brochure"
	"golang.org/x/net/html"
)

// boilerplateSelector matches the subtrees removed before text
// extraction: non-content markup, embedded media, and navigation
// and footer regions.
const boilerplateSelector = "script, style, noscript, img, input, nav, footer"

// blockTags are the elements that terminate a line of extracted text.
// Separating former blocks keeps sentence and paragraph boundaries
// intact for downstream LLM consumption.
var blockTags = map[string]struct{}{
	"address": {}, "article": {}, "aside": {}, "blockquote": {}, "br": {},
	"div": {}, "dd": {}, "dl": {}, "dt": {}, "fieldset": {}, "figcaption": {},
	"figure": {}, "form": {}, "h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {},
	"h6": {}, "header": {}, "hr": {}, "li": {}, "main": {}, "ol": {}, "p": {},
	"pre": {}, "section": {}, "table": {}, "td": {}, "th": {}, "tr": {}, "ul": {},
}

// Ensure Extractor implements brochure.Extractor at compile time.
var _ brochure.Extractor = (*Extractor)(nil)

// Extractor extracts title, body text and raw links from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page content.
// Links are harvested from the whole document before boilerplate removal
// so navigation links (about, careers, ...) survive for classification.
func (e *Extractor) Extract(rawHTML string) (*brochure.ExtractResult, error) {
	if rawHTML == "" {
		return nil, brochure.Errorf(brochure.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, brochure.Errorf(brochure.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = brochure.NoTitle
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		if href, exists := sel.Attr("href"); exists && href != "" {
			links = append(links, href)
		}
	})

	body := doc.Find("body")
	body.Find(boilerplateSelector).Remove()
	text := blockText(body)
	if text == "" {
		text = brochure.NoBody
	}

	return &brochure.ExtractResult{
		Title: title,
		Text:  text,
		Links: links,
	}, nil
}

// blockText renders the selection's text with a newline after each
// block-level element, then collapses whitespace line by line.
func blockText(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, node := range sel.Nodes {
		writeNodeText(&sb, node)
	}

	var lines []string
	for _, line := range strings.Split(sb.String(), "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func writeNodeText(sb *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeNodeText(sb, c)
	}
	if n.Type == html.ElementNode {
		if _, ok := blockTags[n.Data]; ok {
			sb.WriteString("\n")
		}
	}
}
