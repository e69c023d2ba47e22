package brochure

import (
	"context"
	"net/url"
	"strings"
)

// DefaultMaxLinks caps how many classified links a selection may contain.
// The cap bounds subsequent fetch cost; it is a default, not a constant
// the pipeline depends on.
const DefaultMaxLinks = 10

// ClassifiedLink labels a URL selected by the link classifier.
// The URL is always absolute and is never the seed page itself.
type ClassifiedLink struct {
	Category string `json:"type"`
	URL      string `json:"url"`
}

// LinkSelection is an ordered sequence of classified links. Earlier
// entries are ranked more relevant by the model's own ordering.
type LinkSelection []ClassifiedLink

// Cap truncates the selection to at most n entries, preserving order.
// A non-positive n returns the selection unchanged.
func (s LinkSelection) Cap(n int) LinkSelection {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}

// LinkClassifier selects and labels the subsidiary links worth fetching
// for a brochure. Implementations treat the model response as untrusted
// input: it must parse against a declared schema and every returned URL
// must be checked against the page's own link set before use.
type LinkClassifier interface {
	// Classify sends the page's links to the model and returns the
	// validated selection. Returns ESCHEMA if the response does not
	// match the declared output schema.
	Classify(ctx context.Context, seedURL string, rawLinks []string) (LinkSelection, error)
}

// ResolveLinks resolves raw href values against a base URL and
// deduplicates them preserving document order. Non-HTTP schemes
// (javascript:, mailto:, tel:, data:), unparseable hrefs, bare
// fragments, and self-references are dropped. Fragments are stripped
// before deduplication.
func ResolveLinks(baseURL string, hrefs []string) []string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	var resolved []string

	for _, href := range hrefs {
		href = strings.TrimSpace(href)
		if href == "" || href == "/" || isNonHTTPLink(href) {
			continue
		}

		ref, err := url.Parse(href)
		if err != nil {
			continue
		}

		u := base.ResolveReference(ref)
		u.Fragment = ""
		if u.Scheme != "http" && u.Scheme != "https" {
			continue
		}

		result := u.String()

		// Filter self-referential links (e.g. anchor-only links).
		baseNoFragment := *base
		baseNoFragment.Fragment = ""
		if result == baseNoFragment.String() {
			continue
		}

		if _, ok := seen[result]; ok {
			continue
		}
		seen[result] = struct{}{}
		resolved = append(resolved, result)
	}

	return resolved
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
