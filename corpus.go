package brochure

import "strings"

// LandingPageLabel labels the seed page entry in a Corpus.
const LandingPageLabel = "Landing page"

// CorpusEntry pairs a fetched page with its classifier-assigned label.
type CorpusEntry struct {
	Label string
	Page  *Page
}

// Corpus is the ordered, labeled collection of pages that feeds brochure
// synthesis. The seed page is always the first entry. A Corpus is never
// mutated after aggregation.
type Corpus struct {
	Entries []CorpusEntry
}

// Seed returns the seed page entry, nil if the corpus is empty.
func (c *Corpus) Seed() *Page {
	if len(c.Entries) == 0 {
		return nil
	}
	return c.Entries[0].Page
}

// Format serializes the corpus for LLM consumption: each entry's label
// followed by the page contents, in corpus order.
func (c *Corpus) Format() string {
	var sb strings.Builder
	for i, e := range c.Entries {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(e.Label)
		sb.WriteString(":\n")
		sb.WriteString(e.Page.Contents())
	}
	return sb.String()
}
