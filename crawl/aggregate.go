// Package crawl orchestrates the brochure pipeline: it loads the seed
// page, lets the link classifier decide which subsidiary pages to fetch,
// aggregates them into a labeled corpus with polite pacing, and hands
// the corpus to the synthesizer.
package crawl

import (
	"context"

	"github.com/fwojciec/brochure"
)

// Aggregator fetches the seed page plus its classified subsidiary pages
// and concatenates them into a Corpus. Subsidiary fetches are sequential:
// pacing between requests to the same site is a politeness constraint,
// not a latency accident.
type Aggregator struct {
	Fetcher    brochure.Fetcher
	Extractor  brochure.Extractor
	Classifier brochure.LinkClassifier
	Pacer      brochure.Pacer
}

// LoadPage fetches and extracts a single page. It always returns a Page:
// fetch or extraction failures are recorded in the page status with
// placeholder content so a single unreachable page never aborts the
// pipeline.
func (a *Aggregator) LoadPage(ctx context.Context, url string) *brochure.Page {
	html, err := a.Fetcher.Fetch(ctx, url)
	if err != nil {
		return errorPage(url, err)
	}

	result, err := a.Extractor.Extract(html)
	if err != nil {
		return errorPage(url, err)
	}

	return &brochure.Page{
		URL:    url,
		Title:  result.Title,
		Text:   result.Text,
		Links:  result.Links,
		Status: brochure.FetchOK,
	}
}

// errorPage builds the failure placeholder for a page that could not be
// loaded. The placeholder text is what downstream LLM stages see.
func errorPage(url string, err error) *brochure.Page {
	msg := brochure.ErrorMessage(err)
	return &brochure.Page{
		URL:    url,
		Title:  "Error: " + msg,
		Text:   "Failed to fetch website content: " + msg,
		Status: brochure.FetchStatusFromError(err),
	}
}

// Aggregate builds the corpus for a seed URL: the seed page first under
// the landing-page label, then each classified link in classifier order.
// A classification failure degrades to a seed-only corpus; a subsidiary
// fetch failure contributes a placeholder entry rather than shrinking
// the corpus.
func (a *Aggregator) Aggregate(ctx context.Context, seedURL string) (*brochure.Corpus, error) {
	seed := a.LoadPage(ctx, seedURL)
	corpus := &brochure.Corpus{Entries: []brochure.CorpusEntry{
		{Label: brochure.LandingPageLabel, Page: seed},
	}}

	if seed.Status != brochure.FetchOK {
		return corpus, nil
	}

	selection, err := a.Classifier.Classify(ctx, seedURL, seed.Links)
	if err != nil {
		// Graceful degradation: a brochure covering only the seed page
		// beats no brochure at all.
		return corpus, nil
	}

	for _, link := range selection {
		// Pacing applies before every subsidiary fetch, never before
		// the seed fetch.
		if err := a.Pacer.Pause(ctx); err != nil {
			break
		}
		page := a.LoadPage(ctx, link.URL)
		corpus.Entries = append(corpus.Entries, brochure.CorpusEntry{
			Label: link.Category,
			Page:  page,
		})
	}

	return corpus, nil
}
