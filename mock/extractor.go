package mock

import "github.com/fwojciec/brochure"

var _ brochure.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of brochure.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*brochure.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*brochure.ExtractResult, error) {
	return e.ExtractFn(html)
}
