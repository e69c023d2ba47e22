package mock

import (
	"context"

	"github.com/fwojciec/brochure"
)

var _ brochure.Synthesizer = (*Synthesizer)(nil)

// Synthesizer is a mock implementation of brochure.Synthesizer.
type Synthesizer struct {
	SynthesizeFn func(ctx context.Context, companyName, corpus string) (string, error)
}

func (s *Synthesizer) Synthesize(ctx context.Context, companyName, corpus string) (string, error) {
	return s.SynthesizeFn(ctx, companyName, corpus)
}

var _ brochure.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of brochure.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, page *brochure.Page) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, page *brochure.Page) (string, error) {
	return s.SummarizeFn(ctx, page)
}
