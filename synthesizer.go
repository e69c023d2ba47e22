package brochure

import "context"

// Synthesizer turns an aggregated corpus into brochure markdown.
type Synthesizer interface {
	// Synthesize submits the serialized corpus to the model and returns
	// the brochure body in markdown. Returns ENETWORK if the call fails
	// and EINTERNAL if the model returns an empty completion.
	Synthesize(ctx context.Context, companyName, corpus string) (string, error)
}

// Summarizer produces a short markdown summary of a single page.
type Summarizer interface {
	Summarize(ctx context.Context, page *Page) (string, error)
}
