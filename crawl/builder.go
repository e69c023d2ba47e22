package crawl

import (
	"context"
	"net/url"

	"github.com/fwojciec/brochure"
)

// DefaultMaxCorpusChars bounds the serialized corpus when no token
// counter is configured.
const DefaultMaxCorpusChars = 5000

// Ensure Builder implements brochure.BrochureBuilder at compile time.
var _ brochure.BrochureBuilder = (*Builder)(nil)

// Builder runs the full brochure pipeline for one seed URL.
type Builder struct {
	Aggregator  *Aggregator
	Synthesizer brochure.Synthesizer

	// TokenCounter, when set, measures the corpus against MaxCorpusTokens.
	// When nil, MaxCorpusChars applies instead.
	TokenCounter    brochure.TokenCounter
	MaxCorpusTokens int
	MaxCorpusChars  int
}

// Build aggregates the corpus for the seed URL and synthesizes a
// brochure. It always returns a Brochure for a well-formed seed URL:
// synthesis failure yields a failed brochure whose markdown explains the
// error, since the consumer-facing contract guarantees displayable
// output for any input.
func (b *Builder) Build(ctx context.Context, companyName, seedURL string) (*brochure.Brochure, error) {
	if companyName == "" {
		return nil, brochure.Errorf(brochure.EINVALID, "company name required")
	}
	if seedURL == "" {
		return nil, brochure.Errorf(brochure.EINVALID, "seed URL required")
	}
	if u, err := url.Parse(seedURL); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, brochure.Errorf(brochure.EINVALID, "invalid seed URL %q", seedURL)
	}

	corpus, err := b.Aggregator.Aggregate(ctx, seedURL)
	if err != nil {
		return nil, err
	}

	serialized, err := b.fitCorpus(ctx, corpus)
	if err != nil {
		return failedBrochure(companyName, seedURL, err), nil
	}

	markdown, err := b.Synthesizer.Synthesize(ctx, companyName, serialized)
	if err != nil {
		return failedBrochure(companyName, seedURL, err), nil
	}

	return &brochure.Brochure{
		CompanyName: companyName,
		SeedURL:     seedURL,
		Markdown:    markdown,
		Status:      brochure.BrochureOK,
	}, nil
}

// fitCorpus serializes the corpus within the configured budget by
// dropping whole entries from the tail first; the seed entry is never
// dropped. In character mode a seed-only corpus that is still over
// budget is hard-truncated; in token mode the seed page is left whole.
func (b *Builder) fitCorpus(ctx context.Context, corpus *brochure.Corpus) (string, error) {
	entries := corpus.Entries

	for {
		text := (&brochure.Corpus{Entries: entries}).Format()

		size, budget, err := b.measure(ctx, text)
		if err != nil {
			return "", err
		}
		if budget <= 0 || size <= budget {
			return text, nil
		}

		if len(entries) > 1 {
			entries = entries[:len(entries)-1]
			continue
		}

		if b.TokenCounter == nil {
			return string([]rune(text)[:budget]), nil
		}
		return text, nil
	}
}

// measure returns the corpus size and the applicable budget, in tokens
// when a counter is configured and in characters otherwise.
func (b *Builder) measure(ctx context.Context, text string) (size, budget int, err error) {
	if b.TokenCounter != nil {
		tokens, err := b.TokenCounter.CountTokens(ctx, text)
		if err != nil {
			return 0, 0, err
		}
		return tokens, b.MaxCorpusTokens, nil
	}

	budget = b.MaxCorpusChars
	if budget == 0 {
		budget = DefaultMaxCorpusChars
	}
	return len([]rune(text)), budget, nil
}

func failedBrochure(companyName, seedURL string, err error) *brochure.Brochure {
	detail := brochure.ErrorMessage(err)
	return &brochure.Brochure{
		CompanyName: companyName,
		SeedURL:     seedURL,
		Status:      brochure.BrochureFailed,
		ErrorDetail: detail,
		Markdown: "## Error Generating Brochure\n\n" +
			"Failed to generate a brochure for " + companyName + ": " + detail + "\n",
	}
}
