package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/brochure"
)

// Ensure LoggingSynthesizer implements brochure.Synthesizer.
var _ brochure.Synthesizer = (*LoggingSynthesizer)(nil)

// LoggingSynthesizer wraps a Synthesizer with logging.
type LoggingSynthesizer struct {
	next   brochure.Synthesizer
	logger *slog.Logger
}

// NewLoggingSynthesizer creates a new LoggingSynthesizer.
func NewLoggingSynthesizer(next brochure.Synthesizer, logger *slog.Logger) *LoggingSynthesizer {
	return &LoggingSynthesizer{next: next, logger: logger}
}

// Synthesize delegates to the wrapped synthesizer and logs the operation.
func (s *LoggingSynthesizer) Synthesize(ctx context.Context, companyName, corpus string) (markdown string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("brochure synthesis",
			"company", companyName,
			"corpus_bytes", len(corpus),
			"markdown_bytes", len(markdown),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Synthesize(ctx, companyName, corpus)
}
