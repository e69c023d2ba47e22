package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/brochure"
)

// Ensure LoggingClassifier implements brochure.LinkClassifier.
var _ brochure.LinkClassifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a LinkClassifier with logging.
type LoggingClassifier struct {
	next   brochure.LinkClassifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next brochure.LinkClassifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier and logs the operation.
func (c *LoggingClassifier) Classify(ctx context.Context, seedURL string, rawLinks []string) (selection brochure.LinkSelection, err error) {
	defer func(begin time.Time) {
		c.logger.Info("link classification",
			"seed", seedURL,
			"candidates", len(rawLinks),
			"selected", len(selection),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Classify(ctx, seedURL, rawLinks)
}
