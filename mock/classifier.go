package mock

import (
	"context"

	"github.com/fwojciec/brochure"
)

var _ brochure.LinkClassifier = (*LinkClassifier)(nil)

// LinkClassifier is a mock implementation of brochure.LinkClassifier.
type LinkClassifier struct {
	ClassifyFn func(ctx context.Context, seedURL string, rawLinks []string) (brochure.LinkSelection, error)
}

func (c *LinkClassifier) Classify(ctx context.Context, seedURL string, rawLinks []string) (brochure.LinkSelection, error) {
	return c.ClassifyFn(ctx, seedURL, rawLinks)
}
