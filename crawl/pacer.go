package crawl

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/fwojciec/brochure"
)

// Default pacing bounds between subsidiary fetches.
const (
	DefaultMinPause = 1 * time.Second
	DefaultMaxPause = 2 * time.Second
)

// Ensure JitterPacer implements brochure.Pacer at compile time.
var _ brochure.Pacer = (*JitterPacer)(nil)

// JitterPacer pauses for a uniformly random interval in [Min, Max].
// Randomized spacing avoids a bursty, regular request pattern against
// the same host.
type JitterPacer struct {
	Min time.Duration
	Max time.Duration

	// Rand returns a value in [0, 1). Defaults to math/rand/v2.
	// Tests inject a fixed function for determinism.
	Rand func() float64

	// Sleep blocks for the given duration, honoring ctx cancellation.
	// Tests inject a no-op to avoid real delays.
	Sleep func(ctx context.Context, d time.Duration) error
}

// NewJitterPacer creates a JitterPacer with the default [1s, 2s] bounds.
func NewJitterPacer() *JitterPacer {
	return &JitterPacer{Min: DefaultMinPause, Max: DefaultMaxPause}
}

// Pause blocks for one randomized pacing interval.
func (p *JitterPacer) Pause(ctx context.Context) error {
	random := p.Rand
	if random == nil {
		random = rand.Float64
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	d := p.Min + time.Duration(random()*float64(p.Max-p.Min))
	return sleep(ctx, d)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
