package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/brochure/crawl"
)

func TestJitterPacer_Pause(t *testing.T) {
	t.Parallel()

	t.Run("duration is interpolated between bounds", func(t *testing.T) {
		t.Parallel()
		var slept time.Duration
		p := &crawl.JitterPacer{
			Min:  1 * time.Second,
			Max:  2 * time.Second,
			Rand: func() float64 { return 0.5 },
			Sleep: func(_ context.Context, d time.Duration) error {
				slept = d
				return nil
			},
		}

		require.NoError(t, p.Pause(context.Background()))
		assert.Equal(t, 1500*time.Millisecond, slept)
	})

	t.Run("zero rand sleeps the minimum", func(t *testing.T) {
		t.Parallel()
		var slept time.Duration
		p := &crawl.JitterPacer{
			Min:  1 * time.Second,
			Max:  2 * time.Second,
			Rand: func() float64 { return 0 },
			Sleep: func(_ context.Context, d time.Duration) error {
				slept = d
				return nil
			},
		}

		require.NoError(t, p.Pause(context.Background()))
		assert.Equal(t, 1*time.Second, slept)
	})

	t.Run("canceled context aborts the pause", func(t *testing.T) {
		t.Parallel()
		p := &crawl.JitterPacer{Min: time.Hour, Max: time.Hour}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := p.Pause(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		p := crawl.NewJitterPacer()
		assert.Equal(t, crawl.DefaultMinPause, p.Min)
		assert.Equal(t, crawl.DefaultMaxPause, p.Max)
	})
}
