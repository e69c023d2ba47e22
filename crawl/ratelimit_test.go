package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/brochure/crawl"
)

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first request per domain is immediate", func(t *testing.T) {
		t.Parallel()
		l := crawl.NewDomainLimiter(1)

		start := time.Now()
		require.NoError(t, l.Wait(context.Background(), "a.test"))
		require.NoError(t, l.Wait(context.Background(), "b.test"))
		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})

	t.Run("second request to the same domain is delayed", func(t *testing.T) {
		t.Parallel()
		l := crawl.NewDomainLimiter(10)

		require.NoError(t, l.Wait(context.Background(), "a.test"))
		start := time.Now()
		require.NoError(t, l.Wait(context.Background(), "a.test"))
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("canceled context aborts the wait", func(t *testing.T) {
		t.Parallel()
		l := crawl.NewDomainLimiter(0.001)
		require.NoError(t, l.Wait(context.Background(), "a.test"))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		assert.Error(t, l.Wait(ctx, "a.test"))
	})
}
