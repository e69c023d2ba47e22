package brochure

import "context"

// Pacer spaces out subsidiary page fetches within one brochure request.
// Pacing is an ordering constraint, not a resource limit: it applies
// before every subsidiary fetch and never before the seed fetch.
type Pacer interface {
	// Pause blocks for one pacing interval.
	// Returns an error only if the context is canceled.
	Pause(ctx context.Context) error
}

// DomainLimiter provides per-domain rate limiting across concurrent
// brochure requests.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
