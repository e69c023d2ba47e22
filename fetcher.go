package brochure

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations own transport concerns: timeouts, user-agent selection,
// per-host rate limiting, and optional retries.
type Fetcher interface {
	// Fetch issues a single GET and returns the response body.
	// Transport failures return ENETWORK; non-2xx responses return EHTTP.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	Close() error
}
