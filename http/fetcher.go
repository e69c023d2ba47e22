// Package http provides an HTTP-based implementation of brochure.Fetcher.
// It issues plain GET requests with a rotating user-agent; sites that
// require JavaScript rendering are out of scope.
package http

import (
	"context"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/brochure"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// defaultUserAgents is the pool rotated across requests so repeated
// fetches don't present a single static client fingerprint.
var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/117.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0.3 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/88.0.4324.96 Safari/537.36",
}

// Ensure Fetcher implements brochure.Fetcher at compile time.
var _ brochure.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgents  []string
	pickAgent   func(n int) int
	limiter     brochure.DomainLimiter
	retryDelays []time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgents replaces the default user-agent pool.
func WithUserAgents(agents []string) Option {
	return func(f *Fetcher) {
		if len(agents) > 0 {
			f.userAgents = agents
		}
	}
}

// WithAgentSelector replaces the random user-agent selector.
// The function receives the pool size and returns an index into the pool.
// Used by tests to make agent rotation deterministic.
func WithAgentSelector(pick func(n int) int) Option {
	return func(f *Fetcher) {
		f.pickAgent = pick
	}
}

// WithLimiter sets a per-domain rate limiter consulted before each request.
func WithLimiter(limiter brochure.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = limiter
	}
}

// WithRetryDelays enables retries on transport failures with the given
// backoff delays. Non-2xx responses are not retried. The default is no
// retries: a page is fetched at most once per pipeline run.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.retryDelays = delays
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:    DefaultFetchTimeout,
		userAgents: defaultUserAgents,
		pickAgent:  rand.IntN,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// Transport failures return ENETWORK; non-2xx responses return EHTTP.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if rawURL == "" {
		return "", brochure.Errorf(brochure.EINVALID, "URL required")
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", brochure.Errorf(brochure.EINVALID, "invalid URL %q", rawURL)
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	html, err := f.fetchOnce(ctx, rawURL)
	if err == nil {
		return html, nil
	}

	// Retry transport failures only; a 404 won't improve with time.
	for _, delay := range f.retryDelays {
		if brochure.ErrorCode(err) != brochure.ENETWORK {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
		html, err = f.fetchOnce(ctx, rawURL)
		if err == nil {
			return html, nil
		}
	}

	return "", err
}

func (f *Fetcher) fetchOnce(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", brochure.Errorf(brochure.EINVALID, "invalid request for %q: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent())

	resp, err := f.client.Do(req)
	if err != nil {
		return "", brochure.Errorf(brochure.ENETWORK, "request failed for %s: %v", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", brochure.Errorf(brochure.EHTTP, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", brochure.Errorf(brochure.ENETWORK, "reading body for %s: %v", rawURL, err)
	}

	return string(body), nil
}

func (f *Fetcher) userAgent() string {
	return f.userAgents[f.pickAgent(len(f.userAgents))]
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
