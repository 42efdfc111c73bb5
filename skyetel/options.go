package skyetel

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	limiter    Limiter
}

func defaultOptions() *clientOptions {
	return &clientOptions{
		baseURL: defaultBaseURL,
		timeout: 30 * time.Second,
	}
}

// WithBaseURL overrides the API base URL. Useful for testing against a
// mock server.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client. When set, WithTimeout is
// ignored; configure the timeout on the supplied client instead.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithRateLimiter replaces the default per-client limiter. Passing the same
// limiter to several clients makes them share one quota.
func WithRateLimiter(limiter Limiter) Option {
	return func(o *clientOptions) {
		o.limiter = limiter
	}
}

// WithRateLimit sets a custom quota per rolling window instead of the
// documented 120 calls per minute.
func WithRateLimit(calls int, window time.Duration) Option {
	return func(o *clientOptions) {
		if calls > 0 && window > 0 {
			o.limiter = newCallLimiter(calls, window)
		}
	}
}
