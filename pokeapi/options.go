package pokeapi

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout    time.Duration
	userAgent  string
	retry      RetryPolicy
	batchLimit int
	httpClient *http.Client
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithRetryPolicy overrides the default retry policy.
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(o *clientOptions) {
		o.retry = policy
	}
}

// WithBatchLimit caps the number of in-flight requests during a
// GetMultiple call. Values below one are ignored.
func WithBatchLimit(limit int) Option {
	return func(o *clientOptions) {
		if limit > 0 {
			o.batchLimit = limit
		}
	}
}

// WithHTTPClient supplies a pre-built HTTP client, bypassing the lazy
// pool construction. Intended for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}
