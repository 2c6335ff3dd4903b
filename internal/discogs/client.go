// Package discogs provides a client for the Discogs REST API.
package discogs

import (
	"net/http"
	"strings"
	"time"

	"github.com/waxworks/stylus/internal/ratelimit"
)

const (
	defaultBaseURL       = "https://api.discogs.com"
	defaultUserAgent     = "stylus/1.0 +https://github.com/waxworks/stylus"
	defaultMaxAttempts   = 3
	defaultRatePerMinute = 60 // authenticated Discogs budget
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is a Discogs API client.
type Client struct {
	auth          Authenticator
	baseURL       string
	userAgent     string
	httpClient    HTTPDoer
	rateLimiter   *ratelimit.Limiter
	retryAttempts int
	maxPages      int
}

// NewClient creates a new Discogs API client.
func NewClient(auth Authenticator, opts ...Option) *Client {
	client := &Client{
		auth:          auth,
		baseURL:       defaultBaseURL,
		userAgent:     defaultUserAgent,
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		rateLimiter:   ratelimit.NewPerMinute("Discogs", defaultRatePerMinute),
		retryAttempts: defaultMaxAttempts,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithBaseURL sets a custom base URL for the Discogs API.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
// Discogs rejects clients without a descriptive one.
func WithUserAgent(ua string) Option {
	return func(client *Client) {
		if ua != "" {
			client.userAgent = ua
		}
	}
}

// WithRetryAttempts sets the number of attempts for failed requests.
func WithRetryAttempts(attempts int) Option {
	return func(client *Client) {
		if attempts > 0 {
			client.retryAttempts = attempts
		}
	}
}

// WithRateLimiter sets a custom rate limiter for the client.
func WithRateLimiter(limiter *ratelimit.Limiter) Option {
	return func(client *Client) {
		if limiter != nil {
			client.rateLimiter = limiter
		}
	}
}

// WithMaxPages caps how many collection pages a single fetch will walk.
// Zero means no cap.
func WithMaxPages(pages int) Option {
	return func(client *Client) {
		if pages >= 0 {
			client.maxPages = pages
		}
	}
}
