package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures [NewConfiguredHTTPClient]. Zero values leave
// the resty defaults in place.
type HTTPClientOptions struct {
	// BaseURL is prepended to relative request URLs.
	BaseURL string
	// Timeout bounds a single attempt.
	Timeout time.Duration
	// RetryCount is the number of retries after the first attempt.
	RetryCount int
	// RetryWaitTime is the initial backoff between attempts.
	RetryWaitTime time.Duration
	// RetryMaxWaitTime caps the backoff.
	RetryMaxWaitTime time.Duration
	// ProxyURL routes every request through an HTTP(S) proxy.
	ProxyURL string
	// UserAgent overrides the User-Agent header.
	UserAgent string
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewConfiguredHTTPClient creates an HTTPClient from opts. When RetryCount is
// positive, requests are retried on transport errors, 429 and 5xx responses.
func NewConfiguredHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := NewHTTPClient()

	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.ProxyURL != "" {
		client.SetProxy(opts.ProxyURL)
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}
	if opts.RetryCount > 0 {
		client.
			SetRetryCount(opts.RetryCount).
			AddRetryCondition(IsRetryable)
		if opts.RetryWaitTime > 0 {
			client.SetRetryWaitTime(opts.RetryWaitTime)
		}
		if opts.RetryMaxWaitTime > 0 {
			client.SetRetryMaxWaitTime(opts.RetryMaxWaitTime)
		}
	}

	return client
}

// IsRetryable reports whether a request that produced resp and err is worth
// retrying: transport errors, 429 Too Many Requests and 5xx responses.
func IsRetryable(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if resp == nil {
		return false
	}

	code := resp.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
