// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"math"
	"time"
)

// Default values applied when the corresponding variable is absent, empty or
// cannot be parsed.
const (
	DefaultModel            = "gemini-2.5-flash"
	DefaultRequestTimeoutMs = 30000
	DefaultMaxRetries       = 3
)

// MaxRequestTimeoutMs is the largest timeout, in milliseconds, that fits a
// time.Duration.
const MaxRequestTimeoutMs = math.MaxInt64 / int64(time.Millisecond)

// DefaultPrefix is prepended to every variable name. It matches the prefix
// Vite exposes to client code.
const DefaultPrefix = "VITE_"

// Variable names without the prefix.
const (
	KeyAPIKeys        = "GEMINI_API_KEYS"
	KeyProxyURL       = "PROXY_URL"
	KeyDefaultModel   = "DEFAULT_MODEL"
	KeyRequestTimeout = "REQUEST_TIMEOUT"
	KeyMaxRetries     = "MAX_RETRIES"
)

// Keys lists every variable name the loader reads, without the prefix.
var Keys = []string{
	KeyAPIKeys,
	KeyProxyURL,
	KeyDefaultModel,
	KeyRequestTimeout,
	KeyMaxRetries,
}

// APIKeyList is an ordered list of API keys. Every element is non-empty and
// contains no whitespace. Duplicates are preserved.
type APIKeyList []string

// LoadedConfig is the result of a single load call. It is a plain value: it is
// recomputed on every load and never mutated by this package.
type LoadedConfig struct {
	// APIKeys holds the parsed keys in input order.
	APIKeys APIKeyList `json:"api_keys" yaml:"api_keys"`

	// ProxyURL is the trimmed proxy URL, or an empty string when unset.
	// It is not validated at load time; see [ValidateProxyURL].
	ProxyURL string `json:"proxy_url,omitempty" yaml:"proxy_url,omitempty"`

	// DefaultModel is the model identifier used when a request names none.
	DefaultModel string `json:"default_model" yaml:"default_model"`

	// RequestTimeoutMs is the per-request timeout in milliseconds.
	RequestTimeoutMs int `json:"request_timeout_ms" yaml:"request_timeout_ms"`

	// MaxRetries is the number of retries for a failed request.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// HasProxy reports whether a proxy URL was configured.
func (c LoadedConfig) HasProxy() bool {
	return c.ProxyURL != ""
}

// RequestTimeout returns RequestTimeoutMs as a time.Duration. Values above
// [MaxRequestTimeoutMs] saturate instead of wrapping around.
func (c LoadedConfig) RequestTimeout() time.Duration {
	if int64(c.RequestTimeoutMs) > MaxRequestTimeoutMs {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(c.RequestTimeoutMs) * time.Millisecond
}
