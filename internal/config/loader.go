// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/gemini-env/internal/logger"
)

// Loader reads configuration values from a [Source]. Each call re-reads the
// source; nothing is cached, so a Loader is safe for concurrent use as long as
// the source is.
type Loader struct {
	src    Source
	prefix string
	logger *logger.Logger
}

// Option customises a [Loader].
type Option func(*Loader)

// WithPrefix overrides [DefaultPrefix]. An empty prefix reads the bare names.
func WithPrefix(prefix string) Option {
	return func(l *Loader) {
		l.prefix = prefix
	}
}

// WithLogger sets the logger used to report values that fell back to their
// defaults. The default is [logger.Nop].
func WithLogger(log *logger.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.logger = log
		}
	}
}

// NewLoader returns a Loader reading from src. A nil src behaves like an
// empty environment.
func NewLoader(src Source, opts ...Option) *Loader {
	l := &Loader{
		src:    src,
		prefix: DefaultPrefix,
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load is shorthand for NewLoader(src).LoadAll().
func Load(src Source, opts ...Option) LoadedConfig {
	return NewLoader(src, opts...).LoadAll()
}

// VarName returns the full variable name for key, e.g. VITE_PROXY_URL.
func (l *Loader) VarName(key string) string {
	return l.prefix + key
}

// APIKeys returns the parsed API key list. It is empty when the variable is
// absent.
func (l *Loader) APIKeys() APIKeyList {
	return ParseAPIKeys(l.raw().APIKeys)
}

// ProxyURL returns the trimmed proxy URL, or "" when the variable is absent
// or blank. The value is not validated.
func (l *Loader) ProxyURL() string {
	return strings.TrimSpace(l.raw().ProxyURL)
}

// DefaultModel returns the configured model, or [DefaultModel] when the
// variable is absent or empty.
func (l *Loader) DefaultModel() string {
	if model := l.raw().DefaultModel; model != "" {
		return model
	}

	return DefaultModel
}

// RequestTimeoutMs returns the request timeout in milliseconds, or
// [DefaultRequestTimeoutMs] when the variable is absent or not a
// non-negative base-10 integer.
func (l *Loader) RequestTimeoutMs() int {
	return l.parseInt(KeyRequestTimeout, l.raw().RequestTimeout, DefaultRequestTimeoutMs)
}

// MaxRetries returns the retry count, or [DefaultMaxRetries] when the
// variable is absent or not a non-negative base-10 integer.
func (l *Loader) MaxRetries() int {
	return l.parseInt(KeyMaxRetries, l.raw().MaxRetries, DefaultMaxRetries)
}

// LoadAll composes the individual loaders into a [LoadedConfig]. The source
// is snapshotted once so the five values are consistent with each other.
func (l *Loader) LoadAll() LoadedConfig {
	snap := NewLoader(MapSource(snapshot(l.src, l.varNames()...)), WithPrefix(l.prefix), WithLogger(l.logger))

	cfg := LoadedConfig{
		APIKeys:          snap.APIKeys(),
		ProxyURL:         snap.ProxyURL(),
		DefaultModel:     snap.DefaultModel(),
		RequestTimeoutMs: snap.RequestTimeoutMs(),
		MaxRetries:       snap.MaxRetries(),
	}

	l.logger.Debug().
		Int("api_keys", len(cfg.APIKeys)).
		Bool("proxy", cfg.HasProxy()).
		Str("model", cfg.DefaultModel).
		Int("request_timeout_ms", cfg.RequestTimeoutMs).
		Int("max_retries", cfg.MaxRetries).
		Msg("config loaded")

	return cfg
}

func (l *Loader) varNames() []string {
	names := make([]string, 0, len(Keys))
	for _, key := range Keys {
		names = append(names, l.VarName(key))
	}
	return names
}

// raw decodes the source. A decode failure is absorbed into an empty
// environment so every value takes its default.
func (l *Loader) raw() rawEnvironment {
	raw, err := parseEnv(l.src, l.prefix)
	if err != nil {
		l.logger.Warn().Err(err).Msg("environment could not be decoded, using defaults")
		return rawEnvironment{}
	}

	return raw
}

// parseInt treats blank, unparsable and negative values as absent.
func (l *Loader) parseInt(key, value string, def int) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		l.logger.Warn().
			Str("var", l.VarName(key)).
			Str("value", value).
			Int("default", def).
			Msg("invalid integer value, using default")
		return def
	}

	return n
}
