// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// rawEnvironment mirrors the variables read by the loader. Every field is a
// string so that malformed numbers reach the loader instead of failing the
// decode; normalisation happens in [Loader].
type rawEnvironment struct {
	APIKeys        string `env:"GEMINI_API_KEYS"`
	ProxyURL       string `env:"PROXY_URL"`
	DefaultModel   string `env:"DEFAULT_MODEL"`
	RequestTimeout string `env:"REQUEST_TIMEOUT"`
	MaxRetries     string `env:"MAX_RETRIES"`
}

// parseEnv decodes the prefixed variables found in src into a
// [rawEnvironment] using the caarlos0/env library. Only the variables listed
// in [Keys] are read from src.
//
// Returns a wrapped error if env.ParseWithOptions fails.
func parseEnv(src Source, prefix string) (rawEnvironment, error) {
	names := make([]string, 0, len(Keys))
	for _, key := range Keys {
		names = append(names, prefix+key)
	}

	var raw rawEnvironment
	err := env.ParseWithOptions(&raw, env.Options{
		Environment: snapshot(src, names...),
		Prefix:      prefix,
	})
	if err != nil {
		return rawEnvironment{}, fmt.Errorf("error getting env configs: %w", err)
	}

	return raw, nil
}
