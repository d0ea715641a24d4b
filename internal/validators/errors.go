// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoAPIKeys         = errors.New("no API keys configured")
	ErrInvalidAPIKey     = errors.New("invalid API key")
	ErrInvalidProxyURL   = errors.New("invalid proxy URL")
	ErrEmptyDefaultModel = errors.New("default model is required")
	ErrInvalidTimeout    = errors.New("request timeout must be positive")
	ErrInvalidRetries    = errors.New("max retries cannot be negative")
)
