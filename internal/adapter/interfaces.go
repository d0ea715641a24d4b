// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer that consumes a loaded
// configuration: a REST client for the Gemini API.
//
// The primary abstraction is [GeminiAdapter]. The HTTP implementation
// ([NewGeminiAdapter]) applies the configured timeout, retry count and proxy,
// authenticates with the configured API keys and rotates to the next key
// when one is rejected or rate limited.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for a rejected key, [ErrRateLimited] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/gemini-env/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gemini_adapter_mock.go -package=mock

// GeminiAdapter defines the calls the envcheck tool makes against the Gemini
// API.
type GeminiAdapter interface {
	// ListModels returns every model visible to the current key, following
	// pagination. A key that is rejected or rate limited is rotated out and
	// the call is repeated with the next key.
	ListModels(ctx context.Context) ([]models.Model, error)

	// GetModel fetches a single model by id (with or without the "models/"
	// prefix). An empty name selects the configured default model.
	GetModel(ctx context.Context, name string) (models.Model, error)

	// CheckKey tries key with a minimal request. It returns nil when the key
	// is accepted, otherwise a mapped sentinel error.
	CheckKey(ctx context.Context, key string) error

	// KeyIndex returns the index of the key used for the next request.
	KeyIndex() int
}
