// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered request ids.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUID v7, falling back to a random v4 if the clock
// source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// RequestID returns the id stored in ctx, or a freshly generated one.
func (g *UUIDGenerator) RequestID(ctx context.Context) string {
	if id, ok := GetRequestIDFromContext(ctx); ok {
		return id
	}

	return g.Generate()
}
