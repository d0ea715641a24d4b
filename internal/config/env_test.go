// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	src := MapSource{
		"VITE_GEMINI_API_KEYS": "a,b",
		"VITE_PROXY_URL":       "http://proxy",
		"VITE_DEFAULT_MODEL":   "model",
		"VITE_REQUEST_TIMEOUT": "not-a-number",
		"VITE_MAX_RETRIES":     "2",
	}

	// Act
	raw, err := parseEnv(src, DefaultPrefix)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, rawEnvironment{
		APIKeys:        "a,b",
		ProxyURL:       "http://proxy",
		DefaultModel:   "model",
		RequestTimeout: "not-a-number",
		MaxRetries:     "2",
	}, raw)
}

func TestParseEnv_PartialFields(t *testing.T) {
	raw, err := parseEnv(MapSource{"VITE_MAX_RETRIES": "2"}, DefaultPrefix)

	require.NoError(t, err)
	assert.Empty(t, raw.APIKeys)
	assert.Empty(t, raw.ProxyURL)
	assert.Equal(t, "2", raw.MaxRetries)
}

func TestParseEnv_IgnoresProcessEnvironment(t *testing.T) {
	t.Setenv("VITE_DEFAULT_MODEL", "from-process")

	raw, err := parseEnv(MapSource{}, DefaultPrefix)

	require.NoError(t, err)
	assert.Empty(t, raw.DefaultModel)
}

func TestParseEnv_NilSource(t *testing.T) {
	raw, err := parseEnv(nil, DefaultPrefix)

	require.NoError(t, err)
	assert.Equal(t, rawEnvironment{}, raw)
}

func TestSnapshot_KeepsEmptyValues(t *testing.T) {
	got := snapshot(MapSource{"A": "", "B": "b", "C": "c"}, "A", "B", "D")
	assert.Equal(t, map[string]string{"A": "", "B": "b"}, got)
}
