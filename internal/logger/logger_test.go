// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNew_RoleField verifies that every log entry produced by a logger
// created with New contains the expected "role" field.
func TestNew_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := New("test-role", &buf)

	l.Info().Msg("hello")

	assert.Equal(t, "test-role", decode(t, &buf)["role"])
}

// TestNew_ContainsTimestampAndCaller verifies the "time" and "func" fields.
func TestNew_ContainsTimestampAndCaller(t *testing.T) {
	var buf bytes.Buffer
	l := New("ts-role", &buf)

	l.Info().Msg("ts check")

	entry := decode(t, &buf)
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNew_ContainsTimestampAndCaller")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNew_DebugEnabled verifies that New emits debug entries.
func TestNew_DebugEnabled(t *testing.T) {
	var buf bytes.Buffer
	l := New("debug-role", &buf)

	l.Debug().Msg("debug")

	assert.Equal(t, "debug", decode(t, &buf)["level"])
}

func TestNewConsoleLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger("cli", &buf, zerolog.WarnLevel)

	l.Info().Msg("hidden")
	l.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "role=cli")
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, level)

	level, err = ParseLevel("disabled")
	require.NoError(t, err)
	assert.Equal(t, zerolog.Disabled, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

func TestLeveled(t *testing.T) {
	var buf bytes.Buffer
	l := New("lvl", &buf).Leveled(zerolog.ErrorLevel)

	l.Warn().Msg("filtered")
	assert.Empty(t, buf.String())

	l.Error().Msg("kept")
	assert.Equal(t, "kept", decode(t, &buf)["message"])
}

// TestGetChildLogger_InheritsFields verifies that the child logger inherits
// context fields (e.g. "role") from the parent and adds its component.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := New("inherited-role", &buf)

	child := parent.GetChildLogger("adapter")
	assert.NotSame(t, parent, child)
	child.Info().Msg("child message")

	entry := decode(t, &buf)
	assert.Equal(t, "inherited-role", entry["role"])
	assert.Equal(t, "adapter", entry["component"])

	buf.Reset()
	parent.Info().Msg("parent message")
	assert.NotContains(t, decode(t, &buf), "component")
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

// TestWithContext_RoundTrip verifies that a logger attached with WithContext
// is returned by FromContext.
func TestWithContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := New("ctx-role", &buf)

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "ctx-role", decode(t, &buf)["role"])
}
