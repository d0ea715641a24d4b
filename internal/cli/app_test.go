// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/gemini-env/internal/adapter"
	"github.com/MKhiriev/gemini-env/internal/config"
	"github.com/MKhiriev/gemini-env/internal/logger"
	"github.com/MKhiriev/gemini-env/internal/mock"
	"github.com/MKhiriev/gemini-env/internal/report"
	"github.com/MKhiriev/gemini-env/internal/utils"
	"github.com/MKhiriev/gemini-env/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	keyA = "AIzaSyA-aaaaaaaaaaaaaaaaaaaaaa111111"
	keyB = "AIzaSyB-bbbbbbbbbbbbbbbbbbbbbb222222"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type harness struct {
	out, err bytes.Buffer
	app      *App
}

func newHarness(t *testing.T, opts ...AppOption) *harness {
	t.Helper()
	h := &harness{}
	opts = append([]AppOption{WithOutput(&h.out, &h.err)}, opts...)
	h.app = NewApp(opts...)
	return h
}

// run executes args isolated from the process environment and the working
// directory.
func (h *harness) run(t *testing.T, args ...string) error {
	t.Helper()
	base := []string{"--no-os-env", "--dir", t.TempDir()}
	return h.app.Execute(context.Background(), append(base, args...))
}

func decodeSummary(t *testing.T, data []byte) report.Summary {
	t.Helper()
	var s report.Summary
	require.NoError(t, json.Unmarshal(data, &s))
	return s
}

// ── show ──────────────────────────────────────────────────────────────────────

func TestShow_Defaults(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run(t, "show", "-o", "json"))

	s := decodeSummary(t, h.out.Bytes())
	assert.Empty(t, s.Keys)
	assert.Nil(t, s.Proxy)
	assert.Equal(t, config.DefaultModel, s.DefaultModel)
	assert.Equal(t, config.DefaultRequestTimeoutMs, s.RequestTimeoutMs)
	assert.Equal(t, config.DefaultMaxRetries, s.MaxRetries)
}

func TestShow_IsDefaultCommand(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run(t, "--set", "VITE_DEFAULT_MODEL=gemini-2.5-pro"))

	assert.Contains(t, h.out.String(), "gemini-2.5-pro")
}

func TestShow_Overrides(t *testing.T) {
	h := newHarness(t)

	err := h.run(t, "show", "-o", "json",
		"--set", "VITE_GEMINI_API_KEYS="+keyA+", "+keyB,
		"--set", "VITE_PROXY_URL= http://proxy:3128 ",
		"--set", "VITE_REQUEST_TIMEOUT=abc",
	)

	require.NoError(t, err)
	s := decodeSummary(t, h.out.Bytes())
	require.Len(t, s.Keys, 2)
	assert.Equal(t, config.MaskAPIKey(keyB), s.Keys[1].Masked)
	require.NotNil(t, s.Proxy)
	assert.Equal(t, "http://proxy:3128", s.Proxy.URL)
	assert.Equal(t, config.DefaultRequestTimeoutMs, s.RequestTimeoutMs)
	assert.NotContains(t, h.out.String(), keyA)
	assert.Contains(t, h.err.String(), "invalid integer value")
}

func TestShow_DotenvModeAndPrefix(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("APP_MAX_RETRIES=1\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.staging"), []byte("APP_MAX_RETRIES=6\n"), 0o600))
	h := newHarness(t)

	err := h.app.Execute(context.Background(), []string{
		"show", "--no-os-env", "--dir", dir, "--mode", "staging", "--prefix", "APP_", "-o", "yaml",
	})

	require.NoError(t, err)
	assert.Contains(t, h.out.String(), "max_retries: 6")
}

func TestShow_OSEnvironment(t *testing.T) {
	t.Setenv("VITE_DEFAULT_MODEL", "from-process")
	h := newHarness(t)

	require.NoError(t, h.app.Execute(context.Background(), []string{"show", "--dir", t.TempDir(), "-o", "json"}))

	assert.Equal(t, "from-process", decodeSummary(t, h.out.Bytes()).DefaultModel)
}

func TestShow_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad override", args: []string{"show", "--set", "novalue"}},
		{name: "missing json file", args: []string{"show", "--config", "/nonexistent/config.json"}},
		{name: "unknown output", args: []string{"show", "-o", "xml"}},
		{name: "bad log level", args: []string{"show", "--log-level", "loud"}},
		{name: "bad log format", args: []string{"show", "--log-format", "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, newHarness(t).run(t, tt.args...))
		})
	}
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate_OK(t *testing.T) {
	h := newHarness(t)

	err := h.run(t, "validate", "--set", "VITE_GEMINI_API_KEYS="+keyA)

	require.NoError(t, err)
	assert.NotContains(t, h.out.String(), "Problems")
}

func TestValidate_ReportsProblems(t *testing.T) {
	h := newHarness(t)

	err := h.run(t, "validate", "-o", "json",
		"--set", "VITE_GEMINI_API_KEYS=short-key",
		"--set", "VITE_PROXY_URL=ftp://x.com",
		"--set", "VITE_REQUEST_TIMEOUT=0",
	)

	require.ErrorIs(t, err, ErrInvalidConfig)
	s := decodeSummary(t, h.out.Bytes())
	assert.Len(t, s.Problems, 3)
	assert.NotContains(t, h.out.String(), "short-key")
}

func TestValidate_FieldFlag(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run(t, "validate", "--field", "proxy_url,max_retries"))

	err := newHarness(t).run(t, "validate", "--field", "colour")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestProblems(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")

	assert.Nil(t, problems(nil))
	assert.Equal(t, []string{"first"}, problems(first))
	assert.Equal(t, []string{"first", "second"}, problems(errors.Join(first, second)))
}

// ── check ─────────────────────────────────────────────────────────────────────

func TestCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockGeminiAdapter(ctrl)
	var sentIDs []string
	recordID := func(ctx context.Context, _ string) {
		id, ok := utils.GetRequestIDFromContext(ctx)
		require.True(t, ok)
		sentIDs = append(sentIDs, id)
	}
	api.EXPECT().CheckKey(gomock.Any(), keyA).DoAndReturn(func(ctx context.Context, key string) error {
		recordID(ctx, key)
		return nil
	})
	api.EXPECT().CheckKey(gomock.Any(), keyB).DoAndReturn(func(ctx context.Context, key string) error {
		recordID(ctx, key)
		return adapter.ErrUnauthorized
	})

	var gotCfg config.LoadedConfig
	h := newHarness(t, WithAdapterFactory(func(cfg config.LoadedConfig, _ *logger.Logger) (adapter.GeminiAdapter, error) {
		gotCfg = cfg
		return api, nil
	}))

	err := h.run(t, "check", "-o", "json",
		"--set", "VITE_GEMINI_API_KEYS="+keyA+","+keyB,
		"--set", "VITE_MAX_RETRIES=5",
	)

	require.ErrorIs(t, err, ErrKeyCheckFailed)
	assert.Equal(t, 5, gotCfg.MaxRetries)
	s := decodeSummary(t, h.out.Bytes())
	require.Len(t, s.Checks, 2)
	assert.True(t, s.Checks[0].OK)
	assert.False(t, s.Checks[1].OK)
	assert.Equal(t, adapter.ErrUnauthorized.Error(), s.Checks[1].Error)
	assert.Equal(t, config.MaskAPIKey(keyB), s.Checks[1].Masked)

	require.Len(t, sentIDs, 2)
	assert.NotEqual(t, sentIDs[0], sentIDs[1])
	assert.Equal(t, sentIDs[0], s.Checks[0].RequestID)
	assert.Equal(t, sentIDs[1], s.Checks[1].RequestID)
}

// TestCheck_JSONLogs verifies that --log-format json writes structured
// entries carrying the request id and only the masked key.
func TestCheck_JSONLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockGeminiAdapter(ctrl)
	api.EXPECT().CheckKey(gomock.Any(), keyA).Return(nil)

	h := newHarness(t, WithAdapterFactory(func(config.LoadedConfig, *logger.Logger) (adapter.GeminiAdapter, error) {
		return api, nil
	}))

	err := h.run(t, "check", "-o", "json", "--log-format", "json", "--log-level", "info",
		"--set", "VITE_GEMINI_API_KEYS="+keyA,
	)

	require.NoError(t, err)
	s := decodeSummary(t, h.out.Bytes())
	require.Len(t, s.Checks, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(h.err.Bytes(), &entry))
	assert.Equal(t, "key checked", entry["message"])
	assert.Equal(t, "envcheck", entry["role"])
	assert.Equal(t, s.Checks[0].RequestID, entry["request_id"])
	assert.NotContains(t, h.err.String(), keyA)
}

func TestCheck_WithModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockGeminiAdapter(ctrl)
	api.EXPECT().CheckKey(gomock.Any(), keyA).Return(nil)
	api.EXPECT().GetModel(gomock.Any(), "gemini-0-missing").Return(models.Model{}, adapter.ErrNotFound)

	h := newHarness(t, WithAdapterFactory(func(config.LoadedConfig, *logger.Logger) (adapter.GeminiAdapter, error) {
		return api, nil
	}))

	err := h.run(t, "check", "--model",
		"--set", "VITE_GEMINI_API_KEYS="+keyA,
		"--set", "VITE_DEFAULT_MODEL=gemini-0-missing",
	)

	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, h.out.String(), "gemini-0-missing")
}

func TestCheck_NoKeys(t *testing.T) {
	h := newHarness(t, WithAdapterFactory(func(config.LoadedConfig, *logger.Logger) (adapter.GeminiAdapter, error) {
		t.Fatal("adapter must not be created without keys")
		return nil, nil
	}))

	assert.ErrorIs(t, h.run(t, "check"), ErrNoAPIKeys)
}

func TestCheck_AdapterError(t *testing.T) {
	h := newHarness(t)

	err := h.run(t, "check",
		"--set", "VITE_GEMINI_API_KEYS="+keyA,
		"--set", "VITE_PROXY_URL=socks5://proxy:1080",
	)

	assert.ErrorIs(t, err, adapter.ErrInvalidProxyURL)
}

// ── models ────────────────────────────────────────────────────────────────────

func TestModels(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockGeminiAdapter(ctrl)
	api.EXPECT().ListModels(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Model, error) {
		_, ok := utils.GetRequestIDFromContext(ctx)
		assert.True(t, ok)
		return []models.Model{
			{Name: "models/gemini-2.5-flash", DisplayName: "Gemini 2.5 Flash"},
			{Name: "models/gemini-2.5-pro"},
		}, nil
	})
	api.EXPECT().KeyIndex().Return(1)

	h := newHarness(t, WithAdapterFactory(func(config.LoadedConfig, *logger.Logger) (adapter.GeminiAdapter, error) {
		return api, nil
	}))

	err := h.run(t, "models", "-o", "json", "--set", "VITE_GEMINI_API_KEYS="+keyA+","+keyB)

	require.NoError(t, err)
	var list report.ModelList
	require.NoError(t, json.Unmarshal(h.out.Bytes(), &list))
	assert.Equal(t, 1, list.KeyIndex)
	assert.Equal(t, config.MaskAPIKey(keyB), list.Key)
	assert.True(t, list.HasDefault)
	require.Len(t, list.Models, 2)
	assert.Equal(t, "gemini-2.5-pro", list.Models[1].ID)
	assert.NotContains(t, h.out.String(), keyB)
}

func TestModels_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockGeminiAdapter(ctrl)
	api.EXPECT().ListModels(gomock.Any()).Return(nil, adapter.ErrUnauthorized)

	h := newHarness(t, WithAdapterFactory(func(config.LoadedConfig, *logger.Logger) (adapter.GeminiAdapter, error) {
		return api, nil
	}))

	assert.ErrorIs(t, h.run(t, "models", "--set", "VITE_GEMINI_API_KEYS="+keyA), adapter.ErrUnauthorized)
	assert.ErrorIs(t, newHarness(t).run(t, "models"), ErrNoAPIKeys)
}

// ── copy ──────────────────────────────────────────────────────────────────────

func TestCopy(t *testing.T) {
	var copied string
	h := newHarness(t, WithClipboard(func(s string) error {
		copied = s
		return nil
	}))

	require.NoError(t, h.run(t, "copy", "1", "--set", "VITE_GEMINI_API_KEYS="+keyA+","+keyB))

	assert.Equal(t, keyB, copied)
	assert.Contains(t, h.out.String(), config.MaskAPIKey(keyB))
	assert.NotContains(t, h.out.String(), keyB)
}

func TestCopy_Errors(t *testing.T) {
	clip := WithClipboard(func(string) error { return assert.AnError })

	assert.ErrorIs(t, newHarness(t).run(t, "copy", "0"), ErrKeyIndexOutOfRange)
	assert.ErrorIs(t, newHarness(t).run(t, "copy", "--set", "VITE_GEMINI_API_KEYS="+keyA, "--", "-1"), ErrKeyIndexOutOfRange)
	assert.ErrorIs(t, newHarness(t).run(t, "copy", "5", "--set", "VITE_GEMINI_API_KEYS="+keyA+","+keyB), ErrKeyIndexOutOfRange)
	assert.ErrorIs(t, newHarness(t).run(t, "copy", "2", "--set", "VITE_GEMINI_API_KEYS="+keyA+","+keyB), ErrKeyIndexOutOfRange)
	assert.Error(t, newHarness(t).run(t, "copy", "first"))
	assert.Error(t, newHarness(t).run(t, "copy"))
	assert.ErrorIs(t, newHarness(t, clip).run(t, "copy", "0", "--set", "VITE_GEMINI_API_KEYS="+keyA), assert.AnError)
}

// ── version ───────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	h := newHarness(t, WithBuildInfo(models.NewAppBuildInfo("1.4.0", "2026-10-01", "")))

	require.NoError(t, h.run(t, "version"))

	assert.Equal(t, "Build version: 1.4.0\nBuild date: 2026-10-01\nBuild commit: N/A\n", h.out.String())
}
