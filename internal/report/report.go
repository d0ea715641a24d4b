// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report turns a loaded configuration into a display model with
// masked keys and renders it as text, JSON or YAML.
package report

import (
	"github.com/MKhiriev/gemini-env/internal/config"
	"github.com/MKhiriev/gemini-env/models"
)

// Key is the display form of one API key.
type Key struct {
	Index  int    `json:"index" yaml:"index"`
	Masked string `json:"key" yaml:"key"`
	Length int    `json:"length" yaml:"length"`
	Valid  bool   `json:"valid" yaml:"valid"`
}

// Proxy is the display form of the proxy setting.
type Proxy struct {
	URL   string `json:"url" yaml:"url"`
	Valid bool   `json:"valid" yaml:"valid"`
}

// Summary is safe to print: it never holds a raw key.
type Summary struct {
	Keys             []Key                   `json:"api_keys" yaml:"api_keys"`
	Proxy            *Proxy                  `json:"proxy,omitempty" yaml:"proxy,omitempty"`
	DefaultModel     string                  `json:"default_model" yaml:"default_model"`
	RequestTimeoutMs int                     `json:"request_timeout_ms" yaml:"request_timeout_ms"`
	MaxRetries       int                     `json:"max_retries" yaml:"max_retries"`
	Problems         []string                `json:"problems,omitempty" yaml:"problems,omitempty"`
	Checks           []models.KeyCheckResult `json:"checks,omitempty" yaml:"checks,omitempty"`
}

// Build creates the Summary for cfg.
func Build(cfg config.LoadedConfig) Summary {
	s := Summary{
		Keys:             make([]Key, 0, len(cfg.APIKeys)),
		DefaultModel:     cfg.DefaultModel,
		RequestTimeoutMs: cfg.RequestTimeoutMs,
		MaxRetries:       cfg.MaxRetries,
	}

	masked := config.MaskAPIKeys(cfg.APIKeys)
	for i, key := range cfg.APIKeys {
		s.Keys = append(s.Keys, Key{
			Index:  i,
			Masked: masked[i],
			Length: len([]rune(key)),
			Valid:  config.ValidateAPIKey(key),
		})
	}

	if cfg.HasProxy() {
		s.Proxy = &Proxy{URL: cfg.ProxyURL, Valid: config.ValidateProxyURL(cfg.ProxyURL)}
	}

	return s
}

// ValidKeys returns how many keys passed the format check.
func (s Summary) ValidKeys() int {
	n := 0
	for _, k := range s.Keys {
		if k.Valid {
			n++
		}
	}
	return n
}

// WithProblems returns a copy of s carrying validation messages.
func (s Summary) WithProblems(problems []string) Summary {
	s.Problems = problems
	return s
}

// WithChecks returns a copy of s carrying live key check results.
func (s Summary) WithChecks(checks []models.KeyCheckResult) Summary {
	s.Checks = checks
	return s
}

// ModelEntry is the display form of one model.
type ModelEntry struct {
	ID               string `json:"id" yaml:"id"`
	DisplayName      string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	InputTokenLimit  int    `json:"input_token_limit,omitempty" yaml:"input_token_limit,omitempty"`
	OutputTokenLimit int    `json:"output_token_limit,omitempty" yaml:"output_token_limit,omitempty"`
}

// ModelList is the result of listing models with one of the configured keys.
type ModelList struct {
	KeyIndex     int          `json:"key_index" yaml:"key_index"`
	Key          string       `json:"key" yaml:"key"`
	DefaultModel string       `json:"default_model" yaml:"default_model"`
	HasDefault   bool         `json:"default_model_available" yaml:"default_model_available"`
	Models       []ModelEntry `json:"models" yaml:"models"`
}

// BuildModelList creates the ModelList for list, served with the key at
// keyIndex. Only the masked key is kept.
func BuildModelList(cfg config.LoadedConfig, keyIndex int, list []models.Model) ModelList {
	m := ModelList{
		KeyIndex:     keyIndex,
		DefaultModel: cfg.DefaultModel,
		Models:       make([]ModelEntry, 0, len(list)),
	}
	if keyIndex >= 0 && keyIndex < len(cfg.APIKeys) {
		m.Key = config.MaskAPIKey(cfg.APIKeys[keyIndex])
	}

	for _, model := range list {
		id := model.ID()
		if id == cfg.DefaultModel {
			m.HasDefault = true
		}
		m.Models = append(m.Models, ModelEntry{
			ID:               id,
			DisplayName:      model.DisplayName,
			InputTokenLimit:  model.InputTokenLimit,
			OutputTokenLimit: model.OutputTokenLimit,
		})
	}

	return m
}
