// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"dario.cat/mergo"
)

// SourceOptions selects the layers merged by [NewSource].
type SourceOptions struct {
	// Dir is the directory searched for dotenv files. Empty disables the
	// dotenv layer.
	Dir string

	// Mode selects the mode-specific dotenv files (.env.<mode>,
	// .env.<mode>.local). Empty loads only .env and .env.local.
	Mode string

	// JSONPath is an optional JSON config file.
	JSONPath string

	// Prefix is applied to the keys read from the JSON file. Defaults to
	// [DefaultPrefix] when nil.
	Prefix *string

	// Overrides are applied after the files, e.g. values given on the
	// command line. Keys are full variable names.
	Overrides map[string]string

	// UseOS adds the process environment as the last layer.
	UseOS bool
}

type sourceBuilder struct {
	layers []map[string]string
	err    error
}

func newSourceBuilder() *sourceBuilder {
	return &sourceBuilder{
		layers: make([]map[string]string, 0, 4),
	}
}

// NewSource merges the layers selected by opts into a single [Source]. Later
// layers override earlier ones: dotenv files, JSON file, overrides, process
// environment.
func NewSource(opts SourceOptions) (Source, error) {
	prefix := DefaultPrefix
	if opts.Prefix != nil {
		prefix = *opts.Prefix
	}

	return newSourceBuilder().
		withDotenv(opts.Dir, opts.Mode).
		withJSON(opts.JSONPath, prefix).
		withMap(opts.Overrides).
		withOS(opts.UseOS).
		build()
}

func (b *sourceBuilder) build() (Source, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building source: %w", b.err)
	}

	merged := make(map[string]string)
	for _, layer := range b.layers {
		if err := mergo.Merge(&merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging sources: %w", err)
		}
	}

	return MapSource(merged), nil
}

func (b *sourceBuilder) withDotenv(dir, mode string) *sourceBuilder {
	if dir == "" {
		return b
	}

	for _, name := range dotenvFiles(mode) {
		vars, err := parseDotenv(dir, name)
		if err != nil {
			b.err = errors.Join(b.err, err)
			continue
		}
		b.layers = append(b.layers, vars)
	}

	return b
}

func (b *sourceBuilder) withJSON(path, prefix string) *sourceBuilder {
	if path == "" {
		return b
	}

	vars, err := parseJSON(path, prefix)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, vars)
	return b
}

func (b *sourceBuilder) withMap(vars map[string]string) *sourceBuilder {
	if len(vars) == 0 {
		return b
	}

	layer := make(map[string]string, len(vars))
	for k, v := range vars {
		layer[k] = v
	}

	b.layers = append(b.layers, layer)
	return b
}

func (b *sourceBuilder) withOS(enabled bool) *sourceBuilder {
	if !enabled {
		return b
	}

	layer := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && k != "" {
			layer[k] = v
		}
	}

	b.layers = append(b.layers, layer)
	return b
}
