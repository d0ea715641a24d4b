// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "os"

//go:generate mockgen -source=source.go -destination=../mock/source_mock.go -package=mock

// Source is a read-only key-value provider. Implementations must not mutate
// state on lookup; the loader treats every Source as an immutable snapshot.
type Source interface {
	// Lookup returns the value stored under key and whether it is set.
	// A key that is set to an empty string reports ok == true.
	Lookup(key string) (string, bool)
}

// MapSource is a [Source] backed by a plain map.
type MapSource map[string]string

// Lookup implements [Source].
func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// OSSource is a [Source] backed by the process environment.
type OSSource struct{}

// Lookup implements [Source] using os.LookupEnv.
func (OSSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// snapshot copies the given keys out of src into a new map. Keys that are not
// set are omitted so callers can still tell absent from empty.
func snapshot(src Source, keys ...string) map[string]string {
	out := make(map[string]string, len(keys))
	if src == nil {
		return out
	}

	for _, key := range keys {
		if v, ok := src.Lookup(key); ok {
			out[key] = v
		}
	}

	return out
}
