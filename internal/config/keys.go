// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// apiKeyMinLen and apiKeyMaxLen are exclusive bounds.
	apiKeyMinLen = 20
	apiKeyMaxLen = 100

	maskChar       = '*'
	maskVisibleLen = 6
)

// ParseAPIKeys splits raw on commas, removes every whitespace character from
// each segment (not only the surrounding ones) and drops segments that end up
// empty. The result keeps input order and duplicates. It is never nil.
//
// Example:
//
//	ParseAPIKeys("  ab c ,, d e ") // []string{"abc", "de"}
func ParseAPIKeys(raw string) APIKeyList {
	keys := make(APIKeyList, 0)
	if raw == "" {
		return keys
	}

	for _, segment := range strings.Split(raw, ",") {
		key := stripWhitespace(segment)
		if key == "" {
			continue
		}
		keys = append(keys, key)
	}

	return keys
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// ValidateAPIKey is a heuristic format check: it reports whether the key is
// longer than 20 and shorter than 100 characters. It says nothing about
// whether the key is accepted by the API.
func ValidateAPIKey(key string) bool {
	n := utf8.RuneCountInString(key)
	return n > apiKeyMinLen && n < apiKeyMaxLen
}

// MaskAPIKey returns key with every character except the last six replaced by
// '*'. Keys of six characters or fewer are masked entirely. The result has
// the same number of characters as key. Masking is for display only.
func MaskAPIKey(key string) string {
	runes := []rune(key)
	if len(runes) <= maskVisibleLen {
		return strings.Repeat(string(maskChar), len(runes))
	}

	hidden := len(runes) - maskVisibleLen
	return strings.Repeat(string(maskChar), hidden) + string(runes[hidden:])
}

// MaskAPIKeys applies [MaskAPIKey] to every key.
func MaskAPIKeys(keys []string) []string {
	masked := make([]string, len(keys))
	for i, key := range keys {
		masked[i] = MaskAPIKey(key)
	}
	return masked
}
