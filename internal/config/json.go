// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// StructuredJSONConfig is the on-disk JSON representation of the loader
// variables. Numbers may be given as JSON numbers or strings; API keys as a
// comma-separated string or an array.
type StructuredJSONConfig struct {
	GeminiAPIKeys  jsonValue `json:"gemini_api_keys"`
	ProxyURL       jsonValue `json:"proxy_url"`
	DefaultModel   jsonValue `json:"default_model"`
	RequestTimeout jsonValue `json:"request_timeout"`
	MaxRetries     jsonValue `json:"max_retries"`
}

// parseJSON reads the file at jsonFilePath and returns its values keyed by
// the prefixed variable names. Fields missing from the file are left out of
// the result.
func parseJSON(jsonFilePath, prefix string) (map[string]string, error) {
	data, err := os.ReadFile(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	var jsonCfg StructuredJSONConfig
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err = dec.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	vars := make(map[string]string, len(Keys))
	for key, value := range map[string]jsonValue{
		KeyAPIKeys:        jsonCfg.GeminiAPIKeys,
		KeyProxyURL:       jsonCfg.ProxyURL,
		KeyDefaultModel:   jsonCfg.DefaultModel,
		KeyRequestTimeout: jsonCfg.RequestTimeout,
		KeyMaxRetries:     jsonCfg.MaxRetries,
	} {
		if value.set {
			vars[prefix+key] = value.value
		}
	}

	return vars, nil
}

// jsonValue accepts a string, number or array of strings and keeps its
// textual form. Arrays are joined with commas.
type jsonValue struct {
	value string
	set   bool
}

func (v *jsonValue) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case nil:
		*v = jsonValue{}
	case string:
		*v = jsonValue{value: value, set: true}
	case float64:
		*v = jsonValue{value: strconv.FormatFloat(value, 'f', -1, 64), set: true}
	case []any:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("unsupported array element %v", item)
			}
			parts = append(parts, s)
		}
		*v = jsonValue{value: strings.Join(parts, ","), set: true}
	default:
		return fmt.Errorf("unsupported json value %s", string(b))
	}

	return nil
}
