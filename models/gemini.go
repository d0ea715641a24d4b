// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Model describes a Gemini model as returned by the models endpoint.
type Model struct {
	Name                       string   `json:"name"`
	BaseModelID                string   `json:"baseModelId,omitempty"`
	Version                    string   `json:"version,omitempty"`
	DisplayName                string   `json:"displayName,omitempty"`
	Description                string   `json:"description,omitempty"`
	InputTokenLimit            int      `json:"inputTokenLimit,omitempty"`
	OutputTokenLimit           int      `json:"outputTokenLimit,omitempty"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods,omitempty"`
}

// ID returns the model name without the "models/" resource prefix.
func (m Model) ID() string {
	return strings.TrimPrefix(m.Name, ModelResourcePrefix)
}

// ModelResourcePrefix prefixes every model resource name.
const ModelResourcePrefix = "models/"

// ListModelsResponse is a single page of the models listing.
type ListModelsResponse struct {
	Models        []Model `json:"models"`
	NextPageToken string  `json:"nextPageToken,omitempty"`
}

// APIErrorResponse is the error envelope returned by the Gemini API.
type APIErrorResponse struct {
	Error APIError `json:"error"`
}

// APIError carries the status and message of a failed call. Details holds
// the raw detail objects; their "reason" field names the failure cause
// (e.g. API_KEY_INVALID).
type APIError struct {
	Code    int              `json:"code"`
	Message string           `json:"message"`
	Status  string           `json:"status"`
	Details []map[string]any `json:"details,omitempty"`
}

// Reasons returns the "reason" values found in Details.
func (e APIError) Reasons() []string {
	var reasons []string
	for _, d := range e.Details {
		if r, ok := d["reason"].(string); ok && r != "" {
			reasons = append(reasons, r)
		}
	}
	return reasons
}

// KeyCheckResult is the outcome of probing a single API key.
type KeyCheckResult struct {
	Index  int    `json:"index" yaml:"index"`
	Masked string `json:"key" yaml:"key"`
	OK     bool   `json:"ok" yaml:"ok"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`

	// RequestID is the X-Request-Id sent with the key check.
	RequestID string `json:"request_id,omitempty" yaml:"request_id,omitempty"`
}
