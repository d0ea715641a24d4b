// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/gemini-env/models"
	"github.com/go-resty/resty/v2"
)

// reasonAPIKeyInvalid is reported with a 400 status when the key is unknown.
const reasonAPIKeyInvalid = "API_KEY_INVALID"

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body, reasons := errorMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		if slices.Contains(reasons, reasonAPIKeyInvalid) {
			return fmt.Errorf("%w: %s", ErrUnauthorized, body)
		}
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, body)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorMessage prefers the message from the Gemini error envelope and falls
// back to the raw body, then to the status text.
func errorMessage(resp *resty.Response) (string, []string) {
	raw := strings.TrimSpace(string(resp.Body()))

	var envelope models.APIErrorResponse
	if err := json.Unmarshal([]byte(raw), &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message, envelope.Error.Reasons()
	}

	if raw == "" {
		raw = http.StatusText(resp.StatusCode())
	}
	return raw, nil
}

// isKeyError reports whether err means the current key should be rotated out.
func isKeyError(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden) || errors.Is(err, ErrRateLimited)
}
