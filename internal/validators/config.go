// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/gemini-env/internal/config"
)

// Field name constants used to restrict validation to a subset of
// [config.LoadedConfig] fields.
const (
	// FieldAPIKeys requires at least one key and checks the format of each.
	FieldAPIKeys = "api_keys"

	// FieldProxyURL checks the proxy URL when one is configured.
	FieldProxyURL = "proxy_url"

	// FieldDefaultModel requires a non-empty model identifier.
	FieldDefaultModel = "default_model"

	// FieldRequestTimeout requires a positive request timeout that fits a
	// time.Duration.
	FieldRequestTimeout = "request_timeout"

	// FieldMaxRetries requires a non-negative retry count.
	FieldMaxRetries = "max_retries"
)

// AllFields lists every field validated by default, in report order.
var AllFields = []string{
	FieldAPIKeys,
	FieldProxyURL,
	FieldDefaultModel,
	FieldRequestTimeout,
	FieldMaxRetries,
}

// ConfigValidator implements [Validator] for [config.LoadedConfig].
//
// Unlike a fail-fast check it reports every problem it finds: the returned
// error joins one wrapped sentinel per failing field or key, so callers can
// test for each with errors.Is.
type ConfigValidator struct {
}

// NewConfigValidator constructs a new ConfigValidator and returns it as the
// Validator interface.
func NewConfigValidator() Validator {
	return &ConfigValidator{}
}

// Validate accepts config.LoadedConfig or *config.LoadedConfig.
//
// Returns ErrUnsupportedType for any other type and ErrUnknownField for a
// field name not listed in [AllFields]. With no fields, all are validated.
func (v *ConfigValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case config.LoadedConfig:
		return v.validateConfig(ctx, value, fields...)
	case *config.LoadedConfig:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateConfig(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ConfigValidator) validateConfig(ctx context.Context, cfg config.LoadedConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = AllFields
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldAPIKeys:
			errs = append(errs, v.validateAPIKeys(ctx, cfg.APIKeys)...)
		case FieldProxyURL:
			if cfg.HasProxy() && !config.ValidateProxyURL(cfg.ProxyURL) {
				errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidProxyURL, cfg.ProxyURL))
			}
		case FieldDefaultModel:
			if cfg.DefaultModel == "" {
				errs = append(errs, ErrEmptyDefaultModel)
			}
		case FieldRequestTimeout:
			if cfg.RequestTimeoutMs <= 0 || int64(cfg.RequestTimeoutMs) > config.MaxRequestTimeoutMs {
				errs = append(errs, fmt.Errorf("%w: %d ms", ErrInvalidTimeout, cfg.RequestTimeoutMs))
			}
		case FieldMaxRetries:
			if cfg.MaxRetries < 0 {
				errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidRetries, cfg.MaxRetries))
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return errors.Join(errs...)
}

// validateAPIKeys never puts a raw key into an error message.
func (v *ConfigValidator) validateAPIKeys(ctx context.Context, keys config.APIKeyList) []error {
	if len(keys) == 0 {
		return []error{ErrNoAPIKeys}
	}

	var errs []error
	for i, key := range keys {
		if !config.ValidateAPIKey(key) {
			errs = append(errs, fmt.Errorf("%w at index %d (%s, %d chars)", ErrInvalidAPIKey, i, config.MaskAPIKey(key), len([]rune(key))))
		}
	}

	return errs
}
