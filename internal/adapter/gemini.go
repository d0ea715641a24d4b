// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/gemini-env/internal/config"
	"github.com/MKhiriev/gemini-env/internal/logger"
	"github.com/MKhiriev/gemini-env/internal/utils"
	"github.com/MKhiriev/gemini-env/models"
	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the Gemini REST endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

const (
	headerAPIKey    = "x-goog-api-key"
	headerRequestID = "X-Request-Id"

	// listPageSize is the page size requested when listing models.
	listPageSize = 100
)

// Options tunes [NewGeminiAdapter] beyond what [config.LoadedConfig] carries.
type Options struct {
	// BaseURL overrides [DefaultBaseURL].
	BaseURL string
	// UserAgent overrides the User-Agent header.
	UserAgent string
	// RetryWaitTime is the initial backoff between retries of one request.
	RetryWaitTime time.Duration
}

type geminiAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	model string
	keys  config.APIKeyList

	mu      sync.Mutex
	current int

	logger *logger.Logger
}

// NewGeminiAdapter constructs an HTTP/REST implementation of [GeminiAdapter]
// from cfg. The request timeout, retry count and proxy are taken from cfg.
//
// Returns [ErrInvalidProxyURL] (wrapped) if cfg names a proxy that does not
// pass [config.ValidateProxyURL]. An empty key list is accepted here; calls
// that need a key then fail with [ErrNoAPIKeys].
func NewGeminiAdapter(cfg config.LoadedConfig, opts Options, log *logger.Logger) (GeminiAdapter, error) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.GetChildLogger("gemini")
	if cfg.HasProxy() && !config.ValidateProxyURL(cfg.ProxyURL) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProxyURL, cfg.ProxyURL)
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := utils.NewConfiguredHTTPClient(utils.HTTPClientOptions{
		BaseURL:       strings.TrimRight(baseURL, "/"),
		Timeout:       cfg.RequestTimeout(),
		RetryCount:    cfg.MaxRetries,
		RetryWaitTime: opts.RetryWaitTime,
		ProxyURL:      cfg.ProxyURL,
		UserAgent:     opts.UserAgent,
	})

	keys := make(config.APIKeyList, len(cfg.APIKeys))
	copy(keys, cfg.APIKeys)

	log.Debug().
		Str("base_url", baseURL).
		Int("keys", len(keys)).
		Bool("proxy", cfg.HasProxy()).
		Dur("timeout", cfg.RequestTimeout()).
		Int("retries", cfg.MaxRetries).
		Msg("gemini adapter created")

	return &geminiAdapter{
		client: client,
		ids:    utils.NewUUIDGenerator(),
		model:  cfg.DefaultModel,
		keys:   keys,
		logger: log,
	}, nil
}

// KeyIndex implements [GeminiAdapter].
func (g *geminiAdapter) KeyIndex() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// ListModels implements [GeminiAdapter].
func (g *geminiAdapter) ListModels(ctx context.Context) ([]models.Model, error) {
	var all []models.Model
	err := g.withKeyRotation(ctx, func(key string) error {
		all = all[:0]
		pageToken := ""
		for {
			req := g.request(ctx, key).SetQueryParam("pageSize", fmt.Sprint(listPageSize))
			if pageToken != "" {
				req.SetQueryParam("pageToken", pageToken)
			}

			resp, err := req.Get("/models")
			if err != nil {
				return fmt.Errorf("list models request: %w", err)
			}
			if err = mapHTTPError(resp); err != nil {
				return err
			}

			var page models.ListModelsResponse
			if err = json.Unmarshal(resp.Body(), &page); err != nil {
				return fmt.Errorf("decode list models response: %w", err)
			}

			all = append(all, page.Models...)
			if page.NextPageToken == "" {
				return nil
			}
			pageToken = page.NextPageToken
		}
	})
	if err != nil {
		return nil, err
	}

	return all, nil
}

// GetModel implements [GeminiAdapter].
func (g *geminiAdapter) GetModel(ctx context.Context, name string) (models.Model, error) {
	if name == "" {
		name = g.model
	}
	name = strings.TrimPrefix(name, models.ModelResourcePrefix)

	var model models.Model
	err := g.withKeyRotation(ctx, func(key string) error {
		resp, err := g.request(ctx, key).
			SetPathParam("model", name).
			Get("/models/{model}")
		if err != nil {
			return fmt.Errorf("get model request: %w", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return err
		}

		if err = json.Unmarshal(resp.Body(), &model); err != nil {
			return fmt.Errorf("decode model response: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Model{}, err
	}

	return model, nil
}

// CheckKey implements [GeminiAdapter].
func (g *geminiAdapter) CheckKey(ctx context.Context, key string) error {
	if key == "" {
		return ErrNoAPIKeys
	}

	resp, err := g.request(ctx, key).
		SetQueryParam("pageSize", "1").
		Get("/models")
	if err != nil {
		return fmt.Errorf("check key request: %w", err)
	}

	return mapHTTPError(resp)
}

// withKeyRotation runs call with the current key. When the key is rejected
// or rate limited it advances to the next key and tries again, giving every
// key one attempt. The last error is returned if all keys fail.
func (g *geminiAdapter) withKeyRotation(ctx context.Context, call func(key string) error) error {
	if len(g.keys) == 0 {
		return ErrNoAPIKeys
	}

	var err error
	for range len(g.keys) {
		idx := g.KeyIndex()
		key := g.keys[idx]

		err = call(key)
		if err == nil || !isKeyError(err) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Join(err, ctxErr)
		}

		next := g.rotate(idx)
		g.logger.Warn().
			Err(err).
			Str("key", config.MaskAPIKey(key)).
			Int("next_index", next).
			Msg("api key failed, rotating")
	}

	return err
}

// rotate advances from idx unless another call already moved on.
func (g *geminiAdapter) rotate(idx int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.current == idx {
		g.current = (idx + 1) % len(g.keys)
	}
	return g.current
}

func (g *geminiAdapter) request(ctx context.Context, key string) *resty.Request {
	id := g.ids.RequestID(ctx)
	g.logger.Debug().Str("request_id", id).Str("key", config.MaskAPIKey(key)).Msg("gemini request")

	return g.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader(headerAPIKey, key).
		SetHeader(headerRequestID, id)
}
