// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the Gemini API-client configuration from a host
// key-value environment.
//
// All lookups go through an injected [Source] so that loading never touches
// process state implicitly. A [Loader] reads the five well-known variables
// (API keys, proxy URL, default model, request timeout and max retries),
// normalises them and falls back to fixed defaults when a value is absent or
// malformed. Loading has no failure path: the result is always a usable
// [LoadedConfig].
//
// Sources can be layered with [NewSource] in the following priority order.
// A variable set in a later layer replaces the earlier value even when it is
// empty, so an empty override clears a dotenv value and the loader falls
// back to the default:
//  1. dotenv files (.env, .env.local, .env.<mode>, .env.<mode>.local)
//  2. JSON config file
//  3. explicit overrides
//  4. process environment
//
// [ParseAPIKeys], [ValidateAPIKey], [ValidateProxyURL] and [MaskAPIKey] are
// exposed for callers that need the individual checks, e.g. for masked key
// display.
package config
