// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "errors"

var (
	ErrInvalidConfig      = errors.New("configuration is invalid")
	ErrKeyCheckFailed     = errors.New("one or more API keys were rejected")
	ErrKeyIndexOutOfRange = errors.New("key index out of range")
	ErrNoAPIKeys          = errors.New("no API keys configured")
	ErrUnknownLogFormat   = errors.New("unknown log format")
)
