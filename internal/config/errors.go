// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// ErrInvalidOverride is returned by [ParseOverrides] for an entry that is not
// of the form KEY=VALUE.
var ErrInvalidOverride = errors.New("invalid override, want KEY=VALUE")
