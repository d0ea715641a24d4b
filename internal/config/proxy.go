// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "net/url"

// ValidateProxyURL reports whether raw parses as an absolute URL with the
// scheme "http" or "https" and a host name. A port alone is not a host.
// Parse failures yield false.
func ValidateProxyURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	return u.Hostname() != ""
}
