// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid outbound HTTP settings
	// (for example, a relative API address or a negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidFetchConfigs indicates that the repository name or file
	// path of the config to download is missing.
	ErrInvalidFetchConfigs = errors.New("invalid fetch configuration: repo and path are required")
)
