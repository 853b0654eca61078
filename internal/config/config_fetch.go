// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// FetchConfig is the configuration view used by the CLI download command.
type FetchConfig struct {
	// App contains application-level settings.
	App App
	// Adapter contains outbound HTTP settings.
	Adapter Adapter
	// Fetch identifies the file to download.
	Fetch Fetch
}

// GetFetchConfig builds and validates the download command view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig] and additionally
// requires a repository name and file path.
func GetFetchConfig(args []string) (*FetchConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	fetchCfg := &FetchConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Fetch:   cfg.Fetch,
	}

	return fetchCfg, fetchCfg.validate()
}
