// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	u, err := url.Parse(strings.TrimSpace(cfg.Adapter.APIAddress))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: api address %q must be an absolute URL", ErrInvalidAdapterConfigs, cfg.Adapter.APIAddress)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (cfg *FetchConfig) validate() error {
	if strings.TrimSpace(cfg.Fetch.RepoName) == "" || strings.TrimSpace(cfg.Fetch.FilePath) == "" {
		return ErrInvalidFetchConfigs
	}

	return nil
}
