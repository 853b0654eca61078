// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied to fields left empty by every configuration source.
const (
	// DefaultAPIAddress is the base address of the repository-contents API.
	DefaultAPIAddress = "https://api.github.com"

	// DefaultUserAgent identifies the tool to the repository-hosting API,
	// which rejects requests without a User-Agent header.
	DefaultUserAgent = "HubSpot/hubspot-cms-tools"

	// DefaultLogLevel is the minimum level written by the CLI logger.
	DefaultLogLevel = "info"
)

// StructuredConfig is the top-level configuration container for the
// cms-tools application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds settings of the outbound HTTP transport used to reach
	// the repository-hosting API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Fetch names the remote config file the CLI downloads.
	Fetch Fetch `envPrefix:"FETCH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is the minimum zerolog level ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Adapter holds the outbound HTTP settings.
type Adapter struct {
	// APIAddress is the base URL of the repository-contents API
	// (e.g. "https://api.github.com").
	// Env: ADAPTER_API_ADDRESS
	APIAddress string `env:"API_ADDRESS"`

	// UserAgent is sent with every request.
	// Env: ADAPTER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// RequestTimeout bounds a single outbound request. Zero keeps the HTTP
	// client's own policy.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Fetch identifies the remote config file to download.
type Fetch struct {
	// RepoName is the repository as addressed by the contents API
	// (e.g. "HubSpot/cms-theme-boilerplate").
	// Env: FETCH_REPO
	RepoName string `env:"REPO"`

	// FilePath is the path of the config file inside the repository.
	// Env: FETCH_PATH
	FilePath string `env:"PATH"`
}

// defaultConfig returns the values used for fields no source has set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogLevel: DefaultLogLevel},
		Adapter: Adapter{
			APIAddress: DefaultAPIAddress,
			UserAgent:  DefaultUserAgent,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags (args, usually os.Args[1:])
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields still empty afterwards receive their defaults.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
