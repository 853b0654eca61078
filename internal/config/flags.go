package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-repo repository name, e.g. HubSpot/cms-theme-boilerplate
//	-path config file path inside the repository
//	-api-address repository-contents API base URL
//	-user-agent User-Agent header value
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level minimum log level (debug, info, warn, error)
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var repoName string
	var filePath string
	var apiAddress string
	var userAgent string
	var requestTimeout time.Duration
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("cms-tools", flag.ContinueOnError)
	fs.StringVar(&repoName, "repo", "", "Repository name")
	fs.StringVar(&filePath, "path", "", "Config file path inside the repository")
	fs.StringVar(&apiAddress, "api-address", "", "Repository contents API base URL")
	fs.StringVar(&userAgent, "user-agent", "", "User-Agent header value")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Adapter: Adapter{
			APIAddress:     apiAddress,
			UserAgent:      userAgent,
			RequestTimeout: requestTimeout,
		},
		Fetch: Fetch{
			RepoName: repoName,
			FilePath: filePath,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
