package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("HubSpot/hubspot-cms-tools")
//	resp, err := client.R().Get("https://api.github.com/repos/o/r/contents/f")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance whose requests
// carry the given User-Agent and ask for JSON responses.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. An empty userAgent leaves
// resty's default User-Agent in place.
func NewHTTPClient(userAgent string) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json")

	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}

	return &HTTPClient{Client: client}
}
