package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/cms-tools/internal/config"
	"github.com/MKhiriev/cms-tools/internal/logger"
	"github.com/MKhiriev/cms-tools/internal/utils"
	"github.com/MKhiriev/cms-tools/models"
	"github.com/go-resty/resty/v2"
)

const contentsPath = "/repos/{repo}/contents/{path}"

type githubConfigSource struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewGitHubConfigSource constructs an implementation of [ConfigSource] over
// the GitHub repository-contents API. It normalises and validates the base
// URL from cfg.APIAddress and configures the underlying HTTP client with the
// User-Agent header and, when positive, the request timeout.
//
// Returns an error if cfg.APIAddress is empty or cannot be parsed as a valid
// URL.
func NewGitHubConfigSource(cfg config.Adapter, logger *logger.Logger) (ConfigSource, error) {
	baseURL, err := normalizeBaseURL(cfg.APIAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api address: %w", err)
	}

	client := utils.NewHTTPClient(cfg.UserAgent)
	client.SetBaseURL(baseURL)
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("took", resp.Time()).
			Msg("request completed")
		return nil
	})

	return &githubConfigSource{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetContentMetadata implements [ConfigSource]. It GETs
// /repos/{repoName}/contents/{filePath} and decodes the JSON body into
// [models.ConfigMetadata]. repoName and filePath are inserted verbatim so
// that "owner/repo" and nested paths keep their slashes.
func (g *githubConfigSource) GetContentMetadata(ctx context.Context, loc models.RepositoryLocation) (models.ConfigMetadata, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetRawPathParams(map[string]string{
			"repo": loc.RepoName,
			"path": loc.FilePath,
		}).
		Get(contentsPath)
	if err != nil {
		return models.ConfigMetadata{}, fmt.Errorf("metadata request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ConfigMetadata{}, err
	}

	var metadata models.ConfigMetadata
	if err = json.Unmarshal(resp.Body(), &metadata); err != nil {
		return models.ConfigMetadata{}, fmt.Errorf("decode metadata response: %w", err)
	}
	if metadata.DownloadURL == "" {
		return models.ConfigMetadata{}, fmt.Errorf("%w: %s", ErrMissingDownloadURL, loc.FilePath)
	}

	return metadata, nil
}

// DownloadPayload implements [ConfigSource]. downloadURL is absolute and is
// requested as-is with the same identifying headers as the metadata call.
func (g *githubConfigSource) DownloadPayload(ctx context.Context, downloadURL string) (models.ConfigPayload, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		Get(downloadURL)
	if err != nil {
		return nil, fmt.Errorf("payload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := resp.Body()
	if len(body) == 0 || !json.Valid(body) {
		return nil, fmt.Errorf("%w: %d bytes from %s", ErrMalformedPayload, len(body), downloadURL)
	}

	return models.ConfigPayload(body), nil
}
