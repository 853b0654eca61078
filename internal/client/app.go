package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/cms-tools/internal/config"
	"github.com/MKhiriev/cms-tools/internal/logger"
	"github.com/MKhiriev/cms-tools/internal/service"
	"github.com/MKhiriev/cms-tools/internal/validators"
	"github.com/rs/zerolog"
)

// ErrConfigUnavailable is returned by Run when the config could not be
// downloaded. The cause has already been logged by the fetcher.
var ErrConfigUnavailable = errors.New("config unavailable")

type App struct {
	services *service.Services
	fetch    config.Fetch
	out      io.Writer

	logger *logger.Logger
}

// NewApp wires the download command. The downloaded payload is written to
// out followed by a newline.
func NewApp(services *service.Services, fetch config.Fetch, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil || services.ConfigFetcher == nil {
		return nil, errors.New("config fetcher is required")
	}
	if out == nil {
		return nil, errors.New("output writer is required")
	}

	return &App{services: services, fetch: fetch, out: out, logger: logger}, nil
}

// Run downloads the configured file, reports the payload validator result
// and writes the payload.
func (a *App) Run(ctx context.Context) error {
	payload := a.services.ConfigFetcher.DownloadConfig(ctx, a.fetch.RepoName, a.fetch.FilePath)

	result := validators.NewConfigPayloadValidator(a.fetch.FilePath).Validate(payload)
	level := zerolog.InfoLevel
	if !result.IsSuccess() {
		level = zerolog.WarnLevel
	}
	event := a.logger.WithLevel(level).
		Str("validator", result.ValidatorKey).
		Str("result", string(result.Result))
	if !result.IsSuccess() {
		event = event.Str("key", result.Key).Str("error", result.Error)
	}
	event.Msg("config payload validated")

	if payload == nil {
		return fmt.Errorf("%w: %s/%s", ErrConfigUnavailable, a.fetch.RepoName, a.fetch.FilePath)
	}

	if _, err := fmt.Fprintln(a.out, string(payload)); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}

	return nil
}
