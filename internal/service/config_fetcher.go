package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/cms-tools/internal/adapter"
	"github.com/MKhiriev/cms-tools/internal/logger"
	"github.com/MKhiriev/cms-tools/internal/utils"
	"github.com/MKhiriev/cms-tools/models"
	"github.com/rs/zerolog"
)

const (
	msgConfigNotFound = "Config file not found."
	msgFetchFailed    = "An error occurred fetching the config file."
)

type configFetcher struct {
	source   adapter.ConfigSource
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewConfigFetcher returns a [ConfigFetcher] reading through source. The
// fetcher keeps no per-call state and is safe for concurrent use.
func NewConfigFetcher(source adapter.ConfigSource, logger *logger.Logger) ConfigFetcher {
	return &configFetcher{
		source:   source,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// DownloadConfig implements [ConfigFetcher].
//
// A 404 from the metadata lookup is logged once as "not found" and yields
// nil without a payload request. Every other failure of either request is
// logged as a generic error line followed by one diagnostic record of the
// error, and also yields nil.
func (f *configFetcher) DownloadConfig(ctx context.Context, repoName, filePath string) models.ConfigPayload {
	log := f.operationLogger(ctx, repoName, filePath)
	loc := models.RepositoryLocation{RepoName: repoName, FilePath: filePath}

	payload, err := f.downloadConfig(ctx, log, loc)
	if err != nil {
		log.Error().Msg(msgFetchFailed)
		log.LogErrorInstance(err)
		return nil
	}

	return payload
}

func (f *configFetcher) downloadConfig(ctx context.Context, log *logger.Logger, loc models.RepositoryLocation) (models.ConfigPayload, error) {
	outcome := f.fetchMetadata(ctx, log, loc)
	switch outcome.Status {
	case MetadataNotFound:
		return nil, nil
	case MetadataFailed:
		return nil, outcome.Err
	}

	log.Debug().Msgf("Fetching %s...", outcome.Metadata.Name)
	payload, err := f.source.DownloadPayload(ctx, outcome.Metadata.DownloadURL)
	if err != nil {
		return nil, fmt.Errorf("download payload of %s: %w", outcome.Metadata.Name, err)
	}
	log.Debug().Msg("Finished downloading config file")

	return payload, nil
}

// fetchMetadata runs the metadata step and classifies its result. Only the
// not-found case is logged here.
func (f *configFetcher) fetchMetadata(ctx context.Context, log *logger.Logger, loc models.RepositoryLocation) MetadataOutcome {
	metadata, err := f.source.GetContentMetadata(ctx, loc)
	switch {
	case err == nil:
		return MetadataOutcome{Status: MetadataFound, Metadata: metadata}
	case errors.Is(err, adapter.ErrNotFound):
		log.Error().Msg(msgConfigNotFound)
		return MetadataOutcome{Status: MetadataNotFound}
	default:
		return MetadataOutcome{Status: MetadataFailed, Err: fmt.Errorf("get config metadata: %w", err)}
	}
}

// operationLogger derives a logger for one download, tagged with the
// caller's trace id when ctx carries one and a fresh one otherwise.
func (f *configFetcher) operationLogger(ctx context.Context, repoName, filePath string) *logger.Logger {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = f.traceIDs.Generate()
	}

	l := f.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID).
			Str("repo", repoName).
			Str("path", filePath)
	})
	return l
}
