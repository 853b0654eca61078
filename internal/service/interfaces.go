package service

import (
	"context"

	"github.com/MKhiriev/cms-tools/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/config_fetcher_mock.go -package=mock

// ConfigFetcher downloads remote config files.
type ConfigFetcher interface {
	// DownloadConfig resolves filePath inside repoName and returns the
	// parsed JSON config stored there. It never returns an error: any
	// failure, including a missing file, is logged and yields nil.
	DownloadConfig(ctx context.Context, repoName, filePath string) models.ConfigPayload
}
