// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for reading config
// files hosted in a source repository.
//
// The primary abstraction is [ConfigSource], which decouples the service
// layer from the hosting API. The package ships an HTTP implementation over
// the GitHub repository-contents API ([NewGitHubConfigSource]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404). Every status error is a
// [*StatusError], which also exposes the raw code.
package adapter

import (
	"context"

	"github.com/MKhiriev/cms-tools/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/config_source_mock.go -package=mock

// ConfigSource defines read access to config files stored in a hosted
// repository. Implementations are responsible for request construction,
// identifying headers and mapping transport-level errors to the sentinel
// values defined in this package.
type ConfigSource interface {
	// GetContentMetadata resolves the file described by loc to its
	// metadata, including the URL its raw content can be downloaded from.
	// Returns [ErrNotFound] (wrapped) when the repository or file does not
	// exist, [ErrMissingDownloadURL] when the entry has no downloadable
	// content (e.g. it is a directory), or another error if the request or
	// decoding fails.
	GetContentMetadata(ctx context.Context, loc models.RepositoryLocation) (models.ConfigMetadata, error)

	// DownloadPayload retrieves the JSON document at downloadURL. Returns
	// [ErrMalformedPayload] (wrapped) if the body is empty or not valid
	// JSON, or another error if the request fails or the server responds
	// with a non-2xx status.
	DownloadPayload(ctx context.Context, downloadURL string) (models.ConfigPayload, error)
}
