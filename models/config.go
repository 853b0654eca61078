// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// RepositoryLocation identifies where a remote config file lives: the
// repository name as understood by the hosting API and the path of the file
// inside that repository.
type RepositoryLocation struct {
	RepoName string
	FilePath string
}

// ConfigMetadata is the subset of a repository-contents response needed to
// download a config file.
type ConfigMetadata struct {
	// DownloadURL is the raw-content URL of the file (download_url).
	DownloadURL string `json:"download_url"`

	// Name is the file name, used only as a log label.
	Name string `json:"name"`

	Path string `json:"path,omitempty"`
	SHA  string `json:"sha,omitempty"`
	Size int64  `json:"size,omitempty"`
	Type string `json:"type,omitempty"`
}

// ConfigPayload is the downloaded config document. Its structure is owned by
// the caller; a nil payload means the config is unavailable.
type ConfigPayload = json.RawMessage
