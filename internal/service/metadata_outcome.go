package service

import "github.com/MKhiriev/cms-tools/models"

// MetadataStatus tags the result of a metadata fetch.
type MetadataStatus int

const (
	// MetadataFound means Metadata holds a resolvable download URL.
	MetadataFound MetadataStatus = iota
	// MetadataNotFound means the hosting API reported the file as absent.
	MetadataNotFound
	// MetadataFailed means the lookup failed for any other reason; Err is set.
	MetadataFailed
)

func (s MetadataStatus) String() string {
	switch s {
	case MetadataFound:
		return "found"
	case MetadataNotFound:
		return "not_found"
	case MetadataFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MetadataOutcome is the tagged result of the metadata step. Only the field
// matching Status is meaningful.
type MetadataOutcome struct {
	Status   MetadataStatus
	Metadata models.ConfigMetadata
	Err      error
}
