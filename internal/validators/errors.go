package validators

import "github.com/MKhiriev/cms-tools/models"

// Errors reported by [ConfigPayloadValidator].
var (
	ErrMissingPayload = ErrorCopy{
		ErrKey:  "missingPayload",
		Message: "The config file {{ filePath }} could not be downloaded.",
	}
	ErrPayloadNotObject = ErrorCopy{
		ErrKey:  "notAnObject",
		Level:   models.ValidationWarning,
		Message: "The config file {{ filePath }} is valid JSON but not an object.",
	}
)
