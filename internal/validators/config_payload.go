package validators

import (
	"bytes"
	"encoding/json"

	"github.com/MKhiriev/cms-tools/models"
)

const (
	ConfigPayloadValidatorKey  = "configPayload"
	ConfigPayloadValidatorName = "Config payload"
)

// ConfigPayloadValidator checks that a downloaded config is present and is
// a JSON object. It does not look inside the object.
type ConfigPayloadValidator struct {
	BaseValidator

	filePath string
}

// NewConfigPayloadValidator returns a validator whose error copy names
// filePath.
func NewConfigPayloadValidator(filePath string) PayloadValidator {
	return &ConfigPayloadValidator{
		BaseValidator: NewBaseValidator(ConfigPayloadValidatorKey, ConfigPayloadValidatorName),
		filePath:      filePath,
	}
}

// Validate implements [PayloadValidator].
func (v *ConfigPayloadValidator) Validate(payload models.ConfigPayload) models.ValidationResult {
	placeholders := map[string]string{"filePath": v.filePath}

	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return v.Error(ErrMissingPayload, placeholders)
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &object); err != nil {
		return v.Error(ErrPayloadNotObject, placeholders)
	}

	return v.Success()
}
