package validators

import (
	"regexp"

	"github.com/MKhiriev/cms-tools/models"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.-]+)\s*\}\}`)

// ErrorCopy is the stock [ErrorDescriptor]: a keyed message template with an
// optional severity. Placeholders are written as {{ name }}.
type ErrorCopy struct {
	ErrKey  string
	Level   models.ValidationResultLevel
	Message string
}

// Copy implements [ErrorDescriptor]. Placeholders missing from the map are
// left in the text unchanged.
func (e ErrorCopy) Copy(placeholders map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(e.Message, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		if value, ok := placeholders[name]; ok {
			return value
		}
		return match
	})
}

// Severity implements [ErrorDescriptor].
func (e ErrorCopy) Severity() models.ValidationResultLevel {
	return e.Level
}

// Key implements [ErrorDescriptor].
func (e ErrorCopy) Key() string {
	return e.ErrKey
}
