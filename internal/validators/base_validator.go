// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "github.com/MKhiriev/cms-tools/models"

// BaseValidator holds a validator's identity and formats its results.
type BaseValidator struct {
	key  string
	name string
}

// NewBaseValidator constructs a BaseValidator with the given identity.
func NewBaseValidator(key, name string) BaseValidator {
	return BaseValidator{key: key, name: name}
}

// Key implements [Identity].
func (b BaseValidator) Key() string {
	return b.key
}

// Name implements [Identity].
func (b BaseValidator) Name() string {
	return b.name
}

// Success returns the success-shaped result for b.
func (b BaseValidator) Success() models.ValidationResult {
	return GetSuccess(b)
}

// Error returns the error-shaped result for errObj reported by b.
func (b BaseValidator) Error(errObj ErrorDescriptor, placeholders map[string]string) models.ValidationResult {
	return GetError(b, errObj, placeholders)
}

// GetSuccess returns a result carrying only id's key, name and
// [models.ValidationSuccess].
func GetSuccess(id Identity) models.ValidationResult {
	return models.ValidationResult{
		ValidatorKey:  id.Key(),
		ValidatorName: id.Name(),
		Result:        models.ValidationSuccess,
	}
}

// GetError returns the error-shaped result for errObj reported by id.
//
// Result is errObj's severity, or [models.ValidationFatal] when it declares
// none. Key is "<id key>.<errObj key>". A nil errObj violates the caller
// contract and panics.
func GetError(id Identity, errObj ErrorDescriptor, placeholders map[string]string) models.ValidationResult {
	if placeholders == nil {
		placeholders = map[string]string{}
	}

	result := errObj.Severity()
	if result == "" {
		result = models.ValidationFatal
	}

	return models.ValidationResult{
		ValidatorKey:  id.Key(),
		ValidatorName: id.Name(),
		Error:         errObj.Copy(placeholders),
		Result:        result,
		Key:           id.Key() + "." + errObj.Key(),
	}
}
