// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the result-formatting capability shared by
// marketplace asset validators.
//
// Core concepts:
//   - Identity: the key and display name every validator carries.
//   - ErrorDescriptor: a validation error that can render its own copy,
//     optionally declares a severity and has a key unique within the
//     validator.
//   - BaseValidator: embeddable implementation of Identity that turns a
//     pass or an ErrorDescriptor into a normalised [models.ValidationResult].
//
// Usage patterns:
//  1. Embed BaseValidator in a concrete validator and construct it with
//     NewBaseValidator(key, name).
//  2. Report Success() when the check passes, or Error(errObj, placeholders)
//     with one of the validator's ErrorCopy values when it fails.
//  3. Types that cannot embed BaseValidator implement Identity and call the
//     package-level GetSuccess / GetError helpers.
package validators

import "github.com/MKhiriev/cms-tools/models"

// Identity is implemented by every validator.
type Identity interface {
	// Key returns the machine identifier of the validator, used as the
	// prefix of error keys.
	Key() string

	// Name returns the human-readable validator name.
	Name() string
}

// ErrorDescriptor describes one failure a validator can report.
type ErrorDescriptor interface {
	// Copy renders the user-facing message, substituting placeholders.
	Copy(placeholders map[string]string) string

	// Severity returns the declared level, or "" when the error does not
	// declare one.
	Severity() models.ValidationResultLevel

	// Key identifies the error within its validator.
	Key() string
}

// PayloadValidator checks a downloaded config payload.
type PayloadValidator interface {
	Identity

	Validate(payload models.ConfigPayload) models.ValidationResult
}
