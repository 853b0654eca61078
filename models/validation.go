// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ValidationResultLevel classifies the outcome of a single validator run.
type ValidationResultLevel string

const (
	// ValidationSuccess marks a check that passed.
	ValidationSuccess ValidationResultLevel = "SUCCESS"

	// ValidationWarning marks a problem that does not block the asset.
	ValidationWarning ValidationResultLevel = "WARNING"

	// ValidationFatal marks a blocking problem. It is the default severity
	// for errors that do not declare one.
	ValidationFatal ValidationResultLevel = "FATAL"
)

// ValidationResult is the normalised record a validator reports.
//
// A success result carries only the validator identity and Result. An error
// result additionally carries the rendered Error copy and the fully
// qualified Key ("<validatorKey>.<errorKey>").
type ValidationResult struct {
	ValidatorKey  string                `json:"validatorKey"`
	ValidatorName string                `json:"validatorName"`
	Result        ValidationResultLevel `json:"result"`
	Error         string                `json:"error,omitempty"`
	Key           string                `json:"key,omitempty"`
}

// IsSuccess reports whether r has the success shape.
func (r ValidationResult) IsSuccess() bool {
	return r.Result == ValidationSuccess && r.Error == "" && r.Key == ""
}
