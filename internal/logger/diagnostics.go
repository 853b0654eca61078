// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// statusCoder is implemented by transport errors that carry an HTTP status.
type statusCoder interface {
	StatusCode() int
}

// LogErrorInstance records the full detail of err as a single structured
// error-level entry: message, Go type, the chain of wrapped causes and the
// HTTP status when one of the wrapped errors carries it.
//
// It complements a human-readable error line written by the caller and is
// meant for diagnostics. A nil err is ignored.
func (l *Logger) LogErrorInstance(err error) {
	if err == nil {
		return
	}

	chain := zerolog.Arr()
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		chain.Str(cause.Error())
	}

	event := l.Error().
		Err(err).
		Str("error_type", fmt.Sprintf("%T", err)).
		Array("error_chain", chain)

	var sc statusCoder
	if errors.As(err, &sc) {
		event = event.Int("status_code", sc.StatusCode())
	}

	event.Msg("error instance")
}
