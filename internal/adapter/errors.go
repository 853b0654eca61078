package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	ErrMissingDownloadURL = errors.New("metadata has no download url")
	ErrMalformedPayload   = errors.New("payload is not valid json")
)

// StatusError is returned for every non-2xx response. It wraps the sentinel
// matching the status code, if there is one.
type StatusError struct {
	Code int
	Body string
	Err  error
}

func (e *StatusError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Err, e.Body)
	}
	return fmt.Sprintf("http %d: %s", e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code of the failed response.
func (e *StatusError) StatusCode() int {
	return e.Code
}
