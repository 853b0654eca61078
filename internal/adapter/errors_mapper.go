package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	statusErr := &StatusError{
		Code: resp.StatusCode(),
		Body: strings.TrimSpace(string(resp.Body())),
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		statusErr.Err = ErrBadRequest
	case http.StatusUnauthorized:
		statusErr.Err = ErrUnauthorized
	case http.StatusForbidden:
		statusErr.Err = ErrForbidden
	case http.StatusNotFound:
		statusErr.Err = ErrNotFound
	case http.StatusBadGateway:
		statusErr.Err = ErrBadGateway
	case http.StatusInternalServerError:
		statusErr.Err = ErrInternalServerError
	default:
		if statusErr.Body == "" {
			statusErr.Body = http.StatusText(resp.StatusCode())
		}
	}

	return statusErr
}
