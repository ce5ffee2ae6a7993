package chrono

import (
	"net/http"

	"github.com/chrono-hq/chrono/internal/apperr"
)

var (
	// ErrNotFound matches responses for resources that do not exist, such as
	// the latest session of a user who never started one.
	ErrNotFound = &apperr.Error{
		Name:    "NotFound",
		Message: "not found",
	}

	// ErrUnauthorized matches responses rejected for missing privileges or
	// an expired session cookie.
	ErrUnauthorized = &apperr.Error{
		Name:    "Unauthorized",
		Message: "Unauthorized",
	}

	errRequest = &apperr.Error{
		Name:    "NetworkError",
		Message: "%s %s",
	}

	errDecode = &apperr.Error{
		Name:    "DecodeError",
		Message: "unable to decode %s response",
	}

	errInvalidBaseURL = &apperr.Error{
		Name:    "ConfigError",
		Message: "invalid api base url: %s",
	}
)

// statusError maps an HTTP status to a named error. The server's message is
// kept as is.
func statusError(status int, message string) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		if message == "" {
			return ErrNotFound
		}

		return &apperr.Error{Name: ErrNotFound.Name, Message: message}
	}

	if message == "" {
		message = http.StatusText(status)
	}

	name := "ServerError"
	if status < http.StatusInternalServerError {
		name = "RequestError"
	}

	return &apperr.Error{Name: name, Message: message}
}
