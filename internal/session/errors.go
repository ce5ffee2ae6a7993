package session

import "github.com/chrono-hq/chrono/internal/apperr"

var (
	// ErrNotFound is matched by any store error named NotFound.
	ErrNotFound = &apperr.Error{
		Name:    "NotFound",
		Message: "no session found",
	}

	errFormClosed = &apperr.Error{
		Name:    "EditError",
		Message: "edit form for session %d is not open",
	}

	errEndBeforeStart = &apperr.Error{
		Name:    "EditError",
		Message: "end time %s is before start time %s",
	}
)
