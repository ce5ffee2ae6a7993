package app

import "github.com/chrono-hq/chrono/internal/apperr"

var (
	errAlreadyRunning = &apperr.Error{
		Name:    "AlreadyRunning",
		Message: "session %d is already running",
	}

	errNotRunning = &apperr.Error{
		Name:    "NotRunning",
		Message: "no session is running",
	}

	errWorkedOffline = &apperr.Error{
		Name:    "Unsupported",
		Message: "worked hours are computed by the Chrono server and are not available offline",
	}

	errEditArgs = &apperr.Error{
		Name:    "UsageError",
		Message: "expected exactly one session id",
	}

	errInvalidID = &apperr.Error{
		Name:    "InvalidID",
		Message: "invalid session id %q",
	}
)
