package store

import "github.com/chrono-hq/chrono/internal/apperr"

var (
	errChronoRunning = &apperr.Error{
		Name:    "StoreLocked",
		Message: "is chrono already running? Only one instance can use the offline database at a time",
	}

	errNoSessions = &apperr.Error{
		Name:    "NotFound",
		Message: "no sessions recorded yet",
	}

	errSessionNotFound = &apperr.Error{
		Name:    "NotFound",
		Message: "session %d not found",
	}

	errSessionOpen = &apperr.Error{
		Name:    "Conflict",
		Message: "session %d is still running",
	}

	errSessionClosed = &apperr.Error{
		Name:    "Conflict",
		Message: "session %d has already been stopped",
	}

	errInvalidBounds = &apperr.Error{
		Name:    "RequestError",
		Message: "end time must not be before start time",
	}

	errSchemaTooNew = &apperr.Error{
		Name:    "StoreError",
		Message: "database schema version %d is newer than supported version %d",
	}
)
