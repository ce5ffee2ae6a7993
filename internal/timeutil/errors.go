package timeutil

import "github.com/chrono-hq/chrono/internal/apperr"

var (
	errInvalidISO = &apperr.Error{
		Name:    "InvalidTimestamp",
		Message: "invalid timestamp %q: expected an RFC 3339 instant",
	}

	errInvalidLocalInput = &apperr.Error{
		Name:    "InvalidDatetime",
		Message: "invalid datetime %q: expected YYYY-MM-DDTHH:MM[:SS]",
	}

	errInvalidDate = &apperr.Error{
		Name:    "InvalidDate",
		Message: "unable to parse date %q",
	}
)
