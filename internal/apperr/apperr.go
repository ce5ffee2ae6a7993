// Package apperr defines the error type surfaced to chrono users
package apperr

import (
	"errors"
	"fmt"
)

// Error is an opaque name and message pair. Message may contain format verbs
// that are filled in with Fmt.
type Error struct {
	Cause   error
	Name    string
	Message string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same name. Unnamed errors
// are compared by message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	if e.Name != "" || t.Name != "" {
		return t.Name == e.Name
	}

	return t.Message == e.Message
}

// Fmt returns a copy of the error with the format verbs in its message
// replaced by args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Name:    e.Name,
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
	}
}

// Wrap returns a copy of the error that carries err as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Name:    e.Name,
		Message: e.Message,
		Cause:   err,
	}
}

// NameOf returns the name of err if it is (or wraps) an *Error, and "Error"
// otherwise.
func NameOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Name != "" {
		return e.Name
	}

	return "Error"
}
