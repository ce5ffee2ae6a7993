// Package session reconciles the local timer with the sessions recorded by
// a Chrono store
package session

import (
	"context"
	"slices"
	"time"

	"github.com/chrono-hq/chrono/internal/models"
)

// Store is the remote (or offline) record of a user's sessions.
type Store interface {
	// Start opens a new session for the caller.
	Start(ctx context.Context) (models.Session, error)
	// Stop closes the session with the given id.
	Stop(ctx context.Context, id int64) (models.Session, error)
	// Latest returns the most recent session, open or closed, or an error
	// matching ErrNotFound when none exists.
	Latest(ctx context.Context) (models.Session, error)
	// Today returns the sessions started during the current local day.
	Today(ctx context.Context) ([]models.Session, error)
	// Update corrects the bounds of a session.
	Update(ctx context.Context, s models.Session) (models.Session, error)
}

// Lister is implemented by stores that can list sessions over a date range.
type Lister interface {
	InRange(ctx context.Context, start, end time.Time) ([]models.Session, error)
}

// Notifier surfaces the outcome of reconciler operations to the user.
type Notifier interface {
	Info(msg string)
	Success(msg string)
	Error(err error)
}

// Event identifies the change that produced a new State.
type Event int

const (
	EventLoaded Event = iota
	EventResumed
	EventStarted
	EventStopped
	EventEdited
	EventRefreshed
)

var eventNames = map[Event]string{
	EventLoaded:    "loaded",
	EventResumed:   "resumed",
	EventStarted:   "started",
	EventStopped:   "stopped",
	EventEdited:    "edited",
	EventRefreshed: "refreshed",
}

func (e Event) String() string {
	return eventNames[e]
}

// State is the reconciler's view of the world. Paused is true exactly when
// Current is nil.
type State struct {
	StartInstant time.Time
	Current      *models.Session
	Today        []models.Session
	Paused       bool
}

// Running reports whether a session is believed to be open.
func (s State) Running() bool {
	return !s.Paused
}

func (s State) clone() State {
	c := s
	c.Today = slices.Clone(s.Today)

	if s.Current != nil {
		cur := *s.Current
		c.Current = &cur
	}

	return c
}

// Listener is called after every state change with a snapshot of the new
// state.
type Listener func(Event, State)

type nopNotifier struct{}

func (nopNotifier) Info(string)    {}
func (nopNotifier) Success(string) {}
func (nopNotifier) Error(error)    {}
