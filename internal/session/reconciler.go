package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/chrono-hq/chrono/internal/timeutil"
)

const (
	msgResuming = "resuming unfinished session"
	msgStarted  = "session started"
	msgStopped  = "session stopped"
	msgEdited   = "session updated"
)

// Reconciler keeps the local running/paused state consistent with the
// sessions held by a Store. State only changes after the store has
// acknowledged a mutation, and failures are reported through the Notifier
// rather than returned to the caller, except where noted.
type Reconciler struct {
	store     Store
	notifier  Notifier
	now       func() time.Time
	listeners map[int]Listener
	state     State
	userID    int64
	nextID    int
	mu        sync.Mutex
	pubMu     sync.Mutex
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithNotifier sets the notifier. Without one, notifications are dropped.
func WithNotifier(n Notifier) Option {
	return func(r *Reconciler) {
		if n != nil {
			r.notifier = n
		}
	}
}

// WithNow overrides the time source.
func WithNow(now func() time.Time) Option {
	return func(r *Reconciler) {
		r.now = now
	}
}

// New returns a paused Reconciler acting for userID.
func New(store Store, userID int64, opts ...Option) *Reconciler {
	r := &Reconciler{
		store:     store,
		userID:    userID,
		notifier:  nopNotifier{},
		now:       time.Now,
		listeners: make(map[int]Listener),
		state:     State{Paused: true},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// UserID returns the identity the reconciler acts for.
func (r *Reconciler) UserID() int64 {
	return r.userID
}

// State returns a snapshot of the current state.
func (r *Reconciler) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.state.clone()
}

// Subscribe registers fn to be called after every state change and returns
// a function that removes it.
func (r *Reconciler) Subscribe(fn Listener) (unsubscribe func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.listeners[id] = fn

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		delete(r.listeners, id)
	}
}

// Load fetches the latest session and today's sessions in parallel. Each
// result is applied as soon as it arrives. Neither fetch is retried.
func (r *Reconciler) Load(ctx context.Context) {
	var wg conc.WaitGroup

	wg.Go(func() {
		r.loadLatest(ctx)
	})

	wg.Go(func() {
		r.loadToday(ctx, EventLoaded)
	})

	wg.Wait()
}

func (r *Reconciler) loadLatest(ctx context.Context) {
	latest, err := r.store.Latest(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			slog.DebugContext(ctx, "no previous session found")
			r.apply(EventLoaded, pause)

			return
		}

		r.fail(ctx, "fetch latest session", err)

		return
	}

	r.mu.Lock()

	event := EventLoaded

	switch {
	case latest.Open() && (r.state.Current == nil || r.state.Current.ID != latest.ID):
		event = EventResumed
		r.state.Current = &latest
		r.state.StartInstant = latest.StartTime
		r.state.Paused = false
	case latest.Open():
		// same session: stay running so Paused keeps mirroring Current == nil
	default:
		pause(&r.state)
	}

	r.mu.Unlock()

	if event == EventResumed {
		slog.InfoContext(ctx, "resuming session",
			slog.Int64("id", latest.ID),
			slog.Time("start_time", latest.StartTime),
		)

		r.notifier.Info(msgResuming)
	}

	r.publish(event)
}

func (r *Reconciler) loadToday(ctx context.Context, event Event) {
	sessions, err := r.store.Today(ctx)
	if err != nil {
		r.fail(ctx, "fetch today's sessions", err)

		return
	}

	r.apply(event, func(s *State) {
		s.Today = sessions
	})
}

// RefreshToday refetches today's sessions so that totals include recent
// changes.
func (r *Reconciler) RefreshToday(ctx context.Context) {
	r.loadToday(ctx, EventRefreshed)
}

// Start opens a new session. It does not check whether one is already
// running; callers disable the action while State().Running() is true.
func (r *Reconciler) Start(ctx context.Context) {
	s, err := r.store.Start(ctx)
	if err != nil {
		r.fail(ctx, "start session", err)

		return
	}

	now := r.now()

	r.apply(EventStarted, func(st *State) {
		st.Current = &s
		st.StartInstant = now
		st.Paused = false
	})

	slog.InfoContext(ctx, "session started", slog.Int64("id", s.ID))

	r.notifier.Success(msgStarted)
}

// Stop closes the current session. It does nothing when no session is
// running.
func (r *Reconciler) Stop(ctx context.Context) {
	r.mu.Lock()
	current := r.state.Current
	r.mu.Unlock()

	if current == nil {
		return
	}

	s, err := r.store.Stop(ctx, current.ID)
	if err != nil {
		r.fail(ctx, "stop session", err)

		return
	}

	now := r.now()

	r.apply(EventStopped, func(st *State) {
		st.Current = nil
		st.StartInstant = now
		st.Paused = true
	})

	slog.InfoContext(ctx, "session stopped",
		slog.Int64("id", s.ID),
		slog.Float64("seconds", s.Seconds()),
	)

	r.RefreshToday(ctx)

	r.notifier.Success(msgStopped)
}

// Edit submits the corrected bounds held by f. On success today's sessions
// are refetched and the form is closed; on failure the form stays open and
// the error is both notified and returned.
func (r *Reconciler) Edit(ctx context.Context, f *EditForm) error {
	if !f.Open() {
		return errFormClosed.Fmt(f.ID)
	}

	s, err := f.Session()
	if err != nil {
		r.fail(ctx, "edit session", err)

		return err
	}

	updated, err := r.store.Update(ctx, s)
	if err != nil {
		r.fail(ctx, "edit session", err)

		return err
	}

	slog.InfoContext(ctx, "session updated", slog.Int64("id", updated.ID))

	r.mu.Lock()
	if r.state.Current != nil && r.state.Current.ID == updated.ID && updated.Open() {
		r.state.Current = &updated
		r.state.StartInstant = updated.StartTime
	}
	r.mu.Unlock()

	f.Close()

	r.publish(EventEdited)
	r.RefreshToday(ctx)

	r.notifier.Success(msgEdited)

	return nil
}

// TotalToday returns the seconds worked today: closed sessions plus the
// elapsed seconds of the running one.
func (r *Reconciler) TotalToday(elapsed float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := timeutil.SumDurations(r.state.Today)

	if !r.state.Paused && elapsed > 0 {
		total += elapsed
	}

	return total
}

func (r *Reconciler) fail(ctx context.Context, op string, err error) {
	slog.ErrorContext(ctx, op+" failed", slog.Any("error", err))

	r.notifier.Error(err)
}

// apply mutates the state under the lock and then notifies listeners.
func (r *Reconciler) apply(event Event, fn func(*State)) {
	r.mu.Lock()
	fn(&r.state)
	r.mu.Unlock()

	r.publish(event)
}

// publish calls every listener with a snapshot. Snapshots are delivered in
// the order they were taken. Listeners run outside the state lock and may
// read State, but must not start, stop or edit synchronously.
func (r *Reconciler) publish(event Event) {
	r.pubMu.Lock()
	defer r.pubMu.Unlock()

	r.mu.Lock()

	snapshot := r.state.clone()

	listeners := make([]Listener, 0, len(r.listeners))
	for _, l := range r.listeners {
		listeners = append(listeners, l)
	}

	r.mu.Unlock()

	for _, l := range listeners {
		l(event, snapshot)
	}
}

func pause(s *State) {
	s.Current = nil
	s.Paused = true
}

