// Package clock drives the live elapsed-time display of a work session
package clock

import (
	"context"
	"sync"
	"time"

	"github.com/chrono-hq/chrono/internal/timeutil"
)

const defaultInterval = time.Second

type (
	// DisplayFunc receives the elapsed counter on every tick.
	DisplayFunc func(timeutil.Counter)

	// ElapsedFunc receives the raw elapsed seconds on every tick.
	ElapsedFunc func(seconds float64)

	// Option configures a Clock.
	Option func(*Clock)
)

// Clock is a two-state (running or paused) ticker. While running it emits
// the time elapsed since the start instant immediately and then once per
// interval. Callbacks are invoked synchronously and must neither block nor
// call back into the Clock.
type Clock struct {
	start     time.Time
	now       func() time.Time
	onDisplay DisplayFunc
	onElapsed ElapsedFunc
	cancel    context.CancelFunc
	done      chan struct{}
	last      timeutil.Counter
	interval  time.Duration
	mu        sync.Mutex
	paused    bool
	closed    bool
}

// WithInterval overrides the one second tick interval.
func WithInterval(d time.Duration) Option {
	return func(c *Clock) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithNow overrides the time source.
func WithNow(now func() time.Time) Option {
	return func(c *Clock) {
		c.now = now
	}
}

// OnDisplay registers the display callback.
func OnDisplay(fn DisplayFunc) Option {
	return func(c *Clock) {
		c.onDisplay = fn
	}
}

// OnElapsed registers the raw elapsed-seconds callback, used to fold the
// running session into aggregate totals.
func OnElapsed(fn ElapsedFunc) Option {
	return func(c *Clock) {
		c.onElapsed = fn
	}
}

// New returns a paused Clock.
func New(opts ...Option) *Clock {
	c := &Clock{
		now:      time.Now,
		interval: defaultInterval,
		paused:   true,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Set moves the clock into the running or paused state. Entering the running
// state, or changing the start instant while running, emits immediately and
// reschedules the ticks. Entering the paused state cancels the ticks and
// emits the zero counter only when start is unset; otherwise the last value
// stays frozen.
func (c *Clock) Set(paused bool, start time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	if !paused && !c.paused && c.start.Equal(start) {
		return
	}

	c.stopLocked()

	c.paused = paused
	c.start = start

	if paused {
		if start.IsZero() {
			c.last = timeutil.Counter{}
			c.emit(0)
		}

		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done

	elapsed := c.elapsedLocked()
	c.last = timeutil.ToElapsedCounter(elapsed)
	c.emit(elapsed)

	go c.run(ctx, done, start)
}

// run ticks until ctx is cancelled. Emission happens with c.mu held so that a
// concurrent Set or Close cannot return while a stale tick is in flight.
func (c *Clock) run(ctx context.Context, done chan struct{}, start time.Time) {
	defer close(done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !c.tick(ctx, start) {
				return
			}
		}
	}
}

func (c *Clock) tick(ctx context.Context, start time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ctx.Err() != nil || c.paused || !c.start.Equal(start) {
		return false
	}

	elapsed := c.elapsedLocked()
	c.last = timeutil.ToElapsedCounter(elapsed)
	c.emit(elapsed)

	return true
}

// stopLocked cancels the schedule and waits for the ticking goroutine to
// exit. The lock is released while waiting, so the loop repeats until no
// schedule installed by a concurrent Set remains.
func (c *Clock) stopLocked() {
	for c.cancel != nil {
		cancel, done := c.cancel, c.done
		c.cancel, c.done = nil, nil

		cancel()

		c.mu.Unlock()
		<-done
		c.mu.Lock()
	}
}

func (c *Clock) elapsedLocked() float64 {
	return c.now().Sub(c.start).Seconds()
}

func (c *Clock) emit(elapsed float64) {
	if c.onDisplay != nil {
		c.onDisplay(timeutil.ToElapsedCounter(elapsed))
	}

	if c.onElapsed != nil {
		if elapsed < 0 {
			elapsed = 0
		}

		c.onElapsed(elapsed)
	}
}

// Display returns the most recently computed counter.
func (c *Clock) Display() timeutil.Counter {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.last
}

// Running reports whether the clock is ticking.
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return !c.paused && !c.closed
}

// Close cancels any pending ticks. The Clock cannot be restarted afterwards.
func (c *Clock) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	c.closed = true
	c.paused = true
}
