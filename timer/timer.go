// Package timer renders the interactive session timer
package timer

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/chrono-hq/chrono/internal/clock"
	"github.com/chrono-hq/chrono/internal/notify"
	"github.com/chrono-hq/chrono/internal/session"
)

type toastKind int

const (
	toastInfo toastKind = iota
	toastSuccess
	toastError
)

type (
	tickMsg float64

	loadedMsg struct{}

	stateMsg struct {
		state session.State
		event session.Event
	}

	toastMsg struct {
		text string
		kind toastKind
	}
)

// Opts configures the interactive timer.
type Opts struct {
	// Notifiers receive every notification in addition to the toast line.
	Notifiers []notify.Notifier
	// Listeners are subscribed to the reconciler for the lifetime of the
	// timer.
	Listeners      []session.Listener
	Now            func() time.Time
	WorkdaySeconds float64
	TwentyFourHour bool
	DarkTheme      bool
	Location       *time.Location
}

// Timer is the bubbletea model for the interactive session timer.
type Timer struct {
	ctx        context.Context
	cancel     context.CancelFunc
	reconciler *session.Reconciler
	clock      *clock.Clock
	ticks      chan tickMsg
	states     chan stateMsg
	toasts     chan toastMsg
	unsubs     []func()
	opts       Opts
	keymap     keymap
	help       help.Model
	progress   progress.Model
	spinner    spinner.Model
	style      styles
	state      session.State
	toast      toastMsg
	elapsed    float64
	loading    bool
	showTable  bool
	quitting   bool
}

// toaster forwards notifications into the bubbletea event loop.
type toaster struct {
	ctx    context.Context
	toasts chan<- toastMsg
}

func (t toaster) send(msg toastMsg) {
	select {
	case t.toasts <- msg:
	case <-t.ctx.Done():
	}
}

func (t toaster) Info(msg string) {
	t.send(toastMsg{text: msg, kind: toastInfo})
}

func (t toaster) Success(msg string) {
	t.send(toastMsg{text: msg, kind: toastSuccess})
}

func (t toaster) Error(err error) {
	t.send(toastMsg{text: notify.Describe(err), kind: toastError})
}

// New creates a timer backed by store on behalf of userID.
func New(store session.Store, userID int64, opts Opts) *Timer {
	ctx, cancel := context.WithCancel(context.Background())

	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.Location == nil {
		opts.Location = time.Local
	}

	t := &Timer{
		ctx:     ctx,
		cancel:  cancel,
		ticks:   make(chan tickMsg, 1),
		states:  make(chan stateMsg, 16),
		toasts:  make(chan toastMsg, 16),
		opts:    opts,
		keymap:  defaultKeymap(),
		help:    help.New(),
		style:   newStyles(opts.DarkTheme),
		state:   session.State{Paused: true},
		loading: true,
	}

	t.progress = progress.New(progress.WithDefaultGradient())
	t.progress.Width = maxWidth

	t.spinner = spinner.New(spinner.WithSpinner(spinner.Dot))

	notifiers := notify.Multi{toaster{ctx: ctx, toasts: t.toasts}}
	notifiers = append(notifiers, opts.Notifiers...)

	t.reconciler = session.New(
		store,
		userID,
		session.WithNotifier(notifiers),
		session.WithNow(opts.Now),
	)

	t.clock = clock.New(
		clock.WithNow(opts.Now),
		clock.OnElapsed(t.onElapsed),
	)

	t.unsubs = append(t.unsubs, t.reconciler.Subscribe(t.onState))

	for _, l := range opts.Listeners {
		t.unsubs = append(t.unsubs, t.reconciler.Subscribe(l))
	}

	t.keymap.sync(false)

	return t
}

// onElapsed runs on the clock goroutine so it must not block. A pending
// tick is replaced by the newer one.
func (t *Timer) onElapsed(seconds float64) {
	for {
		select {
		case t.ticks <- tickMsg(seconds):
			return
		default:
		}

		select {
		case <-t.ticks:
		default:
		}
	}
}

func (t *Timer) onState(event session.Event, state session.State) {
	select {
	case t.states <- stateMsg{event: event, state: state}:
	case <-t.ctx.Done():
	}
}

func (t *Timer) waitForTick() tea.Msg {
	select {
	case msg := <-t.ticks:
		return msg
	case <-t.ctx.Done():
		return nil
	}
}

func (t *Timer) waitForState() tea.Msg {
	select {
	case msg := <-t.states:
		return msg
	case <-t.ctx.Done():
		return nil
	}
}

func (t *Timer) waitForToast() tea.Msg {
	select {
	case msg := <-t.toasts:
		return msg
	case <-t.ctx.Done():
		return nil
	}
}

func (t *Timer) load() tea.Msg {
	t.reconciler.Load(t.ctx)

	return loadedMsg{}
}

// Reconciler exposes the reconciler driving the timer.
func (t *Timer) Reconciler() *session.Reconciler {
	return t.reconciler
}

// Close stops the clock and detaches every listener. It is safe to call more
// than once.
func (t *Timer) Close() {
	t.cancel()
	t.clock.Close()

	for _, unsub := range t.unsubs {
		unsub()
	}

	t.unsubs = nil
}

func (t *Timer) Init() tea.Cmd {
	return tea.Batch(
		t.load,
		t.waitForTick,
		t.waitForState,
		t.waitForToast,
		t.spinner.Tick,
	)
}

// Run launches the interactive timer and blocks until the user quits.
func (t *Timer) Run() error {
	defer t.Close()

	if !isatty.IsTerminal(os.Stdout.Fd()) &&
		!isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errNoTerminal
	}

	_, err := tea.NewProgram(t).Run()

	return err
}
