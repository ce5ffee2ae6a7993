// Package hook runs the user's command after a session starts or stops
package hook

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/sourcegraph/conc"

	"github.com/chrono-hq/chrono/internal/apperr"
	"github.com/chrono-hq/chrono/internal/session"
)

const defaultTimeout = 30 * time.Second

var errParseCmd = &apperr.Error{
	Name:    "ConfigError",
	Message: "unable to parse settings.cmd option",
}

// Hook is a parsed command line. The zero Hook does nothing.
type Hook struct {
	args    []string
	timeout time.Duration
	wg      conc.WaitGroup
}

// New parses cmd with shell quoting rules. An empty cmd yields a Hook that
// never runs.
func New(cmd string) (*Hook, error) {
	args, err := shellquote.Split(cmd)
	if err != nil {
		return nil, errParseCmd.Wrap(err)
	}

	return &Hook{args: args, timeout: defaultTimeout}, nil
}

// Enabled reports whether there is a command to run.
func (h *Hook) Enabled() bool {
	return h != nil && len(h.args) > 0
}

// Run executes the command with CHRONO_EVENT and details of the state in
// its environment.
func (h *Hook) Run(ctx context.Context, event session.Event, st session.State) error {
	if !h.Enabled() {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	//nolint:gosec // the command comes from the user's own config
	cmd := exec.CommandContext(ctx, h.args[0], h.args[1:]...)
	cmd.Env = append(os.Environ(), env(event, st)...)

	return cmd.Run()
}

func env(event session.Event, st session.State) []string {
	vars := []string{
		"CHRONO_EVENT=" + event.String(),
		"CHRONO_RUNNING=" + strconv.FormatBool(st.Running()),
	}

	if st.Current != nil {
		vars = append(vars,
			"CHRONO_SESSION_ID="+strconv.FormatInt(st.Current.ID, 10),
			"CHRONO_START_TIME="+st.Current.StartTime.UTC().Format(time.RFC3339),
		)
	}

	return vars
}

// Listener returns a reconciler listener that runs the hook in the
// background after every acknowledged start or stop.
func (h *Hook) Listener() session.Listener {
	return func(event session.Event, st session.State) {
		if event != session.EventStarted && event != session.EventStopped {
			return
		}

		h.wg.Go(func() {
			if err := h.Run(context.Background(), event, st); err != nil {
				slog.Error("settings.cmd failed",
					slog.String("event", event.String()),
					slog.Any("error", err),
				)
			}
		})
	}
}

// Wait blocks until every command started by the listener has exited.
func (h *Hook) Wait() {
	if h == nil {
		return
	}

	h.wg.Wait()
}
