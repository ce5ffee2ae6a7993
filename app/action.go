package app

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"sync"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/chrono-hq/chrono/internal/config"
	"github.com/chrono-hq/chrono/internal/notify"
	"github.com/chrono-hq/chrono/internal/osutil"
	"github.com/chrono-hq/chrono/internal/pathutil"
	"github.com/chrono-hq/chrono/internal/session"
	"github.com/chrono-hq/chrono/report"
	"github.com/chrono-hq/chrono/stats"
	"github.com/chrono-hq/chrono/timer"
)

const (
	envNoColor       = "NO_COLOR"
	envChronoNoColor = "CHRONO_NO_COLOR"
)

// cliNotifier prints progress to the terminal and keeps the first error so
// that the command can exit with it.
type cliNotifier struct {
	terminal *notify.Terminal
	extra    []notify.Notifier
	err      error
	mu       sync.Mutex
}

func (n *cliNotifier) Info(msg string) {
	n.terminal.Info(msg)

	for _, x := range n.extra {
		x.Info(msg)
	}
}

func (n *cliNotifier) Success(msg string) {
	n.terminal.Success(msg)

	for _, x := range n.extra {
		x.Success(msg)
	}
}

func (n *cliNotifier) Error(err error) {
	n.mu.Lock()
	if n.err == nil {
		n.err = err
	}
	n.mu.Unlock()

	for _, x := range n.extra {
		x.Error(err)
	}
}

func (n *cliNotifier) Err() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.err
}

func newReconciler(e *env) (*session.Reconciler, *cliNotifier) {
	n := &cliNotifier{terminal: e.terminal, extra: e.notifiers()}

	r := session.New(e.backend, e.cfg.User.ID, session.WithNotifier(n))
	r.Subscribe(e.hook.Listener())

	return r, n
}

// withEnv loads the configuration and backend before running fn and
// releases them afterwards.
func withEnv(fn func(*cli.Context, *env) error) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		e, err := loadEnv(ctx)
		if err != nil {
			return err
		}

		defer e.Close()

		return fn(ctx, e)
	}
}

// timerAction runs the interactive timer.
func timerAction(_ *cli.Context, e *env) error {
	t := timer.New(e.backend, e.cfg.User.ID, timer.Opts{
		Notifiers:      e.notifiers(),
		Listeners:      []session.Listener{e.hook.Listener()},
		WorkdaySeconds: e.cfg.WorkdaySeconds(),
		TwentyFourHour: e.cfg.Settings.TwentyFourHour,
		DarkTheme:      e.cfg.Display.DarkTheme,
		Location:       e.cfg.Location(),
	})

	return t.Run()
}

// startAction opens a new session unless one is already running.
func startAction(ctx *cli.Context, e *env) error {
	r, n := newReconciler(e)

	r.Load(ctx.Context)

	if err := n.Err(); err != nil {
		return err
	}

	if st := r.State(); st.Running() {
		return errAlreadyRunning.Fmt(st.Current.ID)
	}

	r.Start(ctx.Context)

	return n.Err()
}

// stopAction closes the running session.
func stopAction(ctx *cli.Context, e *env) error {
	r, n := newReconciler(e)

	r.Load(ctx.Context)

	if err := n.Err(); err != nil {
		return err
	}

	if !r.State().Running() {
		return errNotRunning
	}

	r.Stop(ctx.Context)

	return n.Err()
}

// statusAction prints whether a session is running and today's total.
func statusAction(ctx *cli.Context, e *env) error {
	r, n := newReconciler(e)

	r.Load(ctx.Context)

	if err := n.Err(); err != nil {
		return err
	}

	now := e.now()
	st := r.State()

	var elapsed float64
	if st.Running() {
		elapsed = now.Sub(st.StartInstant).Seconds()
	}

	return report.Status(e.out, st, r.TotalToday(elapsed), report.StatusOpts{
		Now:            now,
		Location:       e.cfg.Location(),
		WorkdaySeconds: e.cfg.WorkdaySeconds(),
		TwentyFourHour: e.cfg.Settings.TwentyFourHour,
	})
}

// todayAction prints the sessions started today.
func todayAction(ctx *cli.Context, e *env) error {
	sessions, err := e.backend.Today(ctx.Context)
	if err != nil {
		return err
	}

	return printSessions(e, sessions)
}

// listAction prints the sessions started within --from and --to.
func listAction(ctx *cli.Context, e *env) error {
	sessions, err := e.backend.InRange(ctx.Context, e.cfg.CLI.From, e.cfg.CLI.To)
	if err != nil {
		return err
	}

	return printSessions(e, sessions)
}

// statsAction prints the breakdown of the time worked within --from and
// --to.
func statsAction(ctx *cli.Context, e *env) error {
	sessions, err := e.backend.InRange(ctx.Context, e.cfg.CLI.From, e.cfg.CLI.To)
	if err != nil {
		return err
	}

	s := stats.Compute(sessions, e.cfg.CLI.From, e.cfg.CLI.To, e.now(), e.cfg.Location())

	if e.cfg.CLI.JSON {
		return s.WriteJSON(e.out)
	}

	return s.Print(e.out)
}

// workedAction prints the worked-hours summary for --year.
func workedAction(ctx *cli.Context, e *env) error {
	f, ok := e.backend.(workHoursFetcher)
	if !ok {
		return errWorkedOffline
	}

	wh, err := f.WorkHours(ctx.Context, e.cfg.CLI.Year)
	if err != nil {
		return err
	}

	return report.WorkHours(e.out, e.cfg.CLI.Year, wh)
}

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// editConfigAction opens the config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	if err := pathutil.Initialize(); err != nil {
		return err
	}

	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = config.Stderr
	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Fprintf(c.App.Writer, "config: %s\n", configLocation())
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if CHRONO_NO_COLOR is set
	if _, exists := os.LookupEnv(envChronoNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func configLocation() string {
	if err := pathutil.Initialize(); err != nil {
		return err.Error()
	}

	return pathutil.ConfigFilePath()
}
