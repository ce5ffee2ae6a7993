package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/chrono-hq/chrono/internal/chrono"
	"github.com/chrono-hq/chrono/internal/config"
	"github.com/chrono-hq/chrono/internal/hook"
	"github.com/chrono-hq/chrono/internal/logging"
	"github.com/chrono-hq/chrono/internal/models"
	"github.com/chrono-hq/chrono/internal/notify"
	"github.com/chrono-hq/chrono/internal/pathutil"
	"github.com/chrono-hq/chrono/internal/session"
	"github.com/chrono-hq/chrono/internal/ui"
	"github.com/chrono-hq/chrono/store"
)

// backend is the session source used by every command.
type backend interface {
	session.Store
	session.Lister
}

type workHoursFetcher interface {
	WorkHours(ctx context.Context, year int) (models.WorkHours, error)
}

// env bundles what an action needs once configuration has been loaded.
type env struct {
	cfg      *config.Config
	backend  backend
	hook     *hook.Hook
	desktop  notify.Notifier
	out      io.Writer
	closers  []io.Closer
	terminal *notify.Terminal
	now      func() time.Time
}

func (e *env) Close() error {
	e.hook.Wait()

	var errs []error

	for i := len(e.closers) - 1; i >= 0; i-- {
		errs = append(errs, e.closers[i].Close())
	}

	return errors.Join(errs...)
}

// notifiers returns the notifiers that should receive reconciler output
// outside of the TUI.
func (e *env) notifiers() []notify.Notifier {
	if e.desktop == nil {
		return nil
	}

	return []notify.Notifier{e.desktop}
}

// loadEnv is replaced in tests.
var loadEnv = newEnv

func newEnv(ctx *cli.Context) (*env, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, err
	}

	cfg, err := config.New(
		config.WithPromptConfig(pathutil.ConfigFilePath()),
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithPaths(
			pathutil.ConfigFilePath(),
			pathutil.DBFilePath(),
			pathutil.LogFilePath(),
		),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	logger, logCloser := logging.NewFileLogger(cfg.System.LogPath, cfg.Log.Level)
	slog.SetDefault(logger)

	ui.DarkTheme = cfg.Display.DarkTheme

	e := &env{
		cfg:      cfg,
		out:      config.Stdout,
		terminal: notify.NewTerminal(config.Stdout),
		closers:  []io.Closer{logCloser},
		now:      time.Now,
	}

	if cfg.Notifications.Enabled {
		e.desktop = notify.NewDesktop()
	}

	e.hook, err = hook.New(cfg.Settings.Cmd)
	if err != nil {
		_ = e.Close()
		return nil, err
	}

	e.backend, err = openBackend(cfg)
	if err != nil {
		_ = e.Close()
		return nil, err
	}

	if c, ok := e.backend.(io.Closer); ok {
		e.closers = append(e.closers, c)
	}

	return e, nil
}

// openBackend selects the offline database or the Chrono API.
func openBackend(cfg *config.Config) (backend, error) {
	if cfg.Settings.Offline {
		slog.Debug("using offline store", slog.String("path", cfg.System.DBPath))

		c, err := store.NewClient(cfg.System.DBPath, cfg.User.ID)
		if err != nil {
			return nil, err
		}

		return c, nil
	}

	slog.Debug("using chrono api", slog.String("url", cfg.Server.URL))

	return &chrono.Client{
		BaseURL:        cfg.Server.URL,
		Session:        cfg.Server.Session,
		UserAgent:      "chrono/" + config.Version,
		RequestTimeout: cfg.Server.Timeout,
	}, nil
}
