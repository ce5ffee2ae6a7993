package config

import (
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/chrono-hq/chrono/internal/timeutil"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	URL     string
	From    string
	To      string
	Year    int
	Offline bool
	JSON    bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Date ranges are resolved in the display timezone, so it must run after the
// file and environment have been applied.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			URL:     ctx.String("url"),
			From:    ctx.String("from"),
			To:      ctx.String("to"),
			Year:    ctx.Int("year"),
			Offline: ctx.Bool("offline"),
			JSON:    ctx.Bool("json"),
		}

		return applyCLIOptions(c, opts, time.Now().In(c.Location()))
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions, now time.Time) error {
	if opts.URL != "" {
		c.Server.URL = strings.TrimSpace(opts.URL)
	}

	if opts.Offline {
		c.Settings.Offline = true
	}

	c.CLI.JSON = opts.JSON

	c.CLI.Year = opts.Year
	if c.CLI.Year == 0 {
		c.CLI.Year = now.Year()
	}

	return applyCLIRange(c, opts, now)
}

// applyCLIRange resolves --from and --to into day bounds. The range
// defaults to the last seven days.
func applyCLIRange(c *Config, opts CLIOptions, now time.Time) error {
	start, end, _ := timeutil.PeriodBounds(timeutil.Period7Days, now)

	if opts.From != "" {
		from, err := timeutil.FromStr(opts.From, now)
		if err != nil {
			return errInvalidRange.Fmt("from").Wrap(err)
		}

		start = timeutil.RoundToStart(from)
	}

	if opts.To != "" {
		to, err := timeutil.FromStr(opts.To, now)
		if err != nil {
			return errInvalidRange.Fmt("to").Wrap(err)
		}

		end = timeutil.RoundToEnd(to)
	}

	if end.Before(start) {
		return errRangeOrder.Fmt(
			start.Format(time.DateOnly),
			end.Format(time.DateOnly),
		)
	}

	c.CLI.From, c.CLI.To = start, end

	return nil
}
