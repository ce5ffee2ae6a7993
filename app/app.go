// Package app defines the chrono command-line interface
package app

import (
	"log/slog"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/chrono-hq/chrono/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

func afterAction(ctx *cli.Context) error {
	slog.DebugContext(ctx.Context, "exiting chrono")

	return nil
}

// Get retrieves the chrono app instance.
func Get() *cli.App {
	rangeFlags := []cli.Flag{fromFlag, toFlag}

	chronoApp := &cli.App{
		Name: "chrono",
		Usage: `
		Chrono tracks the time you spend working. Start and stop sessions from
		the command-line or the live timer, and review or correct them later.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "start",
				Usage:  "Start a new session",
				Action: withEnv(startAction),
			},
			{
				Name:   "stop",
				Usage:  "Stop the running session",
				Action: withEnv(stopAction),
			},
			{
				Name:   "status",
				Usage:  "Print whether a session is running and the time worked today",
				Action: withEnv(statusAction),
			},
			{
				Name:   "today",
				Usage:  "List the sessions started today",
				Flags:  []cli.Flag{jsonFlag},
				Action: withEnv(todayAction),
			},
			{
				Name: "list",
				Usage: `
				List the sessions started within a date range. Defaults to the last
				7 days`,
				Flags:  append([]cli.Flag{jsonFlag}, rangeFlags...),
				Action: withEnv(listAction),
			},
			{
				Name: "stats",
				Usage: `
				Break down the time worked by day, weekday and hour. Defaults to the
				last 7 days`,
				Flags:  append([]cli.Flag{jsonFlag}, rangeFlags...),
				Action: withEnv(statsAction),
			},
			{
				Name:      "edit",
				Usage:     "Correct the start or end time of a session (requires user.admin)",
				ArgsUsage: "<id>",
				Flags:     append([]cli.Flag{startFlag, endFlag}, rangeFlags...),
				Action:    withEnv(editAction),
			},
			{
				Name:   "worked",
				Usage:  "Print the hours worked against the hours expected for a year",
				Flags:  []cli.Flag{yearFlag},
				Action: withEnv(workedAction),
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			urlFlag,
			offlineFlag,
			noColorFlag,
		},
		Action: withEnv(timerAction),
		Before: beforeAction,
		After:  afterAction,
	}

	return chronoApp
}
