package app

import "github.com/urfave/cli/v2"

var (
	urlFlag = &cli.StringFlag{
		Name:  "url",
		Usage: "Base URL of the Chrono API (overrides server.url)",
	}

	offlineFlag = &cli.BoolFlag{
		Name:  "offline",
		Usage: "Track sessions in the local database instead of the Chrono API",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	fromFlag = &cli.StringFlag{
		Name:    "from",
		Aliases: []string{"f"},
		Usage:   "List sessions started on or after this date (e.g. '2025-01-01' or '3 days ago'). Defaults to 7 days ago",
	}

	toFlag = &cli.StringFlag{
		Name:    "to",
		Aliases: []string{"t"},
		Usage:   "List sessions started on or before this date. Defaults to today",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the sessions as JSON",
	}

	startFlag = &cli.StringFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Usage:   "New start time in local time (YYYY-MM-DDTHH:MM)",
	}

	endFlag = &cli.StringFlag{
		Name:    "end",
		Aliases: []string{"e"},
		Usage:   "New end time in local time (YYYY-MM-DDTHH:MM). Pass an empty value to reopen the session",
	}

	yearFlag = &cli.IntFlag{
		Name:    "year",
		Aliases: []string{"y"},
		Usage:   "Year to report on. Defaults to the current year",
	}
)
