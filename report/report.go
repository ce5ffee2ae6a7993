// Package report prints the output of the non-interactive commands
package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/pterm/pterm"

	"github.com/chrono-hq/chrono/internal/apperr"
	"github.com/chrono-hq/chrono/internal/models"
	"github.com/chrono-hq/chrono/internal/osutil"
	"github.com/chrono-hq/chrono/internal/session"
	"github.com/chrono-hq/chrono/internal/timeutil"
	"github.com/chrono-hq/chrono/internal/ui"
)

const hoursFormat = "#,###.##"

// StatusOpts controls how Status renders times.
type StatusOpts struct {
	Now            time.Time
	Location       *time.Location
	WorkdaySeconds float64
	TwentyFourHour bool
}

func clockLayout(hour24 bool) string {
	if hour24 {
		return "15:04:05"
	}

	return "03:04:05 PM"
}

// Status prints whether a session is running along with today's total.
func Status(w io.Writer, st session.State, total float64, opts StatusOpts) error {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if st.Running() {
		fmt.Fprintf(tw, "Status:\t%s since %s (%s)\n",
			ui.Green("running"),
			st.StartInstant.In(loc).Format(clockLayout(opts.TwentyFourHour)),
			humanize.RelTime(st.StartInstant, opts.Now, "ago", "from now"),
		)
		fmt.Fprintf(tw, "Session:\t#%d\n", st.Current.ID)
	} else {
		fmt.Fprintf(tw, "Status:\t%s\n", ui.Yellow("paused"))
	}

	today := timeutil.ToElapsedCounter(total).String()

	if opts.WorkdaySeconds > 0 {
		percent := total / opts.WorkdaySeconds * 100

		fmt.Fprintf(tw, "Today:\t%s of %s (%d%%)\n",
			ui.Cyan(today),
			timeutil.ToElapsedCounter(opts.WorkdaySeconds),
			timeutil.Round(percent),
		)
	} else {
		fmt.Fprintf(tw, "Today:\t%s\n", ui.Cyan(today))
	}

	return tw.Flush()
}

// Sessions prints the session table followed by its total.
func Sessions(w io.Writer, tbl *session.Table) error {
	if tbl.Len() == 0 {
		_, err := fmt.Fprintln(w, "No sessions found")
		return err
	}

	if err := ui.PrintTable(w, tbl.Data()); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Total: %s across %s\n",
		ui.Cyan(timeutil.ToElapsedCounter(tbl.Total()).String()),
		english.Plural(tbl.Len(), "session", ""),
	)

	return err
}

// WorkHours prints the yearly worked-hours summary.
func WorkHours(w io.Writer, year int, wh models.WorkHours) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Year:\t%s\n", ui.Highlight(strconv.Itoa(year)))
	fmt.Fprintf(tw, "Worked:\t%s hours\n", humanize.FormatFloat(hoursFormat, wh.Worked))
	fmt.Fprintf(tw, "Expected:\t%s hours\n", humanize.FormatFloat(hoursFormat, wh.Expected))
	fmt.Fprintf(tw, "Holidays:\t%s hours\n", humanize.FormatFloat(hoursFormat, wh.Holidays))
	fmt.Fprintf(tw, "Vacation:\t%s hours\n", humanize.FormatFloat(hoursFormat, wh.Vacation))

	overtime := wh.Overtime()

	sign, color := "+", ui.Green
	if overtime < 0 {
		sign, color = "-", ui.Red
		overtime = -overtime
	}

	fmt.Fprintf(tw, "Overtime:\t%s\n",
		color(sign+humanize.FormatFloat(hoursFormat, overtime)+" hours"),
	)

	return tw.Flush()
}

// Error prints err, prefixed with its name when it has one.
func Error(err error) {
	if name := apperr.NameOf(err); name != "Error" {
		pterm.Error.Printfln("%s: %s", name, err.Error())
		return
	}

	pterm.Error.Println(err)
}

// Quit prints err and exits with a non-zero status.
func Quit(err error) {
	Error(err)
	os.Exit(int(osutil.ExitError))
}
