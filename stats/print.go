package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/chrono-hq/chrono/internal/timeutil"
	"github.com/chrono-hq/chrono/internal/ui"
)

const (
	barChartChar = "▇"
	periodLayout = "January 02, 2006"
)

type bar struct {
	label   string
	seconds float64
}

// getBarChart renders bars in minutes. Bars with no time are skipped.
func getBarChart(title string, bars []bar) (string, error) {
	var chartBars pterm.Bars

	for _, b := range bars {
		if b.seconds <= 0 {
			continue
		}

		chartBars = append(chartBars, pterm.Bar{
			Label: b.label,
			Value: timeutil.Round(b.seconds / 60),
		})
	}

	if len(chartBars) == 0 {
		return "", nil
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(chartBars).
		Srender()
	if err != nil {
		return "", err
	}

	return ui.Cyan(fmt.Sprintf("\n%s breakdown (minutes)", title)) + "\n" + chart, nil
}

func (s *Stats) dailyBars() []bar {
	days := make([]string, 0, len(s.Daily))
	for d := range s.Daily {
		days = append(days, d)
	}

	slices.Sort(days)

	bars := make([]bar, 0, len(days))

	for _, d := range days {
		date, err := time.ParseInLocation(dayLayout, d, s.loc)
		if err != nil {
			continue
		}

		bars = append(bars, bar{label: date.Format("Mon Jan 02"), seconds: s.Daily[d]})
	}

	return bars
}

func (s *Stats) weekdayBars() []bar {
	bars := make([]bar, daysInAWeek)

	for i := range s.Weekday {
		bars[i] = bar{label: time.Weekday(i).String(), seconds: s.Weekday[i]}
	}

	return bars
}

func (s *Stats) hourlyBars() []bar {
	bars := make([]bar, hoursInADay)

	for i := range s.Hourly {
		bars[i] = bar{label: fmt.Sprintf("%02d:00", i), seconds: s.Hourly[i]}
	}

	return bars
}

func (s *Stats) summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s - %s\n",
		ui.Highlight("Reporting period:"),
		s.Start.In(s.loc).Format(periodLayout),
		s.End.In(s.loc).Format(periodLayout),
	)
	fmt.Fprintf(&b, "%s %s across %d sessions\n",
		ui.Highlight("Total time:"),
		ui.Green(timeutil.ToElapsedCounter(s.Total).String()),
		s.Sessions,
	)
	fmt.Fprintf(&b, "%s %s per day over %d days",
		ui.Highlight("Average:"),
		ui.Green(timeutil.ToElapsedCounter(s.Average).String()),
		s.Days,
	)

	return b.String()
}

// Print writes the summary followed by the daily, weekday and hourly
// charts.
func (s *Stats) Print(w io.Writer) error {
	if s.Sessions == 0 {
		_, err := fmt.Fprintln(w, "No sessions found for the specified time range")
		return err
	}

	output := []string{s.summary()}

	for _, section := range []struct {
		title string
		bars  []bar
	}{
		{"Daily", s.dailyBars()},
		{"Weekday", s.weekdayBars()},
		{"Hourly", s.hourlyBars()},
	} {
		chart, err := getBarChart(section.title, section.bars)
		if err != nil {
			return err
		}

		if chart != "" {
			output = append(output, chart)
		}
	}

	_, err := fmt.Fprintln(w, strings.TrimSpace(strings.Join(output, "\n")))

	return err
}

// WriteJSON writes the stats as indented JSON.
func (s *Stats) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(s)
}
