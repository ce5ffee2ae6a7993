// Package stats breaks down the time worked over a reporting period
package stats

import (
	"time"

	"github.com/chrono-hq/chrono/internal/models"
	"github.com/chrono-hq/chrono/internal/timeutil"
)

const (
	hoursInADay = 24
	daysInAWeek = 7
	dayLayout   = "2006-01-02"
)

// Stats holds the seconds worked within a reporting period, in total and
// broken down by day, weekday and hour of the day.
type Stats struct {
	Start    time.Time            `json:"start"`
	End      time.Time            `json:"end"`
	Daily    map[string]float64   `json:"daily"`
	Total    float64              `json:"total"`
	Average  float64              `json:"average_per_day"`
	Sessions int                  `json:"sessions"`
	Days     int                  `json:"days"`
	Weekday  [daysInAWeek]float64 `json:"weekday"`
	Hourly   [hoursInADay]float64 `json:"hourly"`
	loc      *time.Location
}

// Compute aggregates sessions over [start, end] in loc. Parts of a session
// outside the period are ignored and open sessions count up to now.
func Compute(
	sessions []models.Session,
	start, end, now time.Time,
	loc *time.Location,
) *Stats {
	if loc == nil {
		loc = time.Local
	}

	s := &Stats{
		Start: start,
		End:   end,
		Daily: make(map[string]float64),
		Days:  countDays(start, end, loc),
		loc:   loc,
	}

	for i := range sessions {
		sess := &sessions[i]

		from := sess.StartTime

		to := now
		if sess.EndTime != nil {
			to = *sess.EndTime
		}

		if from.Before(start) {
			from = start
		}

		if to.After(end) {
			to = end
		}

		if !to.After(from) {
			continue
		}

		s.Sessions++
		s.add(from, to)
	}

	if s.Days > 0 {
		s.Average = s.Total / float64(s.Days)
	}

	return s
}

// add splits [from, to) on hour boundaries in the reporting location.
func (s *Stats) add(from, to time.Time) {
	for from.Before(to) {
		local := from.In(s.loc)

		next := time.Date(
			local.Year(), local.Month(), local.Day(),
			local.Hour()+1, 0, 0, 0, s.loc,
		)
		if next.After(to) {
			next = to
		}

		secs := next.Sub(from).Seconds()

		s.Total += secs
		s.Daily[local.Format(dayLayout)] += secs
		s.Weekday[local.Weekday()] += secs
		s.Hourly[local.Hour()] += secs

		from = next
	}
}

func countDays(start, end time.Time, loc *time.Location) int {
	if end.Before(start) {
		return 0
	}

	var days int

	for d := timeutil.RoundToStart(start.In(loc)); !d.After(end); d = d.AddDate(0, 0, 1) {
		days++
	}

	return days
}
