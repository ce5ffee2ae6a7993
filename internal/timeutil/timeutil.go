// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"time"

	"github.com/chrono-hq/chrono/internal/models"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
)

type Period string

const (
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
	Period365Days   Period = "365days"
)

// Range maps a period to the day offset of its first day.
var Range = map[Period]int{
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
	Period365Days:   -364,
}

// Counter is an elapsed duration broken down for display.
type Counter struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Total returns the counter in whole seconds.
func (c Counter) Total() int {
	return c.Hours*secondsInAnHour + c.Minutes*secondsInAMinute + c.Seconds
}

// String renders the counter as hh:mm:ss.
func (c Counter) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hours, c.Minutes, c.Seconds)
}

// ToElapsedCounter decomposes a number of seconds into hours, minutes and
// seconds. Negative input yields the zero counter and fractions are floored.
func ToElapsedCounter(totalSeconds float64) Counter {
	if totalSeconds < 0 || math.IsNaN(totalSeconds) {
		return Counter{}
	}

	s := int(math.Floor(totalSeconds))

	return Counter{
		Hours:   s / secondsInAnHour,
		Minutes: (s / secondsInAMinute) % secondsInAMinute,
		Seconds: s % secondsInAMinute,
	}
}

// SumDurations adds up the length in seconds of every closed session. Open
// sessions contribute nothing.
func SumDurations(sessions []models.Session) float64 {
	var total float64

	for i := range sessions {
		total += sessions[i].Seconds()
	}

	return total
}

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// PeriodBounds returns the first and last instant of a period ending on the
// day of now.
func PeriodBounds(p Period, now time.Time) (start, end time.Time, ok bool) {
	offset, ok := Range[p]
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	end = RoundToEnd(now)
	if p == PeriodYesterday {
		end = RoundToEnd(now.AddDate(0, 0, -1))
	}

	return RoundToStart(now.AddDate(0, 0, offset)), end, true
}
