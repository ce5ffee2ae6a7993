// Package models holds the data exchanged with the Chrono API
package models

import "time"

// Session is one work interval for one user. A nil EndTime means the
// session is still open.
type Session struct {
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
}

// Open reports whether the session is still running.
func (s *Session) Open() bool {
	return s.EndTime == nil
}

// Seconds returns the length of a closed session in seconds. Open sessions
// report zero.
func (s *Session) Seconds() float64 {
	if s.EndTime == nil {
		return 0
	}

	return s.EndTime.Sub(s.StartTime).Seconds()
}

// WorkHours summarises the hours worked against the hours expected for a
// year.
type WorkHours struct {
	Worked   float64 `json:"worked"`
	Expected float64 `json:"expected"`
	Holidays float64 `json:"holidays"`
	Vacation float64 `json:"vacation"`
}

// Overtime is the difference between worked and expected hours.
func (w WorkHours) Overtime() float64 {
	return w.Worked - w.Expected
}
