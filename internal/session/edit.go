package session

import (
	"time"

	"github.com/chrono-hq/chrono/internal/models"
	"github.com/chrono-hq/chrono/internal/timeutil"
)

// EditForm holds the editable bounds of one session as local datetime
// strings. An empty End leaves the session open.
type EditForm struct {
	loc    *time.Location
	Start  string
	End    string
	ID     int64
	UserID int64
	open   bool
}

// NewEditForm returns an open form pre-populated from s in loc. A nil loc
// means the local timezone.
func NewEditForm(s models.Session, loc *time.Location) *EditForm {
	if loc == nil {
		loc = time.Local
	}

	f := &EditForm{
		ID:     s.ID,
		UserID: s.UserID,
		loc:    loc,
		open:   true,
	}

	f.Start = timeutil.FormatLocalInput(s.StartTime, loc)

	if s.EndTime != nil {
		f.End = timeutil.FormatLocalInput(*s.EndTime, loc)
	}

	return f
}

// Open reports whether the form is still being edited.
func (f *EditForm) Open() bool {
	return f.open
}

// Close marks the form as done.
func (f *EditForm) Close() {
	f.open = false
}

// Location returns the timezone the form's fields are expressed in.
func (f *EditForm) Location() *time.Location {
	return f.loc
}

// Session converts the form back into the payload of an update. Both fields
// go through the ISO conversion so the instants sent are whole seconds in
// UTC.
func (f *EditForm) Session() (models.Session, error) {
	s := models.Session{
		ID:     f.ID,
		UserID: f.UserID,
	}

	start, err := f.instant(f.Start)
	if err != nil {
		return s, err
	}

	s.StartTime = start

	if f.End == "" {
		return s, nil
	}

	end, err := f.instant(f.End)
	if err != nil {
		return s, err
	}

	if end.Before(start) {
		return s, errEndBeforeStart.Fmt(f.End, f.Start)
	}

	s.EndTime = &end

	return s, nil
}

func (f *EditForm) instant(local string) (time.Time, error) {
	iso, err := timeutil.LocalInputToISOIn(local, f.loc)
	if err != nil {
		return time.Time{}, err
	}

	return time.Parse(time.RFC3339, iso)
}
