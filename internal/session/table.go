package session

import (
	"cmp"
	"encoding/json"
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/chrono-hq/chrono/internal/apperr"
	"github.com/chrono-hq/chrono/internal/models"
	"github.com/chrono-hq/chrono/internal/timeutil"
)

var (
	errNotEditable = &apperr.Error{
		Name:    "Unauthorized",
		Message: "editing sessions requires admin privileges",
	}

	errNoSuchRow = &apperr.Error{
		Name:    "NotFound",
		Message: "session %d is not in the table",
	}
)

const (
	dateLayout   = "Jan 02, 2006"
	clock12Hour  = "03:04:05 PM"
	clock24Hour  = "15:04:05"
	openEndLabel = "running"
)

// Table is an ordered list of sessions. Editable is supplied by the caller
// and gates EditForm.
type Table struct {
	loc      *time.Location
	rows     []models.Session
	Editable bool
	Hour24   bool
}

// NewTable orders sessions by start time. Sessions that start at the same
// instant are ordered by id.
func NewTable(sessions []models.Session, loc *time.Location) *Table {
	if loc == nil {
		loc = time.Local
	}

	rows := slices.Clone(sessions)

	slices.SortStableFunc(rows, func(a, b models.Session) int {
		if c := a.StartTime.Compare(b.StartTime); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	return &Table{
		rows: rows,
		loc:  loc,
	}
}

// Rows returns the sessions in display order.
func (t *Table) Rows() []models.Session {
	return t.rows
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Total returns the summed length of the closed sessions in seconds.
func (t *Table) Total() float64 {
	return timeutil.SumDurations(t.rows)
}

// EditForm opens an edit form for the row with the given id.
func (t *Table) EditForm(id int64) (*EditForm, error) {
	if !t.Editable {
		return nil, errNotEditable
	}

	for i := range t.rows {
		if t.rows[i].ID == id {
			return NewEditForm(t.rows[i], t.loc), nil
		}
	}

	return nil, errNoSuchRow.Fmt(id)
}

// Data returns the table as a header row followed by one row per session.
func (t *Table) Data() [][]string {
	clockLayout := clock12Hour
	if t.Hour24 {
		clockLayout = clock24Hour
	}

	data := make([][]string, 0, len(t.rows)+1)
	data = append(data, []string{"ID", "DATE", "START", "END", "DURATION"})

	for i := range t.rows {
		s := &t.rows[i]
		start := s.StartTime.In(t.loc)

		end := openEndLabel
		if s.EndTime != nil {
			end = s.EndTime.In(t.loc).Format(clockLayout)
		}

		data = append(data, []string{
			strconv.FormatInt(s.ID, 10),
			start.Format(dateLayout),
			start.Format(clockLayout),
			end,
			timeutil.ToElapsedCounter(s.Seconds()).String(),
		})
	}

	return data
}

type jsonRow struct {
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Seconds   float64    `json:"seconds"`
}

// WriteJSON writes the rows as an indented JSON array.
func (t *Table) WriteJSON(w io.Writer) error {
	out := make([]jsonRow, len(t.rows))

	for i := range t.rows {
		s := &t.rows[i]
		out[i] = jsonRow{
			ID:        s.ID,
			UserID:    s.UserID,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Seconds:   s.Seconds(),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
