package session

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrono-hq/chrono/internal/models"
	"github.com/chrono-hq/chrono/internal/testutil"
)

type tableJSONTest struct {
	table  *Table
	golden string
}

func (tc tableJSONTest) Output() ([]byte, string) {
	var buf bytes.Buffer

	if err := tc.table.WriteJSON(&buf); err != nil {
		return nil, tc.golden
	}

	return buf.Bytes(), tc.golden
}

func sampleSessions(t *testing.T) []models.Session {
	t.Helper()

	return []models.Session{
		{ID: 12, UserID: 1, StartTime: mustTime(t, "2025-01-01T13:00:00Z")},
		closedSession(t, 10, "2025-01-01T08:00:00Z", "2025-01-01T12:00:00Z"),
		closedSession(t, 2, "2025-01-01T08:00:00Z", "2025-01-01T08:30:15Z"),
	}
}

func TestTableOrder(t *testing.T) {
	table := NewTable(sampleSessions(t), time.UTC)

	ids := make([]int64, 0, table.Len())
	for _, s := range table.Rows() {
		ids = append(ids, s.ID)
	}

	if diff := cmp.Diff([]int64{2, 10, 12}, ids); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestTableData(t *testing.T) {
	table := NewTable(sampleSessions(t), time.UTC)
	table.Hour24 = true

	want := [][]string{
		{"ID", "DATE", "START", "END", "DURATION"},
		{"2", "Jan 01, 2025", "08:00:00", "08:30:15", "00:30:15"},
		{"10", "Jan 01, 2025", "08:00:00", "12:00:00", "04:00:00"},
		{"12", "Jan 01, 2025", "13:00:00", "running", "00:00:00"},
	}

	if diff := cmp.Diff(want, table.Data()); diff != "" {
		t.Fatalf("unexpected table (-want +got):\n%s", diff)
	}

	assert.InDelta(t, 4*3600+30*60+15, table.Total(), 0.001)
}

func TestTableData12Hour(t *testing.T) {
	table := NewTable(sampleSessions(t), time.FixedZone("EST", -5*60*60))

	data := table.Data()
	require.Len(t, data, 4)

	assert.Equal(t, []string{"2", "Jan 01, 2025", "03:00:00 AM", "03:30:15 AM", "00:30:15"}, data[1])
}

func TestTableEditGate(t *testing.T) {
	table := NewTable(sampleSessions(t), time.UTC)

	_, err := table.EditForm(10)
	require.ErrorIs(t, err, errNotEditable)

	table.Editable = true

	f, err := table.EditForm(10)
	require.NoError(t, err)

	assert.Equal(t, "2025-01-01T08:00:00", f.Start)
	assert.Equal(t, "2025-01-01T12:00:00", f.End)
	assert.True(t, f.Open())

	_, err = table.EditForm(404)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTableJSON(t *testing.T) {
	testutil.CompareGoldenFile(t, tableJSONTest{
		table:  NewTable(sampleSessions(t), time.UTC),
		golden: "table_json",
	})
}

func TestEmptyTableJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewTable(nil, nil).WriteJSON(&buf))
	assert.Equal(t, "[]\n", buf.String())
}

func TestTableOrderTiesByNumericID(t *testing.T) {
	start := mustTime(t, "2025-01-01T08:00:00Z")

	table := NewTable([]models.Session{
		{ID: 100, StartTime: start},
		{ID: 99, StartTime: start},
		{ID: 1000, StartTime: start},
	}, time.UTC)

	ids := make([]int64, 0, table.Len())
	for _, s := range table.Rows() {
		ids = append(ids, s.ID)
	}

	assert.Equal(t, []int64{99, 100, 1000}, ids)
}

func TestNewEditFormFields(t *testing.T) {
	cest := time.FixedZone("CEST", 2*60*60)

	closed := closedSession(t, 4, "2025-06-01T07:00:00.750Z", "2025-06-01T15:30:59.999Z")

	f := NewEditForm(closed, cest)
	assert.Equal(t, "2025-06-01T09:00:00", f.Start)
	assert.Equal(t, "2025-06-01T17:30:59", f.End)
	assert.True(t, f.Open())

	open := NewEditForm(models.Session{ID: 5, StartTime: mustTime(t, "2025-06-01T07:00:00Z")}, cest)
	assert.Equal(t, "2025-06-01T09:00:00", open.Start)
	assert.Empty(t, open.End)
}
