package stats

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrono-hq/chrono/internal/models"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()

	os.Exit(m.Run())
}

func at(day, hour, minute int) time.Time {
	return time.Date(2025, time.January, day, hour, minute, 0, 0, time.UTC)
}

func closed(id int64, start, end time.Time) models.Session {
	return models.Session{ID: id, StartTime: start, EndTime: &end}
}

func TestComputeSplitsOnHours(t *testing.T) {
	// Jan 6 2025 is a Monday
	s := Compute([]models.Session{
		closed(1, at(6, 9, 30), at(6, 11, 15)),
	}, at(6, 0, 0), at(6, 23, 59), at(7, 0, 0), time.UTC)

	assert.Equal(t, 1, s.Sessions)
	assert.Equal(t, 1, s.Days)
	assert.InDelta(t, 105*60, s.Total, 0.001)

	assert.InDelta(t, 30*60, s.Hourly[9], 0.001)
	assert.InDelta(t, 60*60, s.Hourly[10], 0.001)
	assert.InDelta(t, 15*60, s.Hourly[11], 0.001)
	assert.InDelta(t, 105*60, s.Weekday[time.Monday], 0.001)
	assert.InDelta(t, 105*60, s.Daily["2025-01-06"], 0.001)
}

func TestComputeClipsToPeriod(t *testing.T) {
	start := at(2, 0, 0)
	end := at(3, 23, 59)

	s := Compute([]models.Session{
		closed(1, at(1, 23, 0), at(2, 1, 0)),
		closed(2, at(5, 8, 0), at(5, 9, 0)),
		{ID: 3, StartTime: at(3, 22, 0)},
	}, start, end, at(3, 23, 0), time.UTC)

	assert.Equal(t, 2, s.Sessions)
	assert.Equal(t, 2, s.Days)
	assert.InDelta(t, 2*3600, s.Total, 0.001)
	assert.InDelta(t, 3600, s.Average, 0.001)
	assert.InDelta(t, 3600, s.Daily["2025-01-02"], 0.001)
	assert.InDelta(t, 3600, s.Daily["2025-01-03"], 0.001)
}

func TestComputeUsesLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	s := Compute([]models.Session{
		closed(1, at(6, 3, 0), at(6, 4, 0)),
	}, at(5, 0, 0), at(7, 0, 0), at(7, 0, 0), loc)

	// 03:00 UTC is 22:00 the previous evening in New York
	assert.InDelta(t, 3600, s.Hourly[22], 0.001)
	assert.InDelta(t, 3600, s.Daily["2025-01-05"], 0.001)
}

func TestPrint(t *testing.T) {
	s := Compute([]models.Session{
		closed(1, at(6, 9, 0), at(6, 10, 30)),
	}, at(6, 0, 0), at(6, 23, 59), at(7, 0, 0), time.UTC)

	var buf bytes.Buffer
	require.NoError(t, s.Print(&buf))

	out := buf.String()
	assert.Contains(t, out, "January 06, 2025")
	assert.Contains(t, out, "01:30:00 across 1 sessions")
	assert.Contains(t, out, "Daily breakdown (minutes)")
	assert.Contains(t, out, "Mon Jan 06")
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "09:00")
}

func TestPrintEmpty(t *testing.T) {
	s := Compute(nil, at(6, 0, 0), at(6, 23, 59), at(7, 0, 0), time.UTC)

	var buf bytes.Buffer
	require.NoError(t, s.Print(&buf))
	assert.Equal(t, "No sessions found for the specified time range\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	s := Compute([]models.Session{
		closed(1, at(6, 9, 0), at(6, 10, 0)),
	}, at(6, 0, 0), at(6, 23, 59), at(7, 0, 0), time.UTC)

	var buf bytes.Buffer
	require.NoError(t, s.WriteJSON(&buf))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.InDelta(t, 3600, got["total"], 0.001)
	assert.InDelta(t, 1, got["sessions"], 0)
	assert.Len(t, got["hourly"], 24)
}
