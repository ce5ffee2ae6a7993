package report

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrono-hq/chrono/internal/models"
	"github.com/chrono-hq/chrono/internal/session"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()

	os.Exit(m.Run())
}

var now = time.Date(2025, time.January, 1, 15, 0, 0, 0, time.UTC)

func TestStatusRunning(t *testing.T) {
	var buf bytes.Buffer

	st := session.State{
		StartInstant: now.Add(-2 * time.Hour),
		Current:      &models.Session{ID: 5},
	}

	err := Status(&buf, st, 6*3600, StatusOpts{
		Now:            now,
		Location:       time.UTC,
		WorkdaySeconds: 8 * 3600,
		TwentyFourHour: true,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "since 13:00:00 (2 hours ago)")
	assert.Contains(t, out, "#5")
	assert.Contains(t, out, "06:00:00 of 08:00:00 (75%)")
}

func TestStatusPaused(t *testing.T) {
	var buf bytes.Buffer

	err := Status(&buf, session.State{Paused: true}, 90, StatusOpts{Now: now})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "paused")
	assert.Contains(t, out, "00:01:30")
	assert.NotContains(t, out, "Session:")
}

func TestSessionsEmpty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Sessions(&buf, session.NewTable(nil, time.UTC)))
	assert.Equal(t, "No sessions found\n", buf.String())
}

func TestSessionsTotal(t *testing.T) {
	var buf bytes.Buffer

	end := now.Add(-time.Hour)
	tbl := session.NewTable([]models.Session{
		{ID: 1, StartTime: now.Add(-3 * time.Hour), EndTime: &end},
		{ID: 2, StartTime: now},
	}, time.UTC)

	require.NoError(t, Sessions(&buf, tbl))

	out := buf.String()
	assert.Contains(t, out, "DURATION")
	assert.Contains(t, out, "Total: 02:00:00 across 2 sessions")
}

func TestWorkHours(t *testing.T) {
	var buf bytes.Buffer

	err := WorkHours(&buf, 2025, models.WorkHours{
		Worked:   1234.5,
		Expected: 1200,
		Holidays: 80,
		Vacation: 120,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "2025")
	assert.Contains(t, out, "1,234.50 hours")
	assert.Contains(t, out, "+34.50 hours")

	buf.Reset()

	err = WorkHours(&buf, 2025, models.WorkHours{Worked: 1000, Expected: 1200})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "-200.00 hours")
}
