package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrono-hq/chrono/internal/apperr"
	"github.com/chrono-hq/chrono/internal/models"
	"github.com/chrono-hq/chrono/internal/session"
)

var _ session.Store = (*Client)(nil)

var _ session.Lister = (*Client)(nil)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func newTestClient(t *testing.T, userID int64) (*Client, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: time.Date(2025, time.January, 1, 8, 0, 0, 0, time.UTC)}

	c, err := NewClient(filepath.Join(t.TempDir(), "chrono.db"), userID, WithNow(clock.Now))
	require.NoError(t, err)

	t.Cleanup(func() { _ = c.Close() })

	return c, clock
}

func TestLatestEmpty(t *testing.T) {
	c, _ := newTestClient(t, 1)

	_, err := c.Latest(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestStartStopLifecycle(t *testing.T) {
	ctx := context.Background()
	c, clock := newTestClient(t, 1)

	started, err := c.Start(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), started.ID)
	assert.Equal(t, int64(1), started.UserID)
	assert.True(t, started.Open())

	latest, err := c.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, started, latest)

	clock.Advance(4 * time.Hour)

	stopped, err := c.Stop(ctx, started.ID)
	require.NoError(t, err)

	assert.False(t, stopped.Open())
	assert.InDelta(t, 14400, stopped.Seconds(), 0.001)

	_, err = c.Stop(ctx, started.ID)
	assert.Equal(t, "Conflict", apperr.NameOf(err))
}

func TestOneOpenSessionPerUser(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t, 1)

	_, err := c.Start(ctx)
	require.NoError(t, err)

	_, err = c.Start(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, errSessionOpen)
}

func TestStopUnknownSession(t *testing.T) {
	c, _ := newTestClient(t, 1)

	_, err := c.Stop(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestTodayAndRange(t *testing.T) {
	ctx := context.Background()
	c, clock := newTestClient(t, 1)

	for range 3 {
		s, err := c.Start(ctx)
		require.NoError(t, err)

		clock.Advance(time.Hour)

		_, err = c.Stop(ctx, s.ID)
		require.NoError(t, err)

		clock.Advance(23 * time.Hour)
	}

	// clock is now on Jan 4
	today, err := c.Today(ctx)
	require.NoError(t, err)
	assert.Empty(t, today)

	all, err := c.InRange(ctx,
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 3, 23, 59, 59, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Len(t, all, 3)

	assert.True(t, all[0].StartTime.Before(all[1].StartTime))

	second, err := c.InRange(ctx,
		time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 2, 23, 59, 59, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, int64(2), second[0].ID)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	c, clock := newTestClient(t, 1)

	s, err := c.Start(ctx)
	require.NoError(t, err)

	clock.Advance(time.Hour)

	s, err = c.Stop(ctx, s.ID)
	require.NoError(t, err)

	start := s.StartTime.Add(-30 * time.Minute)
	end := s.StartTime.Add(2 * time.Hour)

	updated, err := c.Update(ctx, models.Session{ID: s.ID, StartTime: start, EndTime: &end})
	require.NoError(t, err)

	assert.Equal(t, int64(1), updated.UserID)
	assert.InDelta(t, 9000, updated.Seconds(), 0.001)

	latest, err := c.Latest(ctx)
	require.NoError(t, err)
	assert.True(t, latest.StartTime.Equal(start))
}

func TestUpdateRejectsInvertedBounds(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t, 1)

	s, err := c.Start(ctx)
	require.NoError(t, err)

	end := s.StartTime.Add(-time.Minute)

	_, err = c.Update(ctx, models.Session{ID: s.ID, StartTime: s.StartTime, EndTime: &end})
	assert.ErrorIs(t, err, errInvalidBounds)
}

func TestUpdateCannotReopenWhileAnotherRuns(t *testing.T) {
	ctx := context.Background()
	c, clock := newTestClient(t, 1)

	first, err := c.Start(ctx)
	require.NoError(t, err)

	clock.Advance(time.Hour)

	first, err = c.Stop(ctx, first.ID)
	require.NoError(t, err)

	_, err = c.Start(ctx)
	require.NoError(t, err)

	_, err = c.Update(ctx, models.Session{ID: first.ID, StartTime: first.StartTime})
	assert.ErrorIs(t, err, errSessionOpen)
}

func TestSessionsAreScopedToUser(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "chrono.db")

	a, err := NewClient(path, 1)
	require.NoError(t, err)

	s, err := a.Start(ctx)
	require.NoError(t, err)
	require.NoError(t, a.Close())

	b, err := NewClient(path, 2)
	require.NoError(t, err)

	t.Cleanup(func() { _ = b.Close() })

	_, err = b.Latest(ctx)
	assert.ErrorIs(t, err, session.ErrNotFound)

	_, err = b.Stop(ctx, s.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)

	_, err = b.Start(ctx)
	assert.NoError(t, err)
}

func TestDatabaseLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chrono.db")

	c, err := NewClient(path, 1)
	require.NoError(t, err)

	t.Cleanup(func() { _ = c.Close() })

	_, err = NewClient(path, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errChronoRunning)
}

func TestSchemaVersion(t *testing.T) {
	c, _ := newTestClient(t, 1)

	v, err := c.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, uint64(schemaVersion), v)
}

func TestReconcilerOverOfflineStore(t *testing.T) {
	ctx := context.Background()
	c, clock := newTestClient(t, 1)

	r := session.New(c, 1, session.WithNow(clock.Now))

	r.Start(ctx)
	require.True(t, r.State().Running())

	clock.Advance(90 * time.Minute)

	// a fresh reconciler picks up the session left running
	resumed := session.New(c, 1, session.WithNow(clock.Now))
	resumed.Load(ctx)

	st := resumed.State()
	require.True(t, st.Running())
	assert.True(t, st.StartInstant.Equal(time.Date(2025, time.January, 1, 8, 0, 0, 0, time.UTC)))

	resumed.Stop(ctx)

	st = resumed.State()
	assert.False(t, st.Running())
	require.Len(t, st.Today, 1)
	assert.InDelta(t, 5400, resumed.TotalToday(0), 0.001)
}
