package hook

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrono-hq/chrono/internal/models"
	"github.com/chrono-hq/chrono/internal/osutil"
	"github.com/chrono-hq/chrono/internal/session"
)

func TestNewEmpty(t *testing.T) {
	h, err := New("")
	require.NoError(t, err)

	assert.False(t, h.Enabled())
	assert.NoError(t, h.Run(context.Background(), session.EventStarted, session.State{}))
}

func TestNewUnterminatedQuote(t *testing.T) {
	_, err := New(`notify-send "chrono`)
	require.Error(t, err)
	assert.ErrorIs(t, err, errParseCmd)
}

func TestEnv(t *testing.T) {
	start := time.Date(2025, time.January, 1, 8, 0, 0, 0, time.UTC)

	vars := env(session.EventStarted, session.State{
		Current: &models.Session{ID: 4, StartTime: start},
	})

	assert.Equal(t, []string{
		"CHRONO_EVENT=started",
		"CHRONO_RUNNING=true",
		"CHRONO_SESSION_ID=4",
		"CHRONO_START_TIME=2025-01-01T08:00:00Z",
	}, vars)

	assert.Equal(t, []string{
		"CHRONO_EVENT=stopped",
		"CHRONO_RUNNING=false",
	}, env(session.EventStopped, session.State{Paused: true}))
}

func TestRunPassesEvent(t *testing.T) {
	if runtime.GOOS == osutil.Windows {
		t.Skip("requires a POSIX shell")
	}

	out := filepath.Join(t.TempDir(), "event")

	h, err := New(`sh -c 'printf "%s" "$CHRONO_EVENT" > "$0"' ` + out)
	require.NoError(t, err)

	require.NoError(t, h.Run(context.Background(), session.EventStopped, session.State{Paused: true}))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "stopped", strings.TrimSpace(string(b)))
}

func TestListenerIgnoresOtherEvents(t *testing.T) {
	if runtime.GOOS == osutil.Windows {
		t.Skip("requires a POSIX shell")
	}

	out := filepath.Join(t.TempDir(), "event")

	h, err := New(`sh -c 'printf "%s" "$CHRONO_EVENT" >> "$0"' ` + out)
	require.NoError(t, err)

	l := h.Listener()
	l(session.EventRefreshed, session.State{Paused: true})
	l(session.EventStarted, session.State{Current: &models.Session{ID: 1}})

	assert.Eventually(t, func() bool {
		b, err := os.ReadFile(out)
		return err == nil && string(b) == "started"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWaitForListener(t *testing.T) {
	if runtime.GOOS == osutil.Windows {
		t.Skip("requires a POSIX shell")
	}

	out := filepath.Join(t.TempDir(), "event")

	h, err := New(`sh -c 'sleep 0.1; printf "%s" "$CHRONO_EVENT" > "$0"' ` + out)
	require.NoError(t, err)

	h.Listener()(session.EventStopped, session.State{Paused: true})
	h.Wait()

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "stopped", string(b))
}
