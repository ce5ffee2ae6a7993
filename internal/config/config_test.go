package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrono-hq/chrono/internal/apperr"
	"github.com/chrono-hq/chrono/internal/config"
	"github.com/chrono-hq/chrono/internal/testutil"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig(configPath string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			URL:     "http://localhost:8080/api",
			Timeout: 30 * time.Second,
		},
		Settings: config.SettingsConfig{
			WorkdayHours: 8,
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
		},
		Display: config.DisplayConfig{
			DarkTheme: true,
		},
		Log: config.LogConfig{
			Level: "info",
		},
		System: config.SystemConfig{
			ConfigPath: configPath,
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	if diff := cmp.Diff(defaultConfig(configPath), cfg); diff != "" {
		t.Fatalf("unexpected defaults (-want +got):\n%s", diff)
	}

	_, err = os.Stat(configPath)
	require.NoError(t, err, "default config should be written")

	again, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, cfg, again)
}

func TestViperModifiedConfig(t *testing.T) {
	configPath := testutil.CopyFixture(t, "modified.yml", "config.yml")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	want := &config.Config{
		Server: config.ServerConfig{
			URL:     "https://chrono.example.com/api",
			Session: "abc123",
			Timeout: 10 * time.Second,
		},
		User: config.UserConfig{
			ID:    42,
			Admin: true,
		},
		Settings: config.SettingsConfig{
			Cmd:            `notify-send chrono "$CHRONO_EVENT"`,
			WorkdayHours:   7.5,
			TwentyFourHour: true,
		},
		Display: config.DisplayConfig{
			Timezone: "Europe/Berlin",
		},
		Log: config.LogConfig{
			Level: "debug",
		},
		System: config.SystemConfig{
			ConfigPath: configPath,
		},
	}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("unexpected config (-want +got):\n%s", diff)
	}

	assert.InDelta(t, 27000, cfg.WorkdaySeconds(), 0.001)
	assert.Equal(t, "Europe/Berlin", cfg.Location().String())
}

func TestEnvironmentOverridesFile(t *testing.T) {
	configPath := testutil.CopyFixture(t, "modified.yml", "config.yml")

	t.Setenv("CHRONO_SERVER_SESSION", "from-env")
	t.Setenv("CHRONO_USER_ID", "7")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Server.Session)
	assert.Equal(t, int64(7), cfg.User.ID)
}

func TestEnvironmentIsNotPersisted(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	t.Setenv("CHRONO_SERVER_SESSION", "secret")

	_, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	b, err := os.ReadFile(configPath)
	require.NoError(t, err)

	assert.NotContains(t, string(b), "secret")
}

func TestInvalidConfig(t *testing.T) {
	configPath := testutil.CopyFixture(t, "invalid.yml", "config.yml")

	_, err := config.New(config.WithViperConfig(configPath))
	require.Error(t, err)

	assert.Equal(t, "ConfigError", apperr.NameOf(err))
	assert.Contains(t, err.Error(), "ftp://chrono.example.com")
}

func TestWithPaths(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
		config.WithPaths(configPath, "/data/chrono.db", "/data/log/chrono.log"),
	)
	require.NoError(t, err)

	assert.Equal(t, "/data/chrono.db", cfg.System.DBPath)
	assert.Equal(t, "/data/log/chrono.log", cfg.System.LogPath)
}

func TestLocationFallsBackToLocal(t *testing.T) {
	cfg := &config.Config{}

	assert.Equal(t, time.Local, cfg.Location())
}
