package config

import (
	"io"
	"os"
	"time"
	_ "time/tzdata"
)

type (
	// Config holds all configuration settings
	Config struct {
		Server        ServerConfig       `mapstructure:"server"`
		User          UserConfig         `mapstructure:"user"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		Log           LogConfig          `mapstructure:"log"`
		CLI           CLIConfig          `mapstructure:"-"`
		System        SystemConfig       `mapstructure:"-"`
	}

	// ServerConfig holds the location of the Chrono API and the credentials
	// used to reach it.
	ServerConfig struct {
		URL     string        `mapstructure:"url"`
		Session string        `mapstructure:"session"`
		Timeout time.Duration `mapstructure:"timeout"`
	}

	// UserConfig identifies the signed-in user.
	UserConfig struct {
		ID    int64 `mapstructure:"id"`
		Admin bool  `mapstructure:"admin"`
	}

	// SettingsConfig holds behavioural settings
	SettingsConfig struct {
		Cmd            string  `mapstructure:"cmd"`
		WorkdayHours   float64 `mapstructure:"workday_hours"`
		Offline        bool    `mapstructure:"offline"`
		TwentyFourHour bool    `mapstructure:"24hr_clock"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		Timezone  string `mapstructure:"timezone"`
		DarkTheme bool   `mapstructure:"dark_theme"`
	}

	// LogConfig holds logging settings
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// CLIConfig holds values that only come from command-line flags.
	CLIConfig struct {
		From time.Time
		To   time.Time
		Year int
		JSON bool
	}

	// SystemConfig holds resolved file locations.
	SystemConfig struct {
		ConfigPath string
		DBPath     string
		LogPath    string
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// WithPaths records the resolved file locations.
func WithPaths(configPath, dbPath, logPath string) Option {
	return func(c *Config) error {
		c.System = SystemConfig{
			ConfigPath: configPath,
			DBPath:     dbPath,
			LogPath:    logPath,
		}

		return nil
	}
}

// Location returns the display timezone, falling back to the local one.
func (c *Config) Location() *time.Location {
	if c.Display.Timezone == "" {
		return time.Local
	}

	loc, err := time.LoadLocation(c.Display.Timezone)
	if err != nil {
		return time.Local
	}

	return loc
}

// WorkdaySeconds returns the length of a workday in seconds.
func (c *Config) WorkdaySeconds() float64 {
	return c.Settings.WorkdayHours * 3600
}
