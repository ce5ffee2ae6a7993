package config

import (
	"net/url"
	"slices"
	"strings"
	"time"
)

var (
	minTimeout = 1 * time.Second
	maxTimeout = 5 * time.Minute

	minWorkdayHours = 1.0
	maxWorkdayHours = 24.0

	logLevels = []string{"debug", "info", "warn", "error"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if c.Settings.WorkdayHours < minWorkdayHours ||
		c.Settings.WorkdayHours > maxWorkdayHours {
		return errInvalidWorkday.Fmt(minWorkdayHours, maxWorkdayHours)
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	if c.Display.Timezone != "" {
		if _, err := time.LoadLocation(c.Display.Timezone); err != nil {
			return errInvalidTimezone.Fmt(c.Display.Timezone)
		}
	}

	return nil
}

// validateServer checks the remote settings. They are ignored in offline
// mode.
func (c *Config) validateServer() error {
	if c.Settings.Offline {
		return nil
	}

	if err := validateURL(c.Server.URL); err != nil {
		return err
	}

	if c.Server.Timeout < minTimeout || c.Server.Timeout > maxTimeout {
		return errInvalidTimeout.Fmt(minTimeout, maxTimeout)
	}

	return nil
}

func validateURL(s string) error {
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errInvalidServerURL.Fmt(s)
	}

	return nil
}
