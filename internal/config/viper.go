package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "CHRONO"

const (
	keyServerURL            = "server.url"
	keyServerSession        = "server.session"
	keyServerTimeout        = "server.timeout"
	keyUserID               = "user.id"
	keyUserAdmin            = "user.admin"
	keyOffline              = "settings.offline"
	keyWorkdayHours         = "settings.workday_hours"
	keySessionCmd           = "settings.cmd"
	keyTwentyFourHour       = "settings.24hr_clock"
	keyNotificationsEnabled = "notifications.enabled"
	keyDarkTheme            = "display.dark_theme"
	keyTimezone             = "display.timezone"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from a YAML
// file, writing the defaults to it when it does not exist yet. Environment
// variables such as CHRONO_SERVER_URL override file values.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return errReadConfig.Wrap(err)
			}

			setPrompted(v, c)

			if err := v.WriteConfig(); err != nil {
				return errWriteConfig.Wrap(err)
			}
		}

		// environment overrides are never written to the file
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		if err := v.Unmarshal(c); err != nil {
			return errReadConfig.Wrap(err)
		}

		c.System.ConfigPath = configPath

		return nil
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyServerURL, "http://localhost:8080/api")
	v.SetDefault(keyServerSession, "")
	v.SetDefault(keyServerTimeout, "30s")
	v.SetDefault(keyUserID, 0)
	v.SetDefault(keyUserAdmin, false)
	v.SetDefault(keyOffline, false)
	v.SetDefault(keyWorkdayHours, 8)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTimezone, "")
	v.SetDefault(keyLogLevel, "info")
}

// setPrompted carries values collected by the first-run prompt into the
// file that is about to be written.
func setPrompted(v *viper.Viper, c *Config) {
	if c.Server.URL != "" {
		v.Set(keyServerURL, c.Server.URL)
	}

	if c.Server.Session != "" {
		v.Set(keyServerSession, c.Server.Session)
	}

	if c.User.ID != 0 {
		v.Set(keyUserID, c.User.ID)
	}

	if c.Settings.Offline {
		v.Set(keyOffline, true)
	}
}
