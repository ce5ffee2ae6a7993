package config

import "github.com/chrono-hq/chrono/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Name:    "ConfigError",
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Name:    "ConfigError",
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Name:    "ConfigError",
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Name:    "ConfigError",
		Message: "writing default config failed",
	}

	errPrompt = &apperr.Error{
		Name:    "ConfigError",
		Message: "first-run prompt failed",
	}

	errInvalidServerURL = &apperr.Error{
		Name:    "ConfigError",
		Message: "server url must be an absolute http or https url, got %q",
	}

	errInvalidTimeout = &apperr.Error{
		Name:    "ConfigError",
		Message: "server timeout must be between %v and %v",
	}

	errInvalidWorkday = &apperr.Error{
		Name:    "ConfigError",
		Message: "workday hours must be between %v and %v",
	}

	errInvalidLogLevel = &apperr.Error{
		Name:    "ConfigError",
		Message: "unknown log level %q (use debug, info, warn or error)",
	}

	errInvalidTimezone = &apperr.Error{
		Name:    "ConfigError",
		Message: "unknown timezone %q",
	}

	errInvalidRange = &apperr.Error{
		Name:    "InvalidDate",
		Message: "invalid --%s date",
	}

	errRangeOrder = &apperr.Error{
		Name:    "InvalidDate",
		Message: "range start %s is after range end %s",
	}
)
