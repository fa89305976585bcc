package config

import "github.com/ayoisaiah/hardmode/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Kind:    apperr.KindValidation,
		Message: "config option error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errParseEnv = &apperr.Error{
		Kind:    apperr.KindValidation,
		Message: "reading environment overrides failed",
	}

	errInvalidDurationFormat = &apperr.Error{
		Kind:    apperr.KindValidation,
		Message: "invalid duration format: %s",
	}

	errInvalidCLIDuration = &apperr.Error{
		Kind:    apperr.KindValidation,
		Message: "invalid %s duration: %s",
	}

	errInvalidDuration = &apperr.Error{
		Kind:    apperr.KindValidation,
		Message: "%s duration must be between %v and %v",
	}

	errBreakTooLong = &apperr.Error{
		Kind:    apperr.KindValidation,
		Message: "break duration (%v) must be less than focus duration (%v)",
	}

	errEmptyMsg = &apperr.Error{
		Kind:    apperr.KindValidation,
		Message: "%s message cannot be empty",
	}

	errInvalidSoundFormat = &apperr.Error{
		Kind:    apperr.KindValidation,
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errSoundNotFound = &apperr.Error{
		Kind:    apperr.KindValidation,
		Message: "sound file not found: %s",
	}

	errUnknownBackend = &apperr.Error{
		Kind:    apperr.KindValidation,
		Message: "unknown storage backend %q (must be bolt or sqlite)",
	}

	errInvalidRemoteURL = &apperr.Error{
		Kind:    apperr.KindValidation,
		Message: "remote url must be an absolute http(s) url, got %q",
	}

	errInvalidRemoteTimeout = &apperr.Error{
		Kind:    apperr.KindValidation,
		Message: "remote timeout must be positive, got %v",
	}

	errUnknownLogLevel = &apperr.Error{
		Kind:    apperr.KindValidation,
		Message: "unknown log level %q (must be one of %v)",
	}
)
