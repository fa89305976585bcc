package config

import (
	"github.com/caarlos0/env/v11"
)

// EnvOptions are the settings that can be overridden from the environment.
type EnvOptions struct {
	APIURL              string `env:"HARDMODE_API_URL"`
	LogLevel            string `env:"HARDMODE_LOG_LEVEL"`
	Storage             string `env:"HARDMODE_STORAGE"`
	DisableNotification bool   `env:"HARDMODE_DISABLE_NOTIFICATION"`
}

// WithEnvConfig returns an Option that applies HARDMODE_* environment
// variables.
func WithEnvConfig() Option {
	return withEnvironment(nil)
}

// withEnvironment reads overrides from environ, or from the process
// environment when environ is nil.
func withEnvironment(environ map[string]string) Option {
	return func(c *Config) error {
		var opts EnvOptions

		if err := env.ParseWithOptions(&opts, env.Options{
			Environment: environ,
		}); err != nil {
			return errParseEnv.Wrap(err)
		}

		applyEnvOptions(c, opts)

		return nil
	}
}

func applyEnvOptions(c *Config, opts EnvOptions) {
	if opts.APIURL != "" {
		c.Remote.URL = opts.APIURL
	}

	if opts.LogLevel != "" {
		c.Log.Level = opts.LogLevel
	}

	if opts.Storage != "" {
		c.Storage.Backend = opts.Storage
	}

	if opts.DisableNotification {
		c.Notifications.Enabled = false
	}
}
