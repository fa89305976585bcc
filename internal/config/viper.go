package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

const (
	keyFocusDuration        = "focus.duration"
	keyFocusMessage         = "focus.message"
	keyFocusSound           = "focus.sound"
	keyBreakDuration        = "break.duration"
	keyBreakMessage         = "break.message"
	keyBreakSound           = "break.sound"
	keyNotificationsEnabled = "notifications.enabled"
	keySessionCmd           = "settings.cmd"
	keyTwentyFourHour       = "settings.24hr_clock"
	keyStorageBackend       = "storage.backend"
	keyRemoteURL            = "remote.url"
	keyRemoteTimeout        = "remote.timeout"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing the defaults there first if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		c.PathToConfig = configPath

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper registers the defaults. Values already set by an earlier option,
// such as the first run prompt, take their place.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyFocusDuration, durationDefault(c.Focus.Duration, "25m"))
	v.SetDefault(keyFocusMessage, "Time for a break.")
	v.SetDefault(keyFocusSound, "")
	v.SetDefault(keyBreakDuration, durationDefault(c.Break.Duration, "5m"))
	v.SetDefault(keyBreakMessage, "Ready to focus?")
	v.SetDefault(keyBreakSound, "")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyStorageBackend, BackendBolt)
	v.SetDefault(keyRemoteURL, c.Remote.URL)
	v.SetDefault(keyRemoteTimeout, "10s")
	v.SetDefault(keyLogLevel, "info")
}

func durationDefault(d time.Duration, fallback string) string {
	if d == 0 {
		return fallback
	}

	return d.String()
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	path := c.PathToConfig

	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	c.PathToConfig = path

	return nil
}

// parseDuration accepts Go duration strings and bare minute counts.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	mins, err := time.ParseDuration(s + "m")
	if err != nil {
		return 0, errInvalidDurationFormat.Fmt(s)
	}

	return mins, nil
}
