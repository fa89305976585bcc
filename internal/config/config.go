// Package config assembles hardmode's settings from the config file, the
// environment and the command line
package config

import (
	"io"
	"os"
	"time"

	"github.com/ayoisaiah/hardmode/internal/session"
)

type (
	// Config holds all configuration settings
	Config struct {
		Focus         ModeConfig         `mapstructure:"focus"`
		Break         ModeConfig         `mapstructure:"break"`
		Remote        RemoteConfig       `mapstructure:"remote"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Storage       StorageConfig      `mapstructure:"storage"`
		Log           LogConfig          `mapstructure:"log"`
		CLI           CLIConfig          `mapstructure:"-"`
		PathToConfig  string             `mapstructure:"-"`
		Notifications NotificationConfig `mapstructure:"notifications"`
	}

	// ModeConfig holds the settings of one interval kind. Message and Sound
	// are used when an interval of this kind ends.
	ModeConfig struct {
		Message  string        `mapstructure:"message"`
		Sound    string        `mapstructure:"sound"`
		Duration time.Duration `mapstructure:"duration"`
	}

	// SettingsConfig holds general behaviour settings
	SettingsConfig struct {
		Cmd            string `mapstructure:"cmd"`
		TwentyFourHour bool   `mapstructure:"24hr_clock"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// StorageConfig selects where the session state is kept
	StorageConfig struct {
		Backend string `mapstructure:"backend"`
	}

	// RemoteConfig points to the task backend. An empty URL disables syncing.
	RemoteConfig struct {
		URL     string        `mapstructure:"url"`
		Timeout time.Duration `mapstructure:"timeout"`
	}

	// LogConfig holds logging settings
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// CLIConfig holds values that only come from the command line
	CLIConfig struct {
		TaskID  string
		NoColor bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.1.0"

const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
)

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
		return nil, err
	}

	return cfg, nil
}

// Durations returns the interval lengths.
func (c *Config) Durations() session.Durations {
	return session.Durations{
		Focus: c.Focus.Duration,
		Break: c.Break.Duration,
	}
}

// Messages returns the notification text per ended mode.
func (c *Config) Messages() map[session.Mode]string {
	return map[session.Mode]string{
		session.Focus: c.Focus.Message,
		session.Break: c.Break.Message,
	}
}

// Sounds returns the alert sound per ended mode.
func (c *Config) Sounds() map[session.Mode]string {
	return map[session.Mode]string{
		session.Focus: c.Focus.Sound,
		session.Break: c.Break.Sound,
	}
}
