package config

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/ayoisaiah/hardmode/internal/logging"
)

var (
	// Minimum and maximum duration constraints.
	minSessionDuration = 1 * time.Second
	maxSessionDuration = 720 * time.Minute // 12 hours

	validSoundExts = []string{".mp3", ".ogg", ".flac", ".wav"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := validateMode(c.Focus, "focus"); err != nil {
		return err
	}

	if err := validateMode(c.Break, "break"); err != nil {
		return err
	}

	if c.Break.Duration >= c.Focus.Duration {
		return errBreakTooLong.Fmt(c.Break.Duration, c.Focus.Duration)
	}

	if err := c.validateStorage(); err != nil {
		return err
	}

	if err := c.validateRemote(); err != nil {
		return err
	}

	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return errUnknownLogLevel.Fmt(c.Log.Level, logging.Levels)
	}

	return nil
}

func validateMode(mc ModeConfig, name string) error {
	if mc.Duration < minSessionDuration || mc.Duration > maxSessionDuration {
		return errInvalidDuration.Fmt(
			name,
			minSessionDuration,
			maxSessionDuration,
		)
	}

	if strings.TrimSpace(mc.Message) == "" {
		return errEmptyMsg.Fmt(name)
	}

	if mc.Sound != "" {
		return validateSound(mc.Sound)
	}

	return nil
}

func validateSound(sound string) error {
	ext := strings.ToLower(filepath.Ext(sound))

	if !slices.Contains(validSoundExts, ext) {
		return errInvalidSoundFormat.Fmt(sound)
	}

	_, err := os.Stat(sound)
	if errors.Is(err, os.ErrNotExist) {
		return errSoundNotFound.Fmt(sound)
	}

	return nil
}

func (c *Config) validateStorage() error {
	switch c.Storage.Backend {
	case BackendBolt, BackendSQLite:
		return nil
	default:
		return errUnknownBackend.Fmt(c.Storage.Backend)
	}
}

func (c *Config) validateRemote() error {
	if c.Remote.URL == "" {
		return nil
	}

	u, err := url.Parse(c.Remote.URL)
	if err != nil || u.Host == "" ||
		(u.Scheme != "http" && u.Scheme != "https") {
		return errInvalidRemoteURL.Fmt(c.Remote.URL)
	}

	if c.Remote.Timeout <= 0 {
		return errInvalidRemoteTimeout.Fmt(c.Remote.Timeout)
	}

	return nil
}
