package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/hardmode/internal/apperr"
)

func validConfig() *Config {
	return &Config{
		Focus:   ModeConfig{Message: "Time for a break.", Duration: 25 * time.Minute},
		Break:   ModeConfig{Message: "Ready to focus?", Duration: 5 * time.Minute},
		Storage: StorageConfig{Backend: BackendBolt},
		Remote:  RemoteConfig{Timeout: 10 * time.Second},
		Log:     LogConfig{Level: "info"},
	}
}

func TestValidate(t *testing.T) {
	sound := filepath.Join(t.TempDir(), "bell.ogg")
	require.NoError(t, os.WriteFile(sound, []byte("OggS"), 0o600))

	testCases := []struct {
		name   string
		modify func(c *Config)
		want   error
	}{
		{
			name:   "defaults",
			modify: func(*Config) {},
		},
		{
			name:   "focus too short",
			modify: func(c *Config) { c.Focus.Duration = 500 * time.Millisecond },
			want:   errInvalidDuration,
		},
		{
			name:   "focus too long",
			modify: func(c *Config) { c.Focus.Duration = 13 * time.Hour },
			want:   errInvalidDuration,
		},
		{
			name:   "break as long as focus",
			modify: func(c *Config) { c.Break.Duration = c.Focus.Duration },
			want:   errBreakTooLong,
		},
		{
			name:   "empty message",
			modify: func(c *Config) { c.Break.Message = "  " },
			want:   errEmptyMsg,
		},
		{
			name:   "existing sound",
			modify: func(c *Config) { c.Focus.Sound = sound },
		},
		{
			name:   "unsupported sound",
			modify: func(c *Config) { c.Focus.Sound = "bell.aac" },
			want:   errInvalidSoundFormat,
		},
		{
			name:   "missing sound",
			modify: func(c *Config) { c.Focus.Sound = "/nowhere/bell.ogg" },
			want:   errSoundNotFound,
		},
		{
			name:   "unknown backend",
			modify: func(c *Config) { c.Storage.Backend = "redis" },
			want:   errUnknownBackend,
		},
		{
			name:   "remote url",
			modify: func(c *Config) { c.Remote.URL = "https://tasks.example.com/v1" },
		},
		{
			name:   "remote url without scheme",
			modify: func(c *Config) { c.Remote.URL = "tasks.example.com" },
			want:   errInvalidRemoteURL,
		},
		{
			name: "remote without timeout",
			modify: func(c *Config) {
				c.Remote.URL = "http://localhost:8080"
				c.Remote.Timeout = 0
			},
			want: errInvalidRemoteTimeout,
		},
		{
			name:   "unknown log level",
			modify: func(c *Config) { c.Log.Level = "verbose" },
			want:   errUnknownLogLevel,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := validConfig()
			tc.modify(c)

			err := c.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}
}

func TestParseDuration(t *testing.T) {
	testCases := []struct {
		in   string
		want time.Duration
		ok   bool
	}{
		{"25", 25 * time.Minute, true},
		{"90s", 90 * time.Second, true},
		{"1h30m", 90 * time.Minute, true},
		{"later", 0, false},
	}

	for _, tc := range testCases {
		got, err := parseDuration(tc.in)
		if !tc.ok {
			assert.ErrorIs(t, err, errInvalidDurationFormat, tc.in)
			continue
		}

		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestEnvironmentMap(t *testing.T) {
	c := validConfig()
	c.Notifications.Enabled = true

	opt := withEnvironment(map[string]string{
		"HARDMODE_API_URL":              "http://localhost:1234",
		"HARDMODE_DISABLE_NOTIFICATION": "1",
	})
	require.NoError(t, opt(c))

	assert.Equal(t, "http://localhost:1234", c.Remote.URL)
	assert.False(t, c.Notifications.Enabled)
	assert.Equal(t, "info", c.Log.Level)

	bad := withEnvironment(map[string]string{
		"HARDMODE_DISABLE_NOTIFICATION": "sometimes",
	})
	assert.ErrorIs(t, bad(c), errParseEnv)
}
