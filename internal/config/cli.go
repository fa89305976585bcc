package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Focus         string
	Break         string
	SessionCmd    string
	APIURL        string
	Task          string
	Storage       string
	DisableNotify bool
	NoColor       bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Focus:         ctx.String("focus"),
			Break:         ctx.String("break"),
			SessionCmd:    ctx.String("session-cmd"),
			APIURL:        ctx.String("api-url"),
			Task:          ctx.String("task"),
			Storage:       ctx.String("storage"),
			DisableNotify: ctx.Bool("disable-notification"),
			NoColor:       ctx.Bool("no-color"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if err := applyCLIDurations(c, opts); err != nil {
		return err
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.APIURL != "" {
		c.Remote.URL = opts.APIURL
	}

	if opts.Storage != "" {
		c.Storage.Backend = opts.Storage
	}

	c.CLI.TaskID = opts.Task
	c.CLI.NoColor = opts.NoColor

	return nil
}

// applyCLIDurations handles parsing and applying duration settings from CLI.
func applyCLIDurations(c *Config, opts CLIOptions) error {
	if opts.Focus != "" {
		d, err := parseDuration(opts.Focus)
		if err != nil {
			return errInvalidCLIDuration.Fmt("focus", opts.Focus)
		}

		c.Focus.Duration = d
	}

	if opts.Break != "" {
		d, err := parseDuration(opts.Break)
		if err != nil {
			return errInvalidCLIDuration.Fmt("break", opts.Break)
		}

		c.Break.Duration = d
	}

	return nil
}
