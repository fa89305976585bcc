package config

import (
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
██╗  ██╗ █████╗ ██████╗ ██████╗ ███╗   ███╗ ██████╗ ██████╗ ███████╗
██║  ██║██╔══██╗██╔══██╗██╔══██╗████╗ ████║██╔═══██╗██╔══██╗██╔════╝
███████║███████║██████╔╝██║  ██║██╔████╔██║██║   ██║██║  ██║█████╗
██╔══██║██╔══██║██╔══██╗██║  ██║██║╚██╔╝██║██║   ██║██║  ██║██╔══╝
██║  ██║██║  ██║██║  ██║██████╔╝██║ ╚═╝ ██║╚██████╔╝██████╔╝███████╗
╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝ ╚═╝     ╚═╝ ╚═════╝ ╚═════╝ ╚══════╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	RemoteURL     string
	FocusDuration int
	BreakDuration int
}

// WithPromptConfig returns an Option that asks for the basic settings when
// no config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return err
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure hardmode for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'hardmode edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Focus session length").
				Options(
					huh.NewOption("25 minutes", 25).Selected(true),
					huh.NewOption("35 minutes", 35),
					huh.NewOption("50 minutes", 50),
					huh.NewOption("60 minutes", 60),
					huh.NewOption("90 minutes", 90),
				).
				Value(&opts.FocusDuration),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Break length").
				Options(
					huh.NewOption("5 minutes", 5).Selected(true),
					huh.NewOption("10 minutes", 10),
					huh.NewOption("15 minutes", 15),
					huh.NewOption("20 minutes", 20),
				).
				Value(&opts.BreakDuration),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Task backend URL").
				Description("Leave empty to keep completed sessions local").
				Placeholder("http://localhost:8080").
				Value(&opts.RemoteURL),
		),
	)

	if err := form.Run(); err != nil {
		return opts, err
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Focus.Duration = time.Duration(opts.FocusDuration) * time.Minute
	c.Break.Duration = time.Duration(opts.BreakDuration) * time.Minute
	c.Remote.URL = opts.RemoteURL
}
