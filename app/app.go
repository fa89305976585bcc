package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/hardmode/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the hardmode app instance.
func Get() *cli.App {
	hardmodeApp := &cli.App{
		Name: "hardmode",
		Usage: `
		Hardmode is a focus timer that keeps you honest. Pauses count against the
		session, changing tasks mid-session abandons it, and every finished
		session asks for a short review before the break can be skipped.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "status",
				Usage:  "Print the state of the current session",
				Action: statusAction,
				Flags:  []cli.Flag{storageFlag},
			},
			{
				Name:   "reset",
				Usage:  "Discard the stored session so the next start is a fresh one",
				Action: resetAction,
				Flags:  []cli.Flag{storageFlag},
			},
			{
				Name:   "tasks",
				Usage:  "List today's tasks from the backend",
				Action: tasksAction,
				Flags:  []cli.Flag{apiURLFlag, taskFlag},
			},
		},
		Flags: []cli.Flag{
			taskFlag,
			focusFlag,
			breakFlag,
			disableNotificationFlag,
			sessionCmdFlag,
			apiURLFlag,
			storageFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return hardmodeApp
}
