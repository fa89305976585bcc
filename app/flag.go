package app

import "github.com/urfave/cli/v2"

var (
	taskFlag = &cli.StringFlag{
		Name:    "task",
		Aliases: []string{"t"},
		Usage:   "ID of the task to focus on. Changing it mid-session abandons the running focus session",
	}

	focusFlag = &cli.StringFlag{
		Name:    "focus",
		Aliases: []string{"f"},
		Usage:   "Focus duration, e.g. 25m or 25 (default: 25m)",
	}

	breakFlag = &cli.StringFlag{
		Name:    "break",
		Aliases: []string{"b"},
		Usage:   "Break duration, e.g. 5m or 5 (default: 5m)",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session ends",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session. HARDMODE_MODE holds the mode that ended",
	}

	apiURLFlag = &cli.StringFlag{
		Name:  "api-url",
		Usage: "Base URL of the task backend. Leave empty to keep completed sessions local",
	}

	storageFlag = &cli.StringFlag{
		Name:  "storage",
		Usage: "Where the session state is kept: bolt or sqlite (default: bolt)",
	}
)
