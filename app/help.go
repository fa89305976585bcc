package app

import (
	"fmt"

	"github.com/pterm/pterm"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)

	commands := fmt.Sprintf(
		"%s\n{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
		pterm.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}}"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	keys := fmt.Sprintf(
		"%s\n\t\t%s\n",
		pterm.Yellow("KEYS"),
		keysHelp(),
	)

	return description + usage + version + commands + options + env + keys
}

func envHelp() string {
	return `
HARDMODE_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

HARDMODE_API_URL: base URL of the task backend.

HARDMODE_STORAGE: bolt or sqlite.

HARDMODE_LOG_LEVEL: debug, info, warn or error.

HARDMODE_DISABLE_NOTIFICATION: set to true to turn off desktop notifications.

HARDMODE_ENV: suffix for the config, database and log file names, so that separate setups do not share a session.`
}

func keysHelp() string {
	return `
space, p: start or pause. Pausing a focus session counts against it.
r: restart the current session.
s: switch between focus and break.
t: pick the task to work on.
q, ctrl+c: quit. A running session keeps counting down while hardmode is closed.`
}
