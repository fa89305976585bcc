package ui

import (
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/hardmode/internal/session"
)

func Green(a any) string {
	return pterm.Green(a)
}

func Cyan(a any) string {
	return pterm.Cyan(a)
}

func Red(a any) string {
	return pterm.Red(a)
}

func Yellow(a any) string {
	return pterm.Yellow(a)
}

// Mode colours a mode name the same way the timer view does.
func Mode(m session.Mode) string {
	if m == session.Break {
		return Cyan(m)
	}

	return Green(m)
}

// YesNo renders a boolean as a coloured yes or no.
func YesNo(b bool) string {
	if b {
		return Green("yes")
	}

	return Red("no")
}
