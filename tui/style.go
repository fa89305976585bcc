package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/hardmode/internal/session"
)

const (
	padding  = 2
	maxWidth = 80
)

type style struct {
	base      lipgloss.Style
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
	warning   lipgloss.Style
	modes     map[session.Mode]lipgloss.Style
}

func newStyle() style {
	mode := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000")).
			Background(lipgloss.Color(color)).
			Padding(0, 1).
			MarginRight(1)
	}

	return style{
		base:      lipgloss.NewStyle().Padding(1, padding),
		main:      lipgloss.NewStyle().Bold(true),
		secondary: lipgloss.NewStyle().Foreground(lipgloss.Color("#999")),
		hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("#666")),
		warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("#E0A526")),
		modes: map[session.Mode]lipgloss.Style{
			session.Focus: mode("#B0DB43"),
			session.Break: mode("#12EAEA"),
		},
	}
}
