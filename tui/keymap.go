package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	reset      key.Binding
	switchMode key.Binding
	pickTask   key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "start/pause"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	switchMode: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "focus/break"),
	),
	pickTask: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "task"),
	),
	quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
}
