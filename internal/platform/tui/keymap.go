package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the host's key bindings. Movement keys are read by the game
// through held-key state; they appear here only so the help line shows them.
type KeyMap struct {
	NeuroMove key.Binding
	EvilMove  key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NeuroMove: key.NewBinding(
			key.WithKeys("w", "a", "s", "d"),
			key.WithHelp("wasd", "neuro"),
		),
		EvilMove: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("←↑↓→", "evil"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NeuroMove, k.EvilMove, k.Pause, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NeuroMove, k.EvilMove},
		{k.Pause, k.Restart},
		{k.Help, k.Quit},
	}
}
