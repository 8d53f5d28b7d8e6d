package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the player screen.
type KeyMap struct {
	Toggle      key.Binding
	SeekBack    key.Binding
	SeekForward key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings for the player screen.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		SeekBack: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "back 5s"),
		),
		SeekForward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "forward 5s"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the short help bindings for the player screen.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.SeekBack, k.SeekForward, k.Quit}
}

// FullHelp returns the full help bindings for the player screen.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Quit},
		{k.SeekBack, k.SeekForward},
	}
}
