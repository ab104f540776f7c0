package tui

import (
	"github.com/charmbracelet/bubbles/v2/key"

	"github.com/kirchner/dropdown-menu-sub000/dropdown"
)

type KeyMap struct {
	Next,
	Prev,
	Help,
	Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next widget"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous widget"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// helpKeys merges the application bindings with the active widget's,
// for the help bar.
type helpKeys struct {
	app    KeyMap
	widget dropdown.KeyMap
}

// ShortHelp implements help.KeyMap.
func (h helpKeys) ShortHelp() []key.Binding {
	return append(h.widget.ShortHelp(), h.app.Next, h.app.Quit)
}

// FullHelp implements help.KeyMap.
func (h helpKeys) FullHelp() [][]key.Binding {
	return append(h.widget.FullHelp(), []key.Binding{
		h.app.Next, h.app.Prev, h.app.Help, h.app.Quit,
	})
}
