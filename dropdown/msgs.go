package dropdown

import (
	tea "github.com/charmbracelet/bubbletea/v2"
)

// SelectedMsg is delivered through the command channel whenever an
// entry is chosen, by Enter, by mouse click, or by focus movement when
// Behaviour.SelectionFollowsFocus is set. ID is the widget instance the
// notification originates from.
type SelectedMsg[T any] struct {
	ID    string
	Entry T
}

// DismissedMsg is delivered when the Optional variant clears its
// selection.
type DismissedMsg struct {
	ID string
}

// typeAheadTickMsg drives the decay of a pending type-ahead buffer. It
// carries the widget ID so that instances ignore each other's ticks.
type typeAheadTickMsg struct {
	id string
}

// cmdHandler wraps a message into a command.
func cmdHandler(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
