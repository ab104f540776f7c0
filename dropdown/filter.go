package dropdown

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/kirchner/dropdown-menu-sub000/navigate"
)

// filterEntries returns the entries matching query, in original order.
// MatchesQuery only decides membership; it never reorders, so the
// windowing invariants hold on the result.
func (m *Model[T]) filterEntries(query string) []T {
	if query == "" {
		return m.entries
	}
	out := make([]T, 0, len(m.entries))
	for _, e := range m.entries {
		if m.cfg.MatchesQuery(query, e) {
			out = append(out, e)
		}
	}
	return out
}

// syncQuery picks up a changed textfield value and recomputes the
// filtered set: an empty result transitions to the open-empty state,
// otherwise focus moves to the first match and the list scrolls to the
// top. Focus IDs pointing at now-filtered-out entries are discarded.
func (m *Model[T]) syncQuery() tea.Cmd {
	query := m.input.Value()
	if query == m.query {
		return nil
	}
	m.query = query

	m.filtered = m.filterEntries(query)
	if len(m.filtered) == 0 {
		m.phase = phaseOpenEmpty
		m.open.keyboardFocus = ""
		m.open.mouseFocus = ""
		return nil
	}

	m.phase = phaseOpen
	first := m.filtered[0]
	m.open.keyboardFocus = m.cfg.UniqueID(first)
	if m.open.mouseFocus != "" {
		if _, ok := navigate.IndexOf(m.cfg.UniqueID, m.open.mouseFocus, m.filtered); !ok {
			m.open.mouseFocus = ""
		}
	}
	m.open.clientHeight = m.clientHeight()
	m.open.scrollTop = 0
	m.scrollCache = nil

	return m.focusFollowup(first)
}
