package dropdown

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/kirchner/dropdown-menu-sub000/navigate"
	"github.com/kirchner/dropdown-menu-sub000/window"
)

// typeAheadTickInterval is how often a pending buffer is checked for
// decay. The timeout itself comes from Behaviour.TypeAheadTimeout.
const typeAheadTickInterval = 300 * time.Millisecond

// typeAheadState is the timestamped character buffer of the type-ahead
// search. The tick subscription is armed only while the buffer is
// non-empty.
type typeAheadState struct {
	buffer  string
	lastKey time.Time
	ticking bool
}

func (t *typeAheadState) reset() {
	t.buffer = ""
	t.lastKey = time.Time{}
}

// handleTypeAheadText folds a typed character into the buffer and moves
// focus to the first entry, searching forward from the current focus
// and wrapping to the start, whose printable form starts with the
// buffer. A single repeated character cycles through matching entries
// instead.
func (m *Model[T]) handleTypeAheadText(text string) tea.Cmd {
	now := time.Now()
	if !m.typeAhead.lastKey.IsZero() && now.Sub(m.typeAhead.lastKey) > m.behaviour.typeAheadTimeout() {
		m.typeAhead.reset()
	}
	m.typeAhead.buffer += strings.ToLower(text)
	m.typeAhead.lastKey = now

	cmd := m.moveFocusToMatch()

	if !m.typeAhead.ticking {
		m.typeAhead.ticking = true
		return tea.Batch(cmd, m.typeAheadTick())
	}
	return cmd
}

func (m *Model[T]) moveFocusToMatch() tea.Cmd {
	if len(m.filtered) == 0 {
		return nil
	}

	start, ok := navigate.IndexOf(m.cfg.UniqueID, m.open.keyboardFocus, m.filtered)
	if !ok {
		start = 0
	}

	// Repeating one character cycles past the current focus; a longer
	// buffer refines in place.
	offset := 0
	if len(m.typeAhead.buffer) == 1 {
		offset = 1
	}

	for i := range m.filtered {
		idx := (start + offset + i) % len(m.filtered)
		entry := m.filtered[idx]
		printable := strings.ToLower(m.cfg.TypeAhead(entry))
		if !strings.HasPrefix(printable, m.typeAhead.buffer) {
			continue
		}

		m.open.keyboardFocus = m.cfg.UniqueID(entry)
		if d, measured := window.Measure(m.cfg.EntryHeight, m.filtered, idx, m.open.scrollTop, m.open.clientHeight); measured {
			m.scrollCache = &d
			if top, changed := window.Adjust(d); changed {
				m.open.scrollTop = top
			}
		}
		return m.focusFollowup(entry)
	}

	return nil
}

// handleTypeAheadTick expires a stale buffer. The subscription stays
// alive only while a buffer is pending, to avoid idle timer churn.
func (m *Model[T]) handleTypeAheadTick() tea.Cmd {
	if m.phase != phaseOpen || m.typeAhead.buffer == "" {
		m.typeAhead.ticking = false
		m.typeAhead.reset()
		return nil
	}

	if time.Since(m.typeAhead.lastKey) > m.behaviour.typeAheadTimeout() {
		m.typeAhead.reset()
		m.typeAhead.ticking = false
		return nil
	}

	return m.typeAheadTick()
}

func (m *Model[T]) typeAheadTick() tea.Cmd {
	return tea.Tick(typeAheadTickInterval, func(time.Time) tea.Msg {
		return typeAheadTickMsg{id: m.id}
	})
}
