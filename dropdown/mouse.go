package dropdown

import (
	tea "github.com/charmbracelet/bubbletea/v2"
)

// hitArea is the layout recorded by the last View call, used to map
// absolute mouse coordinates to the control and to entry rows.
type hitArea struct {
	valid         bool
	controlWidth  int
	controlHeight int

	// listTop/listLeft are the offsets of the first list content cell
	// relative to the widget origin; listWidth/listHeight span the
	// content area inside the list frame.
	listTop    int
	listLeft   int
	listWidth  int
	listHeight int
}

func (h hitArea) inControl(x, y int) bool {
	return h.valid &&
		y >= 0 && y < h.controlHeight &&
		x >= 0 && x < h.controlWidth
}

func (h hitArea) inList(x, y int) bool {
	return h.valid &&
		y >= h.listTop && y < h.listTop+h.listHeight &&
		x >= h.listLeft && x < h.listLeft+h.listWidth
}

// entryAtLine maps a virtual list line to the entry covering it.
func (m *Model[T]) entryAtLine(line int) (int, bool) {
	if line < 0 {
		return 0, false
	}
	top := 0
	for i, e := range m.filtered {
		bottom := top + m.cfg.EntryHeight(e)
		if line < bottom {
			return i, true
		}
		top = bottom
	}
	return 0, false
}

func (m *Model[T]) handleMouseClick(mouse tea.Mouse) (*Model[T], tea.Cmd) {
	if mouse.Button != tea.MouseLeft {
		return m, nil
	}
	x, y := mouse.X-m.originX, mouse.Y-m.originY

	switch m.phase {
	case phaseClosed:
		if m.hit.inControl(x, y) {
			return m, m.activate(false)
		}

	default:
		if m.hit.inList(x, y) {
			// Guard against a blur firing before the click completes.
			m.open.preventBlur = true
			return m, nil
		}
		if m.hit.inControl(x, y) {
			m.close()
		}
	}
	return m, nil
}

func (m *Model[T]) handleMouseRelease(mouse tea.Mouse) (*Model[T], tea.Cmd) {
	if m.phase == phaseClosed {
		return m, nil
	}
	m.open.preventBlur = false

	if mouse.Button != tea.MouseLeft || m.phase != phaseOpen {
		return m, nil
	}

	x, y := mouse.X-m.originX, mouse.Y-m.originY
	if !m.hit.inList(x, y) {
		return m, nil
	}

	idx, ok := m.entryAtLine(m.open.scrollTop + y - m.hit.listTop)
	if !ok {
		return m, nil
	}
	entry := m.filtered[idx]
	m.selected = &entry

	if m.behaviour.CloseAfterMouseSelection {
		m.close()
	} else {
		id := m.cfg.UniqueID(entry)
		m.open.keyboardFocus = id
		m.open.mouseFocus = id
	}
	return m, cmdHandler(SelectedMsg[T]{ID: m.id, Entry: entry})
}

func (m *Model[T]) handleMouseMotion(mouse tea.Mouse) (*Model[T], tea.Cmd) {
	if m.phase != phaseOpen {
		return m, nil
	}

	x, y := mouse.X-m.originX, mouse.Y-m.originY
	if !m.hit.inList(x, y) {
		m.open.mouseFocus = ""
		return m, nil
	}

	idx, ok := m.entryAtLine(m.open.scrollTop + y - m.hit.listTop)
	if !ok {
		m.open.mouseFocus = ""
		return m, nil
	}

	id := m.cfg.UniqueID(m.filtered[idx])
	if id == m.open.mouseFocus {
		return m, nil
	}
	m.open.mouseFocus = id
	if !m.behaviour.SeparateFocus {
		m.open.keyboardFocus = id
	}
	return m, nil
}

// handleMouseWheel scrolls the open list. Scrolling is passive: it
// records the new offset for the next windowing computation and issues
// no commands.
func (m *Model[T]) handleMouseWheel(mouse tea.Mouse) (*Model[T], tea.Cmd) {
	if m.phase != phaseOpen {
		return m, nil
	}

	const wheelDelta = 3
	switch mouse.Button {
	case tea.MouseWheelUp:
		m.setScrollTop(m.open.scrollTop - wheelDelta)
	case tea.MouseWheelDown:
		m.setScrollTop(m.open.scrollTop + wheelDelta)
	}
	return m, nil
}
