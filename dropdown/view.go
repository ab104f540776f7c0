package dropdown

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/kirchner/dropdown-menu-sub000/navigate"
	"github.com/kirchner/dropdown-menu-sub000/styles"
	"github.com/kirchner/dropdown-menu-sub000/window"
)

// EntryState describes one entry to the entry renderer.
type EntryState struct {
	Selected        bool
	KeyboardFocused bool
	MouseFocused    bool

	// Query is the current filter query, for match highlighting.
	Query string
}

// ViewConfig supplies the consumer-facing renderers. Renderers return
// plain strings; a string cannot carry event handlers, so consumer
// markup can never take over the widget's interaction handling.
//
// A custom Entry renderer must produce exactly Config.EntryHeight lines
// per entry, since the windowing engine trusts those heights.
type ViewConfig[T any] struct {
	// Container wraps the whole widget. Nil means no extra styling.
	Container *lipgloss.Style

	// Control renders the closed/open control given the current
	// selection. Nil means the default button or textfield frame.
	Control func(selection *T, open bool) string

	// List frames the open entry list. Nil means the themed default.
	List *lipgloss.Style

	// Entry renders a single entry row. Nil means the themed default
	// with match highlighting.
	Entry func(state EntryState, entry T) string

	// Placeholder shows in the control while nothing is selected.
	Placeholder string

	// EmptyNotice is the row shown when a query matches nothing.
	EmptyNotice string
}

func (v *ViewConfig[T]) applyFallbacks(m *Model[T]) {
	if v.Placeholder == "" {
		v.Placeholder = "Select…"
	}
	if v.EmptyNotice == "" {
		v.EmptyNotice = "no matches"
	}
	if v.Control == nil {
		v.Control = m.defaultControl
	}
	if v.Entry == nil {
		v.Entry = m.defaultEntry
	}
}

// View renders the widget. Only entries inside the windowing band are
// materialized; the layout is recorded for mouse hit testing.
func (m *Model[T]) View() string {
	control := m.view.Control(m.selected, m.IsOpen())
	controlWidth := lipgloss.Width(control)
	controlHeight := lipgloss.Height(control)

	if m.phase == phaseClosed {
		m.hit = hitArea{
			valid:         true,
			controlWidth:  controlWidth,
			controlHeight: controlHeight,
		}
		return m.wrapContainer(control)
	}

	t := styles.CurrentTheme()
	listStyle := t.S().List
	if m.view.List != nil {
		listStyle = *m.view.List
	}
	contentWidth := max(1, m.width-listStyle.GetHorizontalFrameSize())

	var content string
	var contentHeight int
	if m.phase == phaseOpenEmpty {
		content = t.S().EmptyNotice.Width(contentWidth).Render(m.view.EmptyNotice)
		contentHeight = lipgloss.Height(content)
	} else {
		content = m.renderEntries(contentWidth)
		contentHeight = m.open.clientHeight
	}

	list := listStyle.Width(contentWidth).Render(content)

	m.hit = hitArea{
		valid:         true,
		controlWidth:  controlWidth,
		controlHeight: controlHeight,
		listTop: controlHeight + listStyle.GetMarginTop() +
			listStyle.GetBorderTopSize() + listStyle.GetPaddingTop(),
		listLeft: listStyle.GetMarginLeft() +
			listStyle.GetBorderLeftSize() + listStyle.GetPaddingLeft(),
		listWidth:  contentWidth,
		listHeight: contentHeight,
	}

	return m.wrapContainer(lipgloss.JoinVertical(lipgloss.Left, control, list))
}

// Cursor exposes the query textfield's cursor while it is accepting
// input, in screen coordinates when SetPosition was called.
func (m *Model[T]) Cursor() *tea.Cursor {
	if !m.filterable || m.phase == phaseClosed {
		return nil
	}
	c := m.input.Cursor()
	if c == nil {
		return nil
	}
	// Offset past the control border and padding.
	c.X += m.originX + 2
	c.Y += m.originY + 1
	return c
}

func (m *Model[T]) wrapContainer(s string) string {
	if m.view.Container == nil {
		return s
	}
	return m.view.Container.Render(s)
}

// renderEntries materializes the windowed subset of the filtered list
// and slices the viewport out of it. Entries collapsed into spacers
// are never rendered.
func (m *Model[T]) renderEntries(width int) string {
	r := window.Compute(
		m.cfg.EntryHeight,
		m.open.scrollTop,
		m.open.clientHeight,
		m.behaviour.overscan(),
		m.keyboardFocusIndex(),
		m.filtered,
	)

	// Virtual line where the visible band starts. The focus carve-out
	// bands sit outside the viewport, so only Visible contributes
	// on-screen lines.
	bandStart := r.SpaceAboveFirst +
		window.TotalHeight(m.cfg.EntryHeight, r.EntriesAbove) +
		r.SpaceAboveSecond

	lines := make([]string, 0, window.TotalHeight(m.cfg.EntryHeight, r.Visible))
	for _, e := range r.Visible {
		lines = append(lines, strings.Split(m.view.Entry(m.entryState(e), e), "\n")...)
	}

	start := min(max(0, m.open.scrollTop-bandStart), len(lines))
	end := min(len(lines), start+m.open.clientHeight)
	visible := lines[start:end]

	for len(visible) < m.open.clientHeight {
		visible = append(visible, "")
	}
	return strings.Join(visible, "\n")
}

func (m *Model[T]) keyboardFocusIndex() int {
	idx, ok := navigate.IndexOf(m.cfg.UniqueID, m.open.keyboardFocus, m.filtered)
	if !ok {
		return window.NoFocus
	}
	return idx
}

func (m *Model[T]) entryState(entry T) EntryState {
	id := m.cfg.UniqueID(entry)
	return EntryState{
		Selected:        m.selected != nil && m.cfg.UniqueID(*m.selected) == id,
		KeyboardFocused: id == m.open.keyboardFocus,
		MouseFocused:    id == m.open.mouseFocus,
		Query:           m.query,
	}
}

func (m *Model[T]) defaultControl(selection *T, open bool) string {
	t := styles.CurrentTheme()

	style := t.S().Control
	if open {
		style = t.S().ControlOpen
	}
	contentWidth := max(1, m.width-4) // border and padding

	if m.filterable && open {
		m.input.SetWidth(contentWidth)
		return style.Width(contentWidth).Render(m.input.View())
	}

	label := m.view.Placeholder
	labelStyle := t.S().Muted
	if selection != nil {
		label = m.cfg.EntryText(*selection)
		labelStyle = t.S().Text
	}

	indicator := "▾"
	if open {
		indicator = "▴"
	}

	labelWidth := max(1, contentWidth-2)
	label = ansi.Truncate(label, labelWidth, "…")
	return style.Width(contentWidth).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			labelStyle.Width(labelWidth+1).Render(label),
			t.S().Muted.Render(indicator),
		),
	)
}

func (m *Model[T]) defaultEntry(state EntryState, entry T) string {
	t := styles.CurrentTheme()
	width := max(1, m.width-2)

	textStyle := t.S().Text
	matchStyle := t.S().Match
	rowStyle := t.S().Base.Width(width).Padding(0, 1)

	switch {
	case state.KeyboardFocused:
		textStyle = t.S().TextSelected
		matchStyle = t.S().MatchSelected
		rowStyle = rowStyle.Background(t.Primary)
	case state.MouseFocused:
		rowStyle = rowStyle.Background(t.Subtle(t.Primary, 0.7))
	}

	marker := "  "
	if state.Selected {
		marker = "✓ "
	}

	textWidth := max(1, width-2-lipgloss.Width(marker))
	truncated := ansi.Truncate(m.cfg.EntryText(entry), textWidth, "…")

	text := textStyle.Render(truncated)
	if state.Query != "" {
		if indexes := matchIndexes(state.Query, truncated); len(indexes) > 0 {
			var ranges []lipgloss.Range
			for _, rng := range matchedRanges(indexes) {
				// Match indexes are byte positions; StyleRanges wants
				// visible character positions.
				start, stop := bytePosToVisibleCharPos(truncated, rng)
				ranges = append(ranges, lipgloss.NewRange(start, stop+1, matchStyle))
			}
			text = lipgloss.StyleRanges(text, ranges...)
		}
	}

	return rowStyle.Render(marker + text)
}
