// Package dropdown provides accessible dropdown-menu widgets for
// Bubble Tea: a single-select menu, a filterable/autocomplete variant
// and a clearable variant, all backed by one generic state machine.
//
// The widget owns open/closed state, keyboard focus, mouse focus, the
// filter query and the scroll position of the entry list. Entries are
// opaque values inspected only through the Config callbacks. Hosts
// embed a Model in their own model, forward messages to Update, and
// receive SelectedMsg/DismissedMsg notifications through the command
// channel.
//
// Rendering is viewport-aware: only entries near the visible scroll
// region are materialized (see the window package), so lists with tens
// of thousands of entries stay responsive.
package dropdown

import (
	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/kirchner/dropdown-menu-sub000/navigate"
	"github.com/kirchner/dropdown-menu-sub000/window"
)

const (
	defaultMaxVisible = 10
	defaultWidth      = 32
)

type phase int

const (
	phaseClosed phase = iota
	phaseOpenEmpty
	phaseOpen
)

// openData is the state carried only while the list is open.
type openData struct {
	// preventBlur is set between a mouse press on the list and its
	// release, so a blur arriving in between does not close the list
	// under the click.
	preventBlur bool

	// keyboardFocus is the entry ID with logical focus. Always set
	// while open.
	keyboardFocus string

	// mouseFocus is the hovered entry ID, empty when none.
	mouseFocus string

	scrollTop    int
	clientHeight int
}

// Model is the generic dropdown engine. The Simple, Filterable and
// Optional variants are capability configurations of this one type.
type Model[T any] struct {
	id        string
	cfg       Config[T]
	behaviour Behaviour
	keyMap    KeyMap
	view      ViewConfig[T]

	filterable bool
	clearable  bool

	entries  []T // full set, Enter resolves against this
	filtered []T // current query's subset, same order

	selected *T
	phase    phase
	open     openData
	query    string

	// scrollCache is the last measured geometry of the focused entry.
	// It survives close so that reopening can re-derive the scroll
	// offset without a fresh measurement.
	scrollCache *window.ScrollData

	input     textinput.Model
	typeAhead typeAheadState

	focused    bool
	width      int
	maxVisible int

	originX, originY int
	hit              hitArea
}

// NewSimple returns a single-select dropdown with a button control.
// Type-ahead is active when cfg.TypeAhead is set.
func NewSimple[T any](id string, cfg Config[T], entries []T, opts ...Option[T]) *Model[T] {
	return newModel(id, cfg, entries, false, false, opts...)
}

// NewFilterable returns a dropdown with a query textfield that narrows
// the entry list as the user types.
func NewFilterable[T any](id string, cfg Config[T], entries []T, opts ...Option[T]) *Model[T] {
	return newModel(id, cfg, entries, true, false, opts...)
}

// NewOptional returns a single-select dropdown whose selection can be
// cleared again, emitting DismissedMsg.
func NewOptional[T any](id string, cfg Config[T], entries []T, opts ...Option[T]) *Model[T] {
	return newModel(id, cfg, entries, false, true, opts...)
}

func newModel[T any](id string, cfg Config[T], entries []T, filterable, clearable bool, opts ...Option[T]) *Model[T] {
	cfg.applyFallbacks()

	m := &Model[T]{
		id:         id,
		cfg:        cfg,
		behaviour:  DefaultBehaviour(),
		keyMap:     DefaultKeyMap(),
		filterable: filterable,
		clearable:  clearable,
		entries:    entries,
		focused:    true,
		width:      defaultWidth,
		maxVisible: defaultMaxVisible,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.view.applyFallbacks(m)

	if !m.behaviour.HandleHomeAndEnd {
		m.keyMap.Home.SetEnabled(false)
		m.keyMap.End.SetEnabled(false)
	}
	if !m.clearable {
		m.keyMap.Clear.SetEnabled(false)
	}

	if m.filterable {
		// Space and printable characters belong to the query field.
		m.keyMap.Open.SetKeys("enter", "down", "up")

		ti := textinput.New()
		ti.Placeholder = m.view.Placeholder
		ti.SetVirtualCursor(false)
		ti.Focus()
		m.input = ti
	}

	return m
}

// ID returns the widget's base ID.
func (m *Model[T]) ID() string { return m.id }

// Selection returns the current selection, nil when there is none.
func (m *Model[T]) Selection() *T { return m.selected }

// SetSelection replaces the current selection without emitting a
// notification.
func (m *Model[T]) SetSelection(entry T) { m.selected = &entry }

// IsOpen reports whether the entry list is open.
func (m *Model[T]) IsOpen() bool { return m.phase != phaseClosed }

// Query returns the current filter query.
func (m *Model[T]) Query() string { return m.query }

// KeyMap returns the active key bindings.
func (m *Model[T]) KeyMap() KeyMap { return m.keyMap }

// FocusedEntry returns the entry holding keyboard focus.
func (m *Model[T]) FocusedEntry() (T, bool) {
	var zero T
	if m.phase != phaseOpen {
		return zero, false
	}
	_, entry, ok := navigate.Find(m.cfg.UniqueID, m.open.keyboardFocus, m.filtered)
	if !ok {
		return zero, false
	}
	return entry, true
}

// SetPosition tells the widget where it is rendered, for mouse hit
// testing.
func (m *Model[T]) SetPosition(x, y int) {
	m.originX, m.originY = x, y
}

// Focus routes subsequent key events to this instance.
func (m *Model[T]) Focus() tea.Cmd {
	m.focused = true
	return nil
}

// Blur is the textfield-blurred event: it closes the list unless a
// mouse press on the list is in flight.
func (m *Model[T]) Blur() tea.Cmd {
	m.focused = false
	if m.phase == phaseClosed || m.open.preventBlur {
		return nil
	}
	m.close()
	return nil
}

// IsFocused reports whether key events are routed here.
func (m *Model[T]) IsFocused() bool { return m.focused }

// Clear drops the current selection. Only the Optional variant emits
// the dismissal notification.
func (m *Model[T]) Clear() tea.Cmd {
	if m.selected == nil {
		return nil
	}
	m.selected = nil
	if !m.clearable {
		return nil
	}
	return cmdHandler(DismissedMsg{ID: m.id})
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles a message and returns the follow-up commands. Unknown
// messages and unhandled keys are ignored without a state change.
func (m *Model[T]) Update(msg tea.Msg) (*Model[T], tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if !m.focused {
			return m, nil
		}
		return m.handleKeyPress(msg)
	case typeAheadTickMsg:
		if msg.id != m.id {
			return m, nil
		}
		return m, m.handleTypeAheadTick()
	case tea.MouseClickMsg:
		return m.handleMouseClick(msg.Mouse())
	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg.Mouse())
	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg.Mouse())
	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg.Mouse())
	case tea.BlurMsg:
		return m, m.Blur()
	}
	return m, nil
}

func (m *Model[T]) handleKeyPress(msg tea.KeyPressMsg) (*Model[T], tea.Cmd) {
	switch m.phase {
	case phaseClosed:
		return m.handleKeyClosed(msg)
	case phaseOpenEmpty:
		return m.handleKeyOpenEmpty(msg)
	default:
		return m.handleKeyOpen(msg)
	}
}

func (m *Model[T]) handleKeyClosed(msg tea.KeyPressMsg) (*Model[T], tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Clear):
		return m, m.Clear()

	case key.Matches(msg, m.keyMap.Open):
		return m, m.activate(key.Matches(msg, m.keyMap.Up))
	}

	// Typing into the closed control opens the filterable variant and
	// starts the query.
	if m.filterable && msg.Key().Text != "" {
		cmd := m.activate(false)
		var inputCmd tea.Cmd
		m.input, inputCmd = m.input.Update(msg)
		return m, tea.Batch(cmd, inputCmd, m.syncQuery())
	}

	return m, nil
}

func (m *Model[T]) handleKeyOpenEmpty(msg tea.KeyPressMsg) (*Model[T], tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Close), key.Matches(msg, m.keyMap.Select):
		m.close()
		return m, nil
	}

	if m.filterable {
		var inputCmd tea.Cmd
		m.input, inputCmd = m.input.Update(msg)
		return m, tea.Batch(inputCmd, m.syncQuery())
	}

	return m, nil
}

func (m *Model[T]) handleKeyOpen(msg tea.KeyPressMsg) (*Model[T], tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Close):
		m.close()
		return m, nil

	case key.Matches(msg, m.keyMap.Select):
		return m, m.selectFocused()

	case key.Matches(msg, m.keyMap.Up):
		return m, m.moveFocus(-1)

	case key.Matches(msg, m.keyMap.Down):
		return m, m.moveFocus(1)

	case key.Matches(msg, m.keyMap.Home):
		return m, m.focusIndex(0, 0)

	case key.Matches(msg, m.keyMap.End):
		last := len(m.filtered) - 1
		return m, m.focusIndex(last, m.maxScrollTop())

	case key.Matches(msg, m.keyMap.PageUp):
		m.setScrollTop(m.open.scrollTop - m.open.clientHeight)
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.setScrollTop(m.open.scrollTop + m.open.clientHeight)
		return m, nil
	}

	if m.filterable {
		var inputCmd tea.Cmd
		m.input, inputCmd = m.input.Update(msg)
		return m, tea.Batch(inputCmd, m.syncQuery())
	}

	if m.cfg.TypeAhead != nil {
		if text := msg.Key().Text; text != "" {
			return m, m.handleTypeAheadText(text)
		}
	}

	return m, nil
}

// activate opens the list from the closed state. openAtEnd focuses the
// last entry instead of the first, for an ArrowUp-triggered open.
func (m *Model[T]) activate(openAtEnd bool) tea.Cmd {
	m.query = ""
	if m.filterable {
		m.input.SetValue("")
	}
	m.filtered = m.filterEntries("")

	if len(m.filtered) == 0 {
		if m.filterable {
			m.phase = phaseOpenEmpty
			m.open = openData{}
		}
		return nil
	}

	idx := 0
	if openAtEnd {
		idx = len(m.filtered) - 1
	}
	entry := m.filtered[idx]

	m.phase = phaseOpen
	m.open = openData{
		keyboardFocus: m.cfg.UniqueID(entry),
		clientHeight:  m.clientHeight(),
	}
	if openAtEnd {
		m.open.scrollTop = m.maxScrollTop()
	} else {
		m.open.scrollTop = window.Reset(m.scrollCache, true)
		m.open.scrollTop = min(m.open.scrollTop, m.maxScrollTop())
	}

	if m.behaviour.SelectionFollowsFocus {
		m.selected = &entry
		return cmdHandler(SelectedMsg[T]{ID: m.id, Entry: entry})
	}
	return nil
}

// close returns to the closed state, clearing query and focus. The
// current selection is left untouched.
func (m *Model[T]) close() {
	m.phase = phaseClosed
	m.open = openData{}
	m.query = ""
	m.typeAhead.reset()
	if m.filterable {
		m.input.SetValue("")
	}
}

// selectFocused resolves the focused entry against the full,
// unfiltered entry set: Enter should resolve even when the query text
// was altered after focusing.
func (m *Model[T]) selectFocused() tea.Cmd {
	focus := m.open.keyboardFocus
	m.close()

	_, entry, ok := navigate.Find(m.cfg.UniqueID, focus, m.entries)
	if !ok {
		return nil
	}
	m.selected = &entry
	return cmdHandler(SelectedMsg[T]{ID: m.id, Entry: entry})
}

// moveFocus shifts keyboard focus one entry up or down, applying the
// wraparound policy, and keeps the focused entry visible.
func (m *Model[T]) moveFocus(delta int) tea.Cmd {
	if len(m.filtered) == 0 {
		return nil
	}

	var (
		idx     int
		entry   T
		wrapped bool
		ok      bool
	)
	if delta < 0 {
		idx, entry, wrapped, ok = navigate.Previous(m.cfg.UniqueID, m.open.keyboardFocus, m.filtered)
	} else {
		idx, entry, wrapped, ok = navigate.Next(m.cfg.UniqueID, m.open.keyboardFocus, m.filtered)
	}

	switch {
	case !ok:
		// Stale focus, nothing to step from: fall back to the first
		// entry.
		idx, entry = 0, m.filtered[0]
	case wrapped && !m.behaviour.JumpAtEnds:
		// Focus stays put and no scroll command is issued.
		return nil
	}

	m.open.keyboardFocus = m.cfg.UniqueID(entry)

	if wrapped {
		m.scrollCache = nil
		if delta < 0 {
			m.open.scrollTop = m.maxScrollTop()
		} else {
			m.open.scrollTop = 0
		}
	} else if d, measured := window.Measure(m.cfg.EntryHeight, m.filtered, idx, m.open.scrollTop, m.open.clientHeight); measured {
		m.scrollCache = &d
		if top, changed := window.Adjust(d); changed {
			m.open.scrollTop = top
		}
	}

	return m.focusFollowup(entry)
}

// focusIndex jumps focus to a known index with an explicit scroll
// target, for Home/End.
func (m *Model[T]) focusIndex(idx, scrollTop int) tea.Cmd {
	if idx < 0 || idx >= len(m.filtered) {
		return nil
	}
	entry := m.filtered[idx]
	m.open.keyboardFocus = m.cfg.UniqueID(entry)
	m.setScrollTop(scrollTop)
	if d, measured := window.Measure(m.cfg.EntryHeight, m.filtered, idx, m.open.scrollTop, m.open.clientHeight); measured {
		m.scrollCache = &d
	}
	return m.focusFollowup(entry)
}

func (m *Model[T]) focusFollowup(entry T) tea.Cmd {
	if !m.behaviour.SelectionFollowsFocus {
		return nil
	}
	m.selected = &entry
	return cmdHandler(SelectedMsg[T]{ID: m.id, Entry: entry})
}

// SetEntries replaces the full entry set. While open, the filtered
// subset, focus validity and scroll offset are re-derived; the cached
// focus geometry avoids a fresh measurement round-trip.
func (m *Model[T]) SetEntries(entries []T) {
	m.entries = entries
	if m.phase == phaseClosed {
		return
	}

	m.filtered = m.filterEntries(m.query)
	if len(m.filtered) == 0 {
		if m.filterable {
			m.phase = phaseOpenEmpty
			m.open = openData{}
		} else {
			m.close()
		}
		return
	}

	m.phase = phaseOpen
	if _, ok := navigate.IndexOf(m.cfg.UniqueID, m.open.keyboardFocus, m.filtered); !ok {
		m.open.keyboardFocus = m.cfg.UniqueID(m.filtered[0])
	}
	if m.open.mouseFocus != "" {
		if _, ok := navigate.IndexOf(m.cfg.UniqueID, m.open.mouseFocus, m.filtered); !ok {
			m.open.mouseFocus = ""
		}
	}

	m.open.clientHeight = m.clientHeight()
	if m.scrollCache != nil {
		if top, changed := window.Adjust(*m.scrollCache); changed {
			m.open.scrollTop = top
		}
	}
	m.setScrollTop(m.open.scrollTop)
}

// Entries returns the full entry set.
func (m *Model[T]) Entries() []T { return m.entries }

// clientHeight is the list viewport height for the current filtered
// set.
func (m *Model[T]) clientHeight() int {
	total := window.TotalHeight(m.cfg.EntryHeight, m.filtered)
	return max(1, min(m.maxVisible, total))
}

func (m *Model[T]) maxScrollTop() int {
	total := window.TotalHeight(m.cfg.EntryHeight, m.filtered)
	return max(0, total-m.open.clientHeight)
}

// setScrollTop records a scroll position, clamped to the list bounds.
// Scrolling is passive: no focus change, no commands.
func (m *Model[T]) setScrollTop(scrollTop int) {
	m.open.scrollTop = max(0, min(scrollTop, m.maxScrollTop()))
}
