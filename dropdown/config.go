package dropdown

import (
	"fmt"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/kirchner/dropdown-menu-sub000/window"
)

// Config holds the callbacks through which the widget inspects the
// otherwise opaque entry values. UniqueID is required; the remaining
// callbacks have sensible fallbacks.
type Config[T any] struct {
	// UniqueID returns the identity of an entry. It must be unique and
	// stable within a render pass; focus and selection are tracked by
	// these strings, never by index.
	UniqueID func(T) string

	// EntryText returns the printable form of an entry, used by the
	// default renderers and by type-ahead. Falls back to fmt.Sprint.
	EntryText func(T) string

	// MatchesQuery reports whether an entry matches a filter query.
	// Nil means fuzzy matching over EntryText.
	MatchesQuery func(query string, entry T) bool

	// EntryHeight returns an entry's height in lines for the windowing
	// engine. Nil means one line per entry.
	EntryHeight func(T) int

	// TypeAhead returns the string an entry is matched against while
	// type-ahead is collecting characters. Nil disables type-ahead.
	TypeAhead func(T) string
}

func (c *Config[T]) applyFallbacks() {
	if c.EntryText == nil {
		c.EntryText = func(e T) string { return fmt.Sprint(e) }
	}
	if c.MatchesQuery == nil {
		text := c.EntryText
		c.MatchesQuery = func(query string, entry T) bool {
			if query == "" {
				return true
			}
			return len(fuzzy.Find(strings.ToLower(query), []string{strings.ToLower(text(entry))})) > 0
		}
	}
	if c.EntryHeight == nil {
		c.EntryHeight = func(T) int { return 1 }
	}
}

// Behaviour tunes how a widget instance reacts to input. It is fixed
// for the lifetime of the instance.
type Behaviour struct {
	// JumpAtEnds wraps keyboard focus around the list boundaries.
	JumpAtEnds bool

	// CloseAfterMouseSelection closes the list after an entry click.
	// When false the list stays open with focus on the clicked entry.
	CloseAfterMouseSelection bool

	// SeparateFocus keeps mouse hover from moving keyboard focus.
	SeparateFocus bool

	// SelectionFollowsFocus emits a selection notification on every
	// focus movement, not only on Enter.
	SelectionFollowsFocus bool

	// HandleHomeAndEnd jumps focus to the first/last entry on Home/End.
	HandleHomeAndEnd bool

	// Overscan is the windowing band extension in lines beyond both
	// viewport edges. Zero means window.DefaultOverscan.
	Overscan int

	// TypeAheadTimeout resets the type-ahead buffer when no character
	// arrived for this long. Zero means one second.
	TypeAheadTimeout time.Duration
}

func DefaultBehaviour() Behaviour {
	return Behaviour{
		JumpAtEnds:               true,
		CloseAfterMouseSelection: true,
		SeparateFocus:            false,
		SelectionFollowsFocus:    false,
		HandleHomeAndEnd:         true,
		Overscan:                 window.DefaultOverscan,
		TypeAheadTimeout:         time.Second,
	}
}

func (b Behaviour) overscan() int {
	if b.Overscan <= 0 {
		return window.DefaultOverscan
	}
	return b.Overscan
}

func (b Behaviour) typeAheadTimeout() time.Duration {
	if b.TypeAheadTimeout <= 0 {
		return time.Second
	}
	return b.TypeAheadTimeout
}

// Option configures a widget instance.
type Option[T any] func(*Model[T])

// WithBehaviour replaces the default behaviour set.
func WithBehaviour[T any](b Behaviour) Option[T] {
	return func(m *Model[T]) {
		m.behaviour = b
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap[T any](k KeyMap) Option[T] {
	return func(m *Model[T]) {
		m.keyMap = k
	}
}

// WithViewConfig replaces the default renderers.
func WithViewConfig[T any](v ViewConfig[T]) Option[T] {
	return func(m *Model[T]) {
		m.view = v
	}
}

// WithMaxVisible caps the height of the open list viewport, in lines.
func WithMaxVisible[T any](lines int) Option[T] {
	return func(m *Model[T]) {
		if lines > 0 {
			m.maxVisible = lines
		}
	}
}

// WithWidth sets the widget width, in cells.
func WithWidth[T any](width int) Option[T] {
	return func(m *Model[T]) {
		m.width = width
	}
}

// WithSelection sets the initial selection.
func WithSelection[T any](entry T) Option[T] {
	return func(m *Model[T]) {
		m.selected = &entry
	}
}
