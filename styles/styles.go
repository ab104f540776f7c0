// Package styles carries the color theme and lipgloss styles shared by
// the dropdown variants. A package-level current theme keeps every
// widget instance in an application visually consistent while still
// allowing hosts to swap in their own palette.
package styles

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/exp/charmtone"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme is the palette the widget styles are derived from.
type Theme struct {
	Name   string
	IsDark bool

	Primary   color.Color
	Secondary color.Color
	Accent    color.Color

	BgBase    color.Color
	BgSubtle  color.Color
	BgOverlay color.Color

	FgBase     color.Color
	FgMuted    color.Color
	FgSubtle   color.Color
	FgSelected color.Color

	Border      color.Color
	BorderFocus color.Color

	styles *Styles
}

// Styles is the derived lipgloss style set used by the dropdown views.
type Styles struct {
	Base lipgloss.Style

	Text         lipgloss.Style
	TextSelected lipgloss.Style
	Muted        lipgloss.Style

	// Match underlines the characters of an entry that matched the
	// current query.
	Match         lipgloss.Style
	MatchSelected lipgloss.Style

	// Control renders the closed/open control (button or textfield
	// frame); List frames the open entry list.
	Control     lipgloss.Style
	ControlOpen lipgloss.Style
	List        lipgloss.Style

	// EmptyNotice renders the "no matches" row of an open-empty list.
	EmptyNotice lipgloss.Style
}

// S returns the styles derived from the theme, building them on first
// use.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	return &Styles{
		Base: base,

		Text:         base,
		TextSelected: lipgloss.NewStyle().Foreground(t.FgSelected).Background(t.Primary),
		Muted:        lipgloss.NewStyle().Foreground(t.FgMuted),

		Match:         base.Underline(true),
		MatchSelected: lipgloss.NewStyle().Foreground(t.FgSelected).Background(t.Primary).Underline(true),

		Control: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		ControlOpen: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),
		List: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus),

		EmptyNotice: lipgloss.NewStyle().Foreground(t.FgSubtle).Padding(0, 1),
	}
}

// Subtle blends c toward the theme background, for hover and spacer
// shades.
func (t *Theme) Subtle(c color.Color, amount float64) color.Color {
	from, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	to, ok := colorful.MakeColor(t.BgBase)
	if !ok {
		return c
	}
	return from.BlendRgb(to, amount)
}

// NewDefaultTheme returns the stock dark theme.
func NewDefaultTheme() *Theme {
	return &Theme{
		Name:   "default",
		IsDark: true,

		Primary:   charmtone.Charple,
		Secondary: charmtone.Dolly,
		Accent:    charmtone.Zest,

		BgBase:    charmtone.Pepper,
		BgSubtle:  charmtone.Charcoal,
		BgOverlay: charmtone.Iron,

		FgBase:     charmtone.Ash,
		FgMuted:    charmtone.Squid,
		FgSubtle:   charmtone.Oyster,
		FgSelected: charmtone.Salt,

		Border:      charmtone.Charcoal,
		BorderFocus: charmtone.Charple,
	}
}

var currentTheme = NewDefaultTheme()

// CurrentTheme returns the active theme.
func CurrentTheme() *Theme {
	return currentTheme
}

// SetTheme replaces the active theme.
func SetTheme(t *Theme) {
	if t != nil {
		currentTheme = t
	}
}
