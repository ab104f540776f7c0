// Package tui is the showcase application for the dropdown widgets: a
// required picker, a filterable search over a very large entry set and
// a clearable picker, side by side.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/kirchner/dropdown-menu-sub000/dropdown"
	"github.com/kirchner/dropdown-menu-sub000/styles"
)

const (
	marginLeft  = 2
	columnGap   = 3
	widgetTop   = 3
	fruitWidth  = 30
	searchWidth = 44
)

type entry struct {
	id    string
	label string
}

func entryConfig() dropdown.Config[entry] {
	return dropdown.Config[entry]{
		UniqueID:  func(e entry) string { return e.id },
		EntryText: func(e entry) string { return e.label },
		TypeAhead: func(e entry) string { return e.label },
	}
}

var fruitNames = []string{
	"Apple", "Apricot", "Banana", "Blackberry", "Blueberry", "Cherry",
	"Date", "Elderberry", "Fig", "Grape", "Grapefruit", "Kiwi", "Lemon",
	"Lime", "Mango", "Nectarine", "Orange", "Papaya", "Peach", "Pear",
	"Pineapple", "Plum", "Quince", "Raspberry", "Strawberry", "Watermelon",
}

func fruitEntries() []entry {
	out := make([]entry, len(fruitNames))
	for i, name := range fruitNames {
		out[i] = entry{id: uuid.NewString(), label: name}
	}
	return out
}

func numberedEntries(n int) []entry {
	out := make([]entry, n)
	for i := range out {
		out[i] = entry{id: fmt.Sprintf("entry-%d", i), label: fmt.Sprintf("Entry %d", i)}
	}
	return out
}

// Model is the demo application root.
type Model struct {
	width, height int

	widgets []*dropdown.Model[entry]
	titles  []string
	active  int

	keyMap KeyMap
	help   help.Model
	status string
}

// New builds the demo with searchable entries in the middle column.
func New(searchEntries int) *Model {
	cfg := entryConfig()

	simple := dropdown.NewSimple("fruit", cfg, fruitEntries(),
		dropdown.WithWidth[entry](fruitWidth))
	search := dropdown.NewFilterable("search", cfg, numberedEntries(searchEntries),
		dropdown.WithWidth[entry](searchWidth),
		dropdown.WithMaxVisible[entry](12))
	optional := dropdown.NewOptional("topping", cfg, fruitEntries(),
		dropdown.WithWidth[entry](fruitWidth))

	m := &Model{
		widgets: []*dropdown.Model[entry]{simple, search, optional},
		titles: []string{
			"Fruit",
			fmt.Sprintf("Search (%d entries)", searchEntries),
			"Topping (optional)",
		},
		keyMap: DefaultKeyMap(),
		help:   help.New(),
		status: "pick something",
	}

	x := marginLeft
	for _, w := range m.widgets {
		w.SetPosition(x, widgetTop)
		w.Blur()
		x += widgetWidth(w) + columnGap
	}
	m.widgets[0].Focus()
	return m
}

func widgetWidth(w *dropdown.Model[entry]) int {
	if w.ID() == "search" {
		return searchWidth
	}
	return fruitWidth
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case dropdown.SelectedMsg[entry]:
		m.status = fmt.Sprintf("%s: %s", msg.ID, msg.Entry.label)
		slog.Info("selected", "widget", msg.ID, "entry", msg.Entry.id)
		return m, nil

	case dropdown.DismissedMsg:
		m.status = fmt.Sprintf("%s: cleared", msg.ID)
		slog.Info("dismissed", "widget", msg.ID)
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)
	}

	// Mouse, blur and tick messages concern every widget; each instance
	// checks its own hit area and ID.
	var cmds []tea.Cmd
	for i, w := range m.widgets {
		var cmd tea.Cmd
		m.widgets[i], cmd = w.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	active := m.widgets[m.active]

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keyMap.Next) && !active.IsOpen():
		m.moveActive(1)
		return m, nil

	case key.Matches(msg, m.keyMap.Prev) && !active.IsOpen():
		m.moveActive(-1)
		return m, nil
	}

	var cmd tea.Cmd
	m.widgets[m.active], cmd = active.Update(msg)
	return m, cmd
}

func (m *Model) moveActive(delta int) {
	m.widgets[m.active].Blur()
	m.active = (m.active + delta + len(m.widgets)) % len(m.widgets)
	m.widgets[m.active].Focus()
}

// View implements tea.Model.
func (m *Model) View() tea.View {
	t := styles.CurrentTheme()

	title := t.S().Text.Bold(true).Render("dropdown demo")
	columns := []string{strings.Repeat(" ", marginLeft)}
	for i, w := range m.widgets {
		heading := t.S().Muted
		if i == m.active {
			heading = t.S().Text.Foreground(t.Accent)
		}
		col := lipgloss.JoinVertical(lipgloss.Left,
			heading.Render(m.titles[i]),
			w.View(),
		)
		columns = append(columns, col, strings.Repeat(" ", columnGap))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		strings.Repeat(" ", marginLeft)+title,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		"",
		strings.Repeat(" ", marginLeft)+t.S().Muted.Render(m.status),
		"",
		strings.Repeat(" ", marginLeft)+m.help.View(helpKeys{
			app:    m.keyMap,
			widget: m.widgets[m.active].KeyMap(),
		}),
	)

	view := tea.NewView(body)
	view.BackgroundColor = t.BgBase
	view.Cursor = m.widgets[m.active].Cursor()
	return view
}

// MouseEventFilter drops motion events while no list is open, so a
// resting pointer does not flood the update loop.
func MouseEventFilter(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	m, ok := model.(*Model)
	if !ok {
		return msg
	}
	for _, w := range m.widgets {
		if w.IsOpen() {
			return msg
		}
	}
	return nil
}
