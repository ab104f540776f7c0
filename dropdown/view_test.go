package dropdown

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plain(s string) string {
	return ansi.Strip(s)
}

func TestViewClosed(t *testing.T) {
	t.Parallel()

	t.Run("shows the placeholder without a selection", func(t *testing.T) {
		t.Parallel()
		m := NewSimple("fruits", fruitConfig(), fruits("Apple", "Banana"))
		out := plain(m.View())
		assert.Contains(t, out, "Select…")
		assert.Contains(t, out, "▾")
		assert.NotContains(t, out, "Apple")
	})

	t.Run("shows the selected entry", func(t *testing.T) {
		t.Parallel()
		m := NewSimple("fruits", fruitConfig(), fruits("Apple", "Banana"),
			WithSelection(fruit{id: "banana", name: "Banana"}))
		out := plain(m.View())
		assert.Contains(t, out, "Banana")
		assert.NotContains(t, out, "Select…")
	})

	t.Run("long labels are truncated to the control width", func(t *testing.T) {
		t.Parallel()
		long := strings.Repeat("x", 80)
		m := NewSimple("fruits", fruitConfig(), nil,
			WithSelection(fruit{id: "long", name: long}),
			WithWidth[fruit](20))
		out := m.View()
		assert.Contains(t, plain(out), "…")
		assert.LessOrEqual(t, lipgloss.Width(out), 20)
	})
}

func TestViewOpen(t *testing.T) {
	t.Parallel()

	t.Run("lists the entries below the control", func(t *testing.T) {
		t.Parallel()
		m := NewSimple("fruits", fruitConfig(), fruits("Apple", "Banana", "Cherry"))
		m, _ = m.Update(keyPress(tea.KeyEnter))

		out := plain(m.View())
		assert.Contains(t, out, "▴")
		assert.Contains(t, out, "Apple")
		assert.Contains(t, out, "Banana")
		assert.Contains(t, out, "Cherry")

		// Bordered control (3) + list content (3) + list border (2).
		assert.Equal(t, 8, lipgloss.Height(m.View()))
	})

	t.Run("marks the selected entry", func(t *testing.T) {
		t.Parallel()
		m := NewSimple("fruits", fruitConfig(), fruits("Apple", "Banana"),
			WithSelection(fruit{id: "banana", name: "Banana"}))
		m, _ = m.Update(keyPress(tea.KeyEnter))

		out := plain(m.View())
		assert.Contains(t, out, "✓ Banana")
		assert.NotContains(t, out, "✓ Apple")
	})

	t.Run("records the hit layout", func(t *testing.T) {
		t.Parallel()
		m := NewSimple("fruits", fruitConfig(), fruits("Apple", "Banana", "Cherry"))
		m, _ = m.Update(keyPress(tea.KeyEnter))
		m.View()

		require.True(t, m.hit.valid)
		assert.Equal(t, 32, m.hit.controlWidth)
		assert.Equal(t, 3, m.hit.controlHeight)
		assert.Equal(t, 4, m.hit.listTop)
		assert.Equal(t, 1, m.hit.listLeft)
		assert.Equal(t, 3, m.hit.listHeight)
	})

	t.Run("borderless list style shifts the hit layout", func(t *testing.T) {
		t.Parallel()
		borderless := lipgloss.NewStyle()
		m := NewSimple("fruits", fruitConfig(), fruits("Apple", "Banana"),
			WithViewConfig[fruit](ViewConfig[fruit]{List: &borderless}))
		m, _ = m.Update(keyPress(tea.KeyEnter))
		m.View()

		require.True(t, m.hit.valid)
		assert.Equal(t, 3, m.hit.listTop)
		assert.Zero(t, m.hit.listLeft)

		// A click on the first content row still lands on the entry.
		m, _ = m.Update(tea.MouseClickMsg{Button: tea.MouseLeft, X: 0, Y: 3})
		m, cmd := m.Update(tea.MouseReleaseMsg{Button: tea.MouseLeft, X: 0, Y: 3})
		got := selections(drain(cmd))
		require.Len(t, got, 1)
		assert.Equal(t, "Apple", got[0].name)
	})

	t.Run("custom entry renderer is used", func(t *testing.T) {
		t.Parallel()
		m := NewSimple("fruits", fruitConfig(), fruits("Apple"),
			WithViewConfig[fruit](ViewConfig[fruit]{
				Entry: func(_ EntryState, f fruit) string { return "> " + f.name },
			}))
		m, _ = m.Update(keyPress(tea.KeyEnter))
		assert.Contains(t, plain(m.View()), "> Apple")
	})
}

func TestViewWindowing(t *testing.T) {
	t.Parallel()

	t.Run("only the viewport slice of a huge list is rendered", func(t *testing.T) {
		t.Parallel()
		m := NewSimple("fruits", fruitConfig(), numbered(10000), WithMaxVisible[fruit](5))
		m, _ = m.Update(keyPress(tea.KeyEnter))

		out := plain(m.View())
		assert.Contains(t, out, "Entry 0")
		assert.Contains(t, out, "Entry 4")
		assert.NotContains(t, out, "Entry 5\n")
		assert.NotContains(t, out, "Entry 9999")
		assert.Equal(t, 10, lipgloss.Height(out))
	})

	t.Run("scrolling to the end shows the last entries", func(t *testing.T) {
		t.Parallel()
		m := NewSimple("fruits", fruitConfig(), numbered(10000), WithMaxVisible[fruit](5))
		m, _ = m.Update(keyPress(tea.KeyEnter))
		m, _ = m.Update(keyPress(tea.KeyEnd))

		out := plain(m.View())
		assert.Contains(t, out, "Entry 9999")
		assert.Contains(t, out, "Entry 9995")
		assert.NotContains(t, out, "Entry 0\n")
		assert.Equal(t, 10, lipgloss.Height(out))
	})

	t.Run("multi-line entries fill the viewport", func(t *testing.T) {
		t.Parallel()
		cfg := fruitConfig()
		cfg.EntryHeight = func(fruit) int { return 2 }
		m := NewSimple("fruits", cfg, fruits("Apple", "Banana", "Cherry"),
			WithMaxVisible[fruit](4),
			WithViewConfig[fruit](ViewConfig[fruit]{
				Entry: func(_ EntryState, f fruit) string { return f.name + "\n  (" + f.id + ")" },
			}))
		m, _ = m.Update(keyPress(tea.KeyEnter))

		out := plain(m.View())
		assert.Contains(t, out, "Apple")
		assert.Contains(t, out, "(apple)")
		assert.Contains(t, out, "(banana)")
		assert.NotContains(t, out, "Cherry")
	})
}

func TestViewOpenEmpty(t *testing.T) {
	t.Parallel()

	m := NewFilterable("fruits", fruitConfig(), fruits("Apple", "Banana"))
	m, _ = m.Update(typeChar('z'))
	require.Equal(t, phaseOpenEmpty, m.phase)

	out := plain(m.View())
	assert.Contains(t, out, "no matches")
	assert.NotContains(t, out, "Apple")
}

func TestViewFilterable(t *testing.T) {
	t.Parallel()

	m := NewFilterable("fruits", fruitConfig(), fruits("Apple", "Banana"))
	m, _ = m.Update(typeChar('b'))

	out := plain(m.View())
	assert.Contains(t, out, "b")
	assert.Contains(t, out, "Banana")
	assert.NotContains(t, out, "Apple\n")
	assert.NotNil(t, m.Cursor())
}

func TestMatchedRanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []int
		want [][2]int
	}{
		{"empty", nil, [][2]int{}},
		{"single", []int{3}, [][2]int{{3, 3}}},
		{"adjacent run", []int{1, 2, 3}, [][2]int{{1, 3}}},
		{"two runs", []int{0, 1, 5, 6}, [][2]int{{0, 1}, {5, 6}}},
		{"mixed", []int{0, 2, 3, 9}, [][2]int{{0, 0}, {2, 3}, {9, 9}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, matchedRanges(tt.in))
		})
	}
}

func TestBytePosToVisibleCharPos(t *testing.T) {
	t.Parallel()

	t.Run("ascii positions pass through", func(t *testing.T) {
		t.Parallel()
		start, stop := bytePosToVisibleCharPos("abcdef", [2]int{2, 4})
		assert.Equal(t, 2, start)
		assert.Equal(t, 4, stop)
	})

	t.Run("multibyte runes shift the visible position", func(t *testing.T) {
		t.Parallel()
		// "über": ü is two bytes but one cell.
		start, stop := bytePosToVisibleCharPos("über", [2]int{3, 4})
		assert.Equal(t, 2, start)
		assert.Equal(t, 3, stop)
	})
}

func BenchmarkViewLargeList(b *testing.B) {
	entries := make([]fruit, 123457)
	for i := range entries {
		entries[i] = fruit{id: fmt.Sprintf("n%d", i), name: fmt.Sprintf("Entry %d", i)}
	}
	m := NewSimple("bench", fruitConfig(), entries, WithMaxVisible[fruit](10))
	m, _ = m.Update(keyPress(tea.KeyEnter))

	b.ResetTimer()
	for range b.N {
		m.View()
	}
}
