package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjust(t *testing.T) {
	t.Parallel()

	t.Run("entry above viewport scrolls to its top", func(t *testing.T) {
		t.Parallel()
		scrollTop, changed := Adjust(ScrollData{
			ListScrollTop:     100,
			ListClientHeight:  200,
			EntryOffsetTop:    50,
			EntryOffsetHeight: 20,
		})
		assert.True(t, changed)
		assert.Equal(t, 50, scrollTop)
	})

	t.Run("entry below viewport reveals its bottom", func(t *testing.T) {
		t.Parallel()
		scrollTop, changed := Adjust(ScrollData{
			ListScrollTop:     100,
			ListClientHeight:  200,
			EntryOffsetTop:    310,
			EntryOffsetHeight: 10,
		})
		assert.True(t, changed)
		assert.Equal(t, 120, scrollTop)
	})

	t.Run("entry already visible is left alone", func(t *testing.T) {
		t.Parallel()
		scrollTop, changed := Adjust(ScrollData{
			ListScrollTop:     100,
			ListClientHeight:  200,
			EntryOffsetTop:    150,
			EntryOffsetHeight: 10,
		})
		assert.False(t, changed)
		assert.Equal(t, 100, scrollTop)
	})

	t.Run("entry far above is centered", func(t *testing.T) {
		t.Parallel()
		d := ScrollData{
			ListScrollTop:     1000,
			ListClientHeight:  200,
			EntryOffsetTop:    50,
			EntryOffsetHeight: 20,
		}
		scrollTop, changed := Adjust(d)
		assert.True(t, changed)
		assert.Equal(t, Center(d), scrollTop)
	})

	t.Run("entry far below is centered", func(t *testing.T) {
		t.Parallel()
		d := ScrollData{
			ListScrollTop:     0,
			ListClientHeight:  200,
			EntryOffsetTop:    900,
			EntryOffsetHeight: 10,
		}
		scrollTop, changed := Adjust(d)
		assert.True(t, changed)
		assert.Equal(t, Center(d), scrollTop)
	})

	t.Run("never returns a negative offset", func(t *testing.T) {
		t.Parallel()
		scrollTop, changed := Adjust(ScrollData{
			ListScrollTop:     50,
			ListClientHeight:  200,
			EntryOffsetTop:    0,
			EntryOffsetHeight: 1,
		})
		assert.True(t, changed)
		assert.Equal(t, 0, scrollTop)
	})
}

func TestCenter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 410, Center(ScrollData{
		ListClientHeight:  200,
		EntryOffsetTop:    500,
		EntryOffsetHeight: 20,
	}))

	// Entries near the top clamp at zero.
	assert.Equal(t, 0, Center(ScrollData{
		ListClientHeight:  200,
		EntryOffsetTop:    10,
		EntryOffsetHeight: 2,
	}))
}

func TestReset(t *testing.T) {
	t.Parallel()

	t.Run("no cache scrolls to top", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0, Reset(nil, true))
	})

	t.Run("cache without focus scrolls to top", func(t *testing.T) {
		t.Parallel()
		d := &ScrollData{ListScrollTop: 40, ListClientHeight: 10, EntryOffsetTop: 100, EntryOffsetHeight: 1}
		assert.Equal(t, 0, Reset(d, false))
	})

	t.Run("cache with focus defers to Adjust", func(t *testing.T) {
		t.Parallel()
		d := &ScrollData{ListScrollTop: 40, ListClientHeight: 10, EntryOffsetTop: 100, EntryOffsetHeight: 1}
		want, _ := Adjust(*d)
		assert.Equal(t, want, Reset(d, true))
	})
}

func TestMeasure(t *testing.T) {
	t.Parallel()

	entries := []int{0, 1, 2, 3, 4}
	height := func(e int) int { return 1 + e%2 } // 1,2,1,2,1

	t.Run("prefix sum geometry", func(t *testing.T) {
		t.Parallel()
		d, ok := Measure(height, entries, 3, 7, 5)
		require.True(t, ok)
		assert.Equal(t, ScrollData{
			ListScrollTop:     7,
			ListClientHeight:  5,
			EntryOffsetTop:    4,
			EntryOffsetHeight: 2,
		}, d)
	})

	t.Run("first entry", func(t *testing.T) {
		t.Parallel()
		d, ok := Measure(height, entries, 0, 0, 5)
		require.True(t, ok)
		assert.Zero(t, d.EntryOffsetTop)
		assert.Equal(t, 1, d.EntryOffsetHeight)
	})

	t.Run("out of range", func(t *testing.T) {
		t.Parallel()
		_, ok := Measure(height, entries, 5, 0, 5)
		assert.False(t, ok)
		_, ok = Measure(height, entries, -1, 0, 5)
		assert.False(t, ok)
	})
}

func TestTotalHeight(t *testing.T) {
	t.Parallel()

	entries := []int{0, 1, 2, 3, 4}
	assert.Equal(t, 7, TotalHeight(func(e int) int { return 1 + e%2 }, entries))
	assert.Zero(t, TotalHeight(func(int) int { return 1 }, []int(nil)))
}
