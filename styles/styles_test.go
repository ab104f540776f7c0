package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubtle(t *testing.T) {
	t.Parallel()

	th := NewDefaultTheme()

	t.Run("amount zero keeps the color", func(t *testing.T) {
		t.Parallel()
		r, g, b, _ := th.Subtle(th.Primary, 0).RGBA()
		wr, wg, wb, _ := th.Primary.RGBA()
		assert.InDelta(t, wr, r, 300)
		assert.InDelta(t, wg, g, 300)
		assert.InDelta(t, wb, b, 300)
	})

	t.Run("amount one reaches the background", func(t *testing.T) {
		t.Parallel()
		r, g, b, _ := th.Subtle(th.Primary, 1).RGBA()
		wr, wg, wb, _ := th.BgBase.RGBA()
		assert.InDelta(t, wr, r, 300)
		assert.InDelta(t, wg, g, 300)
		assert.InDelta(t, wb, b, 300)
	})
}

func TestCurrentTheme(t *testing.T) {
	th := CurrentTheme()
	require.NotNil(t, th)

	// The derived style set is built once and reused.
	assert.Same(t, th.S(), th.S())

	// A nil theme must not replace the active one.
	SetTheme(nil)
	assert.Same(t, th, CurrentTheme())
}
