package elementary

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(e *Elementary, y int) []uint8 {
	out := make([]uint8, e.Field().Width())
	for x := range out {
		out[x] = e.Field().Get(x, y)
	}
	return out
}

func TestRule90Scrolls(t *testing.T) {
	e := New(7, 4, 90)
	e.Reset(0)
	require.Equal(t, []uint8{0, 0, 0, 1, 0, 0, 0}, row(e, 0))

	e.Step()
	assert.Equal(t, []uint8{0, 0, 1, 0, 1, 0, 0}, row(e, 0))
	assert.Equal(t, []uint8{0, 0, 0, 1, 0, 0, 0}, row(e, 1))

	e.Step()
	assert.Equal(t, []uint8{0, 1, 0, 0, 0, 1, 0}, row(e, 0))
	assert.Equal(t, []uint8{0, 0, 1, 0, 1, 0, 0}, row(e, 1))
	assert.Equal(t, []uint8{0, 0, 0, 1, 0, 0, 0}, row(e, 2))
	assert.Equal(t, 2, e.Generation())
}

func TestHistoryFallsOffTheBottom(t *testing.T) {
	e := New(5, 2, 0)
	e.Reset(0)
	e.Step()
	assert.Equal(t, []uint8{0, 0, 0, 0, 0}, row(e, 0))
	assert.Equal(t, []uint8{0, 0, 1, 0, 0}, row(e, 1))
	e.Step()
	assert.Equal(t, []uint8{0, 0, 0, 0, 0}, row(e, 1))
}

func TestRule110TopRow(t *testing.T) {
	e := New(8, 3, 110)
	e.Reset(0)
	e.Step()
	// 110: the cell left of a lone 1 turns on, the 1 itself stays on.
	assert.Equal(t, []uint8{0, 0, 0, 1, 1, 0, 0, 0}, row(e, 0))
}

func TestRulesTableIsComplete(t *testing.T) {
	ctx := Rules(30)
	assert.Equal(t, 9, ctx.Len())

	e := New(8, 1, 30)
	for i := range 8 {
		e.Field().Set(i, 0, uint8(i%2))
	}
	for x := range 8 {
		assert.Equal(t, 1, ctx.Matching(e.Field(), image.Pt(x, 0)))
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"rule": "300", "h": "12"})
	assert.Equal(t, uint8(110), c.Rule)
	assert.Equal(t, 12, c.Height)
}
