package briansbrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automata/internal/core"
)

func TestStateCycle(t *testing.T) {
	f, err := core.FieldFromRows([][]uint8{
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
	})
	require.NoError(t, err)

	f.Tick(Rules())
	want := [][]uint8{
		{0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 0, 0},
		{0, 0, 2, 2, 0, 0},
		{0, 0, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 0},
	}
	for y, row := range want {
		for x, v := range row {
			assert.Equal(t, v, f.Get(x, y), "(%d,%d)", x, y)
		}
	}

	f.Tick(Rules())
	assert.Equal(t, StateDead, f.Get(2, 2))
	assert.Equal(t, StateDying, f.Get(2, 1))
}

func TestResetDeterministic(t *testing.T) {
	a := New(32, 32)
	b := New(32, 32)
	a.Reset(5)
	b.Reset(5)
	require.True(t, a.Field().Equal(b.Field()))
	assert.Positive(t, a.Field().Count(func(v uint8) bool { return v == StateOn }))

	for range 3 {
		a.Step()
		b.Step()
	}
	assert.True(t, a.Field().Equal(b.Field()))
	assert.Equal(t, 3, a.Generation())

	a.Reset(5)
	assert.Zero(t, a.Generation())
}

func TestPixels(t *testing.T) {
	b := New(3, 1)
	b.Field().Set(0, 0, StateOn)
	b.Field().Set(1, 0, StateDying)
	assert.Equal(t, []byte{
		0xFF, 0xFF, 0xFF, 0xFF,
		0x30, 0x60, 0xFF, 0xFF,
		0x00, 0x00, 0x00, 0xFF,
	}, b.Pixels())
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "64", "density": "0"})
	assert.Equal(t, 64, c.Width)
	assert.Equal(t, 256, c.Height)
	assert.Equal(t, 8, c.Density)
}
