package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automata/internal/core"
)

type stubSim struct {
	size   core.Size
	pixels []byte
}

func (s stubSim) Name() string    { return "stub" }
func (s stubSim) Size() core.Size { return s.size }
func (s stubSim) Reset(int64)     {}
func (s stubSim) Step()           {}
func (s stubSim) Generation() int { return 3 }
func (s stubSim) Pixels() []byte  { return s.pixels }

func TestTerminalRendererDisplay(t *testing.T) {
	sim := stubSim{
		size: core.Size{W: 2, H: 2},
		pixels: []byte{
			0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0xFF,
			0x00, 0x00, 0x00, 0xFF, 0x30, 0x60, 0xFF, 0xFF,
		},
	}
	var buf bytes.Buffer
	require.NoError(t, NewTerminalRenderer(&buf, false).Display(sim))
	assert.Equal(t, "██  \n  ██\nstub | Gen: 3\n", buf.String())

	buf.Reset()
	require.NoError(t, NewTerminalRenderer(&buf, true).Display(sim))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte(ansiClear)))
}

func TestLitOutOfRange(t *testing.T) {
	assert.False(t, lit([]byte{0xFF, 0xFF}, 0))
	assert.False(t, lit(nil, 4))
}
