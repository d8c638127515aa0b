package render

import (
	"bufio"
	"fmt"
	"io"

	"automata/internal/core"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClear = "\033[H\033[2J"
)

// TerminalRenderer draws RGBA frames as text, one block per lit cell.
type TerminalRenderer struct {
	w     *bufio.Writer
	clear bool
}

// NewTerminalRenderer returns a renderer writing to w. When clear is set each
// frame starts by clearing the screen.
func NewTerminalRenderer(w io.Writer, clear bool) *TerminalRenderer {
	return &TerminalRenderer{w: bufio.NewWriter(w), clear: clear}
}

// Display renders one frame followed by a status line.
func (r *TerminalRenderer) Display(sim core.Sim) error {
	if r.clear {
		r.w.WriteString(ansiClear)
	}
	size := sim.Size()
	pixels := sim.Pixels()
	for y := range size.H {
		for x := range size.W {
			if lit(pixels, y*size.W+x) {
				r.w.WriteString(gridPosBlock)
			} else {
				r.w.WriteString(gridPosEmpty)
			}
		}
		r.w.WriteByte('\n')
	}
	fmt.Fprintf(r.w, "%s | Gen: %d\n", sim.Name(), sim.Generation())
	return r.w.Flush()
}
