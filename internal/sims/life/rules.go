package life

import (
	"image"

	"automata/internal/core"
)

// neighborhood is the 3x3 Moore window; slot 4 is the cell itself.
const neighborhood = core.Square(2)

const centerSlot = 4

// Next applies Conway's rule: a live cell with 2 or 3 live neighbours
// survives, a dead cell with exactly 3 is born, everything else is dead.
func Next(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// ProceduralContext returns Life as a single rule counting neighbours on demand.
func ProceduralContext() *core.RuleContext[bool] {
	return core.NewRuleContext[bool](core.RuleFunc[bool](step))
}

func step(src core.View[bool], pos image.Point) (core.Change[bool], bool) {
	alive := src.At(pos)
	neighbors := 0
	for i := range neighborhood.Size() {
		off, _ := neighborhood.Offset(i)
		if src.At(pos.Add(off)) {
			neighbors++
		}
	}
	if alive {
		neighbors--
	}
	return core.Set(Next(alive, neighbors)), true
}

// TableContext returns Life as 512 declarative patterns, one per 3x3
// neighbourhood. Bit j of the table index is the expected value of slot j.
func TableContext() *core.RuleContext[bool] {
	size := neighborhood.Size()
	rules := make([]core.Rule[bool], 0, 1<<size)
	want := make([]bool, size)
	for i := 0; i < 1<<size; i++ {
		live := 0
		for j := range want {
			want[j] = i>>j&1 == 1
			if want[j] {
				live++
			}
		}
		alive := want[centerSlot]
		if alive {
			live--
		}
		rules = append(rules, core.MustPattern(neighborhood, want, core.Set(Next(alive, live))))
	}
	return core.NewRuleContext(rules...)
}

// GliderCells returns the live cells of a glider anchored at origin. It
// travels one cell right and one cell up every four generations.
func GliderCells(origin image.Point) []image.Point {
	cells := []image.Point{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {1, 2}}
	for i := range cells {
		cells[i] = cells[i].Add(origin)
	}
	return cells
}
