package elementary

import (
	"image"
	"image/color"
	"strconv"

	"automata/internal/core"
)

var palette = core.Indexed([]color.RGBA{
	{A: 0xFF},
	{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
})

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Rules returns the rule context of a Wolfram code drawn as scrolling
// history. Every row below the top copies the row above it; the top row is
// rewritten from an eight-entry table over its left, centre and right cells.
func Rules(rule uint8) *core.RuleContext[uint8] {
	ctx := core.NewRuleContext[uint8](core.RuleFunc[uint8](scroll))
	line := core.Line(2)
	for idx := 0; idx < 8; idx++ {
		want := []uint8{uint8(idx >> 2 & 1), uint8(idx >> 1 & 1), uint8(idx & 1)}
		ctx.With(core.MustPattern(line, want, core.Set(rule>>idx&1)))
	}
	return ctx
}

func scroll(_ core.View[uint8], pos image.Point) (core.Change[uint8], bool) {
	if pos.Y == 0 {
		return core.Change[uint8]{}, false
	}
	return core.Clone[uint8](pos.Sub(image.Pt(0, 1))), true
}

// Elementary implements a one-dimensional Wolfram code projected vertically.
type Elementary struct {
	cfg   Config
	field *core.Field[uint8]
	ctx   *core.RuleContext[uint8]
	buf   []byte
}

// New creates an automaton with the given dimensions and rule.
func New(w, h int, rule uint8) *Elementary {
	return &Elementary{
		cfg:   Config{Width: w, Height: h, Rule: rule},
		field: core.NewField[uint8](w, h),
		ctx:   Rules(rule),
	}
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return e.field.Size() }

// Field exposes the live field.
func (e *Elementary) Field() *core.Field[uint8] { return e.field }

// Generation reports the number of steps since the last reset.
func (e *Elementary) Generation() int { return e.field.Generation() }

// Reset clears the grid and seeds the top row with a single active cell.
func (e *Elementary) Reset(int64) {
	e.field.Fill(0)
	e.field.ResetGeneration()
	e.field.Set(e.field.Width()/2, 0, 1)
}

// Step computes the next top row and scrolls history downwards.
func (e *Elementary) Step() { e.field.Tick(e.ctx) }

// Pixels renders active cells white.
func (e *Elementary) Pixels() []byte {
	e.buf = e.field.AppendBytes(e.buf[:0], palette)
	return e.buf
}

// Parameters describes the running configuration.
func (e *Elementary) Parameters() core.ParameterSnapshot {
	s := e.field.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "World",
		Params: []core.Parameter{
			core.IntParam("w", "Width", s.W),
			core.IntParam("h", "Height", s.H),
			core.IntParam("rule", "Wolfram code", int(e.cfg.Rule)),
		},
	}}}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Width, c.Height, c.Rule)
	})
}
