package briansbrain

import (
	"image"
	"image/color"
	"strconv"

	"automata/internal/core"
)

// Cell states.
const (
	StateDead  uint8 = 0
	StateOn    uint8 = 1
	StateDying uint8 = 2
)

var palette = core.Indexed([]color.RGBA{
	StateDead:  {A: 0xFF},
	StateOn:    {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	StateDying: {R: 0x30, G: 0x60, B: 0xFF, A: 0xFF},
})

// Config holds parameters for Brian's Brain.
type Config struct {
	Width   int
	Height  int
	Density int // one in Density cells starts firing
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Density: 8}
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
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Density = parsed
		}
	}
	return c
}

// Rules returns Brian's Brain as a rule context: firing cells start dying,
// dying cells die, and dead cells fire when exactly two neighbours are firing.
func Rules() *core.RuleContext[uint8] {
	return core.NewRuleContext[uint8](core.RuleFunc[uint8](step))
}

func step(src core.View[uint8], pos image.Point) (core.Change[uint8], bool) {
	switch src.At(pos) {
	case StateOn:
		return core.Set(StateDying), true
	case StateDying:
		return core.Set(StateDead), true
	}
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if src.At(pos.Add(image.Pt(dx, dy))) == StateOn {
				neighbors++
			}
		}
	}
	if neighbors == 2 {
		return core.Set(StateOn), true
	}
	return core.Change[uint8]{}, false
}

// Brain implements Brian's Brain cellular automaton.
type Brain struct {
	cfg   Config
	field *core.Field[uint8]
	ctx   *core.RuleContext[uint8]
	buf   []byte
}

// New creates a Brain simulation with the provided dimensions.
func New(w, h int) *Brain {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Brain simulation from cfg.
func NewWithConfig(cfg Config) *Brain {
	return &Brain{cfg: cfg, field: core.NewField[uint8](cfg.Width, cfg.Height), ctx: Rules()}
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size { return b.field.Size() }

// Field exposes the live field.
func (b *Brain) Field() *core.Field[uint8] { return b.field }

// Generation reports the number of steps since the last reset.
func (b *Brain) Generation() int { return b.field.Generation() }

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	b.field.ResetGeneration()
	density := b.cfg.Density
	core.FillRandom(b.field, core.NewRNG(seed), func(r *core.RNG) uint8 {
		if r.Source().IntN(density) == 0 {
			return StateOn
		}
		return StateDead
	})
}

// Step advances the automaton by one tick.
func (b *Brain) Step() { b.field.Tick(b.ctx) }

// Pixels renders firing cells white, dying cells blue and dead cells black.
func (b *Brain) Pixels() []byte {
	b.buf = b.field.AppendBytes(b.buf[:0], palette)
	return b.buf
}

// Parameters describes the running configuration.
func (b *Brain) Parameters() core.ParameterSnapshot {
	s := b.field.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "World",
		Params: []core.Parameter{
			core.IntParam("w", "Width", s.W),
			core.IntParam("h", "Height", s.H),
			core.IntParam("density", "Seed density 1/n", b.cfg.Density),
		},
	}}}
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
