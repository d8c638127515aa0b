package life

import (
	"image"
	"image/color"

	"automata/internal/core"
)

var palette = core.Binary(color.White, color.Black)

// Life implements Conway's Game of Life on a toroidal field driven by a
// rule context.
type Life struct {
	cfg   Config
	field *core.Field[bool]
	ctx   *core.RuleContext[bool]
	buf   []byte
}

// New returns a Life simulation with the provided dimensions.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Life simulation configured from cfg. The field is
// seeded with the configured pattern.
func NewWithConfig(cfg Config) *Life {
	l := &Life{cfg: cfg, field: core.NewField[bool](cfg.Width, cfg.Height)}
	if cfg.Rules == RulesTable {
		l.ctx = TableContext()
	} else {
		l.ctx = ProceduralContext()
	}
	l.Reset(0)
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.field.Size() }

// Field exposes the live field.
func (l *Life) Field() *core.Field[bool] { return l.field }

// Generation reports the number of steps since the last reset.
func (l *Life) Generation() int { return l.field.Generation() }

// Population counts live cells.
func (l *Life) Population() int {
	return l.field.Count(func(v bool) bool { return v })
}

// Reset reseeds the board. The glider pattern ignores seed.
func (l *Life) Reset(seed int64) {
	l.field.Fill(false)
	l.field.ResetGeneration()
	if l.cfg.Pattern == PatternRandom {
		core.FillRandom(l.field, core.NewRNG(seed), (*core.RNG).Bool)
		return
	}
	s := l.field.Size()
	for _, p := range GliderCells(image.Pt(s.W/2, s.H/2)) {
		l.field.Set(p.X, p.Y, true)
	}
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	if l.cfg.Workers == 1 {
		l.field.Tick(l.ctx)
		return
	}
	l.field.TickParallel(l.ctx, l.cfg.Workers)
}

// Pixels renders live cells white and dead cells black.
func (l *Life) Pixels() []byte {
	l.buf = l.field.AppendBytes(l.buf[:0], palette)
	return l.buf
}

// Parameters describes the running configuration.
func (l *Life) Parameters() core.ParameterSnapshot {
	s := l.field.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", s.W),
				core.IntParam("h", "Height", s.H),
				core.StringParam("pattern", "Pattern", l.cfg.Pattern),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				core.StringParam("rules", "Representation", l.cfg.Rules),
				core.IntParam("rule_count", "Rules", l.ctx.Len()),
				core.IntParam("population", "Population", l.Population()),
			},
		},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
