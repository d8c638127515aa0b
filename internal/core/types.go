package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract between a cellular automaton and the host that paces
// and displays it.
type Sim interface {
	Name() string
	Size() Size
	// Reset reseeds the field. Simulations with a fixed seed pattern ignore
	// the value.
	Reset(seed int64)
	// Step advances exactly one generation.
	Step()
	// Generation reports the number of steps since the last reset.
	Generation() int
	// Pixels returns the RGBA projection of the current generation, four
	// bytes per cell in row-major order.
	Pixels() []byte
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames returns the registered names in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
