//go:build ebiten

package main

import (
	"errors"
	"log"

	"automata/internal/app"
	"automata/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := parseConfig()
	core.SetLogger(cfg.Logger())

	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Scale, cfg.TPS, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("automata — " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
