//go:build !ebiten

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"automata/internal/app"
	"automata/internal/core"
)

// Without the ebiten tag the simulation is printed to the terminal.
func main() {
	cfg := parseConfig()
	core.SetLogger(cfg.Logger())

	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunHeadless(ctx, sim, cfg, os.Stdout, true); err != nil {
		log.Fatal(err)
	}
}
