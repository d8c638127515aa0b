package app

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"

	"automata/internal/core"
	"automata/internal/render"
)

// RunHeadless steps sim at the configured pace, printing every generation
// to out, until Generations have run or ctx is done.
func RunHeadless(ctx context.Context, sim core.Sim, cfg *Config, out io.Writer, clear bool) error {
	renderer := render.NewTerminalRenderer(out, clear)
	pace := core.NewFixedStep(cfg.TPS)
	logger := core.Logger()

	if err := renderer.Display(sim); err != nil {
		return errors.Wrap(err, "[RunHeadless] display failed")
	}
	poll := time.NewTicker(max(pace.Interval()/4, time.Millisecond))
	defer poll.Stop()

	start := time.Now()
	for cfg.Generations <= 0 || sim.Generation() < cfg.Generations {
		select {
		case <-ctx.Done():
			logger.Info("interrupted", "generation", sim.Generation(), "elapsed", time.Since(start))
			return nil
		case <-poll.C:
		}
		if !pace.ShouldStep() {
			continue
		}
		sim.Step()
		if err := renderer.Display(sim); err != nil {
			return errors.Wrap(err, "[RunHeadless] display failed")
		}
	}
	logger.Info("finished", "generations", sim.Generation(), "elapsed", time.Since(start))
	return nil
}
