package core

import (
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Tick advances the field by one generation. Every cell is evaluated against
// the frozen current generation and written to a scratch buffer that starts
// as a copy of it; the buffers are swapped once all cells are done.
func (f *Field[T]) Tick(ctx *RuleContext[T]) {
	copy(f.nxt, f.cur)
	f.stepRows(ctx, 0, f.h)
	f.swap()
}

// TickParallel is Tick with rows split into bands evaluated concurrently. The
// result is identical to Tick. workers <= 0 uses one band per CPU.
func (f *Field[T]) TickParallel(ctx *RuleContext[T], workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > f.h {
		workers = f.h
	}
	copy(f.nxt, f.cur)

	var (
		eg            errgroup.Group
		rowsPerWorker = (f.h + workers - 1) / workers
	)
	Logger().Debug("parallel tick", "rows", f.h, "workers", workers, "rows_per_worker", rowsPerWorker)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, f.h)
		)
		if startRow >= f.h {
			break
		}
		eg.Go(func() error {
			f.stepRows(ctx, startRow, endRow)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		Logger().Error("parallel tick failed", "err", err)
	}
	f.swap()
}

// stepRows evaluates rows [y0, y1) into nxt. Only cur is read.
func (f *Field[T]) stepRows(ctx *RuleContext[T], y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < f.w; x++ {
			if v, ok := ctx.Resolve(f, image.Pt(x, y)); ok {
				f.nxt[y*f.w+x] = v
			}
		}
	}
}

func (f *Field[T]) swap() {
	f.cur, f.nxt = f.nxt, f.cur
	f.gen++
}
