// Package engine advances a grid one generation at a time. The engine
// is stateless with respect to history: each Step consumes one
// immutable grid and produces the next.
package engine

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/shvets-d/lifelab/internal/grid"
)

// Observer is notified after every generation produced by Run,
// including generation zero (the input grid).
type Observer interface {
	OnGeneration(gen int, g grid.Grid)
}

// Engine computes generations with a fixed worker count.
type Engine struct {
	workers   int
	observers []Observer
}

// New returns an engine using the given number of workers per step.
// A count of zero or less means one worker per CPU.
func New(workers int) *Engine {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine{workers: workers}
}

// AddObserver registers an observer for Run. Not safe to call while
// Run is in progress.
func (e *Engine) AddObserver(o Observer) {
	e.observers = append(e.observers, o)
}

// Step produces the next generation. Every cell's update is evaluated
// against the input grid only, so updates are order-independent and
// the rows can be computed in parallel: workers read the shared
// immutable input and write disjoint row ranges of the output buffer.
// The output has the same dimensions as the input.
func (e *Engine) Step(g grid.Grid) grid.Grid {
	var (
		width  = g.Width()
		height = g.Height()
		cells  = make([]bool, width*height)
	)

	var (
		eg            errgroup.Group
		rowsPerWorker = (height + e.workers - 1) / e.workers
	)
	for i := 0; i < e.workers; i++ {
		startRow := i * rowsPerWorker
		endRow := min(startRow+rowsPerWorker, height)
		if startRow >= height {
			break
		}

		eg.Go(func() error {
			for r := startRow; r < endRow; r++ {
				for c := 0; c < width; c++ {
					n, err := g.NeighborCount(r, c)
					if err != nil {
						return err
					}
					cells[r*width+c] = nextState(g.Alive(r, c), n)
				}
			}
			return nil
		})
	}

	// Coordinates are in bounds by construction of the loops, so the
	// workers cannot fail.
	_ = eg.Wait()

	next, _ := grid.FromCells(width, height, cells)
	return next
}

// Run applies Step the given number of times, checking ctx between
// generations and notifying observers of every state seen, the input
// included.
func (e *Engine) Run(ctx context.Context, g grid.Grid, steps int) (grid.Grid, error) {
	e.notify(0, g)
	for i := 1; i <= steps; i++ {
		select {
		case <-ctx.Done():
			return g, ctx.Err()
		default:
		}

		g = e.Step(g)
		e.notify(i, g)
	}
	return g, nil
}

func (e *Engine) notify(gen int, g grid.Grid) {
	for _, o := range e.observers {
		o.OnGeneration(gen, g)
	}
}
