// Package viz renders grids and run summaries as styled text. Output
// is static: drawing to a terminal event loop is the caller's problem,
// not this package's.
package viz

import (
	"fmt"
	"strings"

	"github.com/shvets-d/lifelab/internal/grid"
)

const (
	aliveCell = "██"
	deadCell  = "··"
)

// RenderGrid draws the grid in a rounded frame, two characters per
// cell so the board is roughly square on screen.
func RenderGrid(g grid.Grid) string {
	var b strings.Builder
	for r := 0; r < g.Height(); r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.Width(); c++ {
			if g.Alive(r, c) {
				b.WriteString(aliveStyle.Render(aliveCell))
			} else {
				b.WriteString(deadStyle.Render(deadCell))
			}
		}
	}
	return Frame.Render(b.String())
}

// Summary renders a one-line description of a grid state.
func Summary(name string, g grid.Grid, generation int) string {
	parts := []string{
		Title.Render(name),
		Label.Render("size ") + Value.Render(fmt.Sprintf("%dx%d", g.Width(), g.Height())),
		Label.Render("alive ") + Value.Render(fmt.Sprintf("%d", g.Population())),
	}
	if generation > 0 {
		parts = append(parts, Label.Render("gen ")+Value.Render(fmt.Sprintf("%d", generation)))
	}
	return strings.Join(parts, "  ")
}

// Sparkline renders a population history as a compact bar strip,
// sampled down to the given width.
func Sparkline(values []int, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	bars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var b strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		v := values[i*step]
		idx := (v - lo) * (len(bars) - 1) / rng
		b.WriteRune(bars[idx])
	}
	return sparkStyle.Render(b.String())
}
