// Package analysis characterizes the temporal behavior of a run:
// population over time, and detection of fixed points and cycles. A
// pattern that recurs is classified by its period: period 1 is a still
// life, anything longer an oscillator (or a spaceship on a bounded
// grid, until it reaches the edge).
package analysis

import "github.com/shvets-d/lifelab/internal/grid"

// Tracker records every generation it observes. It implements
// engine.Observer and detects the first recurrence of a previously
// seen state.
type Tracker struct {
	populations []int
	hashes      []string
	firstSeen   map[string]int

	cycleStart  int
	cyclePeriod int
	cycleFound  bool
}

func NewTracker() *Tracker {
	return &Tracker{firstSeen: make(map[string]int)}
}

// OnGeneration records one state. Generations must be fed in order,
// starting with the initial grid.
func (t *Tracker) OnGeneration(gen int, g grid.Grid) {
	t.populations = append(t.populations, g.Population())

	h := g.Hash()
	if !t.cycleFound {
		if first, ok := t.firstSeen[h]; ok {
			t.cycleStart = first
			t.cyclePeriod = len(t.hashes) - first
			t.cycleFound = true
		} else {
			t.firstSeen[h] = len(t.hashes)
		}
	}
	t.hashes = append(t.hashes, h)
}

// Generations returns how many states have been observed, the initial
// one included.
func (t *Tracker) Generations() int {
	return len(t.hashes)
}

// Populations returns the live-cell count of every observed state.
func (t *Tracker) Populations() []int {
	out := make([]int, len(t.populations))
	copy(out, t.populations)
	return out
}

// Cycle reports the first detected recurrence: the generation the
// repeated state first appeared at, and the period of the repetition.
// A period of 1 is a fixed point.
func (t *Tracker) Cycle() (start, period int, ok bool) {
	if !t.cycleFound {
		return 0, 0, false
	}
	return t.cycleStart, t.cyclePeriod, true
}

// Settled reports whether the run has entered a cycle or fixed point.
func (t *Tracker) Settled() bool {
	return t.cycleFound
}
