package analysis

import (
	"context"
	"testing"

	"github.com/shvets-d/lifelab/internal/engine"
	"github.com/shvets-d/lifelab/internal/grid"
)

func mustGrid(t *testing.T, rows []string) grid.Grid {
	t.Helper()
	g, err := grid.New(len(rows[0]), len(rows))
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	for r, line := range rows {
		for c, ch := range line {
			if ch == '#' {
				g, _ = g.Set(r, c, true)
			}
		}
	}
	return g
}

func TestTracker_FixedPoint(t *testing.T) {
	block := mustGrid(t, []string{
		"....",
		".##.",
		".##.",
		"....",
	})

	e := engine.New(0)
	tr := NewTracker()
	e.AddObserver(tr)

	if _, err := e.Run(context.Background(), block, 5); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	start, period, ok := tr.Cycle()
	if !ok {
		t.Fatal("expected a cycle on a still life")
	}
	if start != 0 || period != 1 {
		t.Errorf("expected fixed point at generation 0, got start=%d period=%d", start, period)
	}
	if !tr.Settled() {
		t.Error("tracker should report the run as settled")
	}
}

func TestTracker_BlinkerPeriodTwo(t *testing.T) {
	blinker := mustGrid(t, []string{
		".....",
		"..#..",
		"..#..",
		"..#..",
		".....",
	})

	e := engine.New(0)
	tr := NewTracker()
	e.AddObserver(tr)

	if _, err := e.Run(context.Background(), blinker, 6); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	start, period, ok := tr.Cycle()
	if !ok {
		t.Fatal("expected a cycle on a blinker")
	}
	if start != 0 || period != 2 {
		t.Errorf("expected period 2 from generation 0, got start=%d period=%d", start, period)
	}
}

func TestTracker_TransientBeforeCycle(t *testing.T) {
	// A lone pair dies in one step; the empty grid then repeats, so
	// the cycle starts at generation 1 with period 1.
	pair := mustGrid(t, []string{
		"....",
		".##.",
		"....",
	})

	e := engine.New(0)
	tr := NewTracker()
	e.AddObserver(tr)

	if _, err := e.Run(context.Background(), pair, 4); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	start, period, ok := tr.Cycle()
	if !ok {
		t.Fatal("expected a cycle after extinction")
	}
	if start != 1 || period != 1 {
		t.Errorf("expected empty-grid fixed point from generation 1, got start=%d period=%d", start, period)
	}
}

func TestTracker_NoCycleYet(t *testing.T) {
	tr := NewTracker()
	g := mustGrid(t, []string{
		".#.",
		"..#",
		"###",
	})
	tr.OnGeneration(0, g)

	if tr.Settled() {
		t.Error("a single observation cannot be a cycle")
	}
	if _, _, ok := tr.Cycle(); ok {
		t.Error("expected no cycle after one observation")
	}
}

func TestTracker_Populations(t *testing.T) {
	pair := mustGrid(t, []string{
		"....",
		".##.",
		"....",
	})

	e := engine.New(0)
	tr := NewTracker()
	e.AddObserver(tr)

	if _, err := e.Run(context.Background(), pair, 2); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	pops := tr.Populations()
	want := []int{2, 0, 0}
	if len(pops) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(pops))
	}
	for i := range want {
		if pops[i] != want[i] {
			t.Errorf("generation %d: expected population %d, got %d", i, want[i], pops[i])
		}
	}
	if tr.Generations() != 3 {
		t.Errorf("expected 3 observed generations, got %d", tr.Generations())
	}
}
