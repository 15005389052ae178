package engine

import (
	"context"
	"testing"

	"github.com/shvets-d/lifelab/internal/grid"
)

// mustGrid builds a grid from rows of '#' (alive) and '.' (dead).
func mustGrid(t *testing.T, rows []string) grid.Grid {
	t.Helper()
	g, err := grid.New(len(rows[0]), len(rows))
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	for r, line := range rows {
		for c, ch := range line {
			if ch == '#' {
				g, err = g.Set(r, c, true)
				if err != nil {
					t.Fatalf("set (%d,%d): %v", r, c, err)
				}
			}
		}
	}
	return g
}

func TestStep_Determinism(t *testing.T) {
	g := mustGrid(t, []string{
		"..#..",
		"#.#.#",
		".##..",
		"#...#",
		".###.",
	})

	e := New(0)
	a := e.Step(g)
	b := e.Step(g)

	if !a.Equal(b) {
		t.Error("two steps over the same input must produce equal grids")
	}
}

func TestStep_DimensionsPreserved(t *testing.T) {
	g, _ := grid.New(7, 4)
	next := New(0).Step(g)

	if next.Width() != 7 || next.Height() != 4 {
		t.Errorf("expected 7x4 output, got %dx%d", next.Width(), next.Height())
	}
}

func TestStep_BlockStillLife(t *testing.T) {
	g := mustGrid(t, []string{
		"....",
		".##.",
		".##.",
		"....",
	})

	next := New(0).Step(g)
	if !next.Equal(g) {
		t.Error("a block is a fixed point, step must not change it")
	}
}

func TestStep_BlinkerOscillates(t *testing.T) {
	vertical := mustGrid(t, []string{
		".....",
		"..#..",
		"..#..",
		"..#..",
		".....",
	})
	horizontal := mustGrid(t, []string{
		".....",
		".....",
		".###.",
		".....",
		".....",
	})

	e := New(0)
	if got := e.Step(vertical); !got.Equal(horizontal) {
		t.Error("vertical blinker should turn horizontal")
	}
	if got := e.Step(horizontal); !got.Equal(vertical) {
		t.Error("horizontal blinker should turn vertical")
	}
}

func TestStep_Underpopulation(t *testing.T) {
	g := mustGrid(t, []string{
		"...",
		".#.",
		"...",
	})

	next := New(0).Step(g)
	if next.Population() != 0 {
		t.Error("an isolated live cell must die")
	}
}

func TestStep_Overpopulation(t *testing.T) {
	// Center cell has 4 live neighbors.
	g := mustGrid(t, []string{
		".#.",
		"###",
		".#.",
	})

	next := New(0).Step(g)
	if next.Alive(1, 1) {
		t.Error("a live cell with 4 neighbors must die")
	}
}

func TestStep_Reproduction(t *testing.T) {
	// (1,1) is dead with exactly 3 live neighbors.
	three := mustGrid(t, []string{
		"#.#",
		"...",
		".#.",
	})
	next := New(0).Step(three)
	if !next.Alive(1, 1) {
		t.Error("a dead cell with 3 neighbors must come alive")
	}

	// Same corner layout minus one cell: 2 neighbors, stays dead.
	two := mustGrid(t, []string{
		"#.#",
		"...",
		"...",
	})
	next = New(0).Step(two)
	if next.Alive(1, 1) {
		t.Error("a dead cell with 2 neighbors must stay dead")
	}

	// 4 neighbors, stays dead.
	four := mustGrid(t, []string{
		"#.#",
		"...",
		"#.#",
	})
	next = New(0).Step(four)
	if next.Alive(1, 1) {
		t.Error("a dead cell with 4 neighbors must stay dead")
	}
}

func TestStep_GliderTranslation(t *testing.T) {
	g := mustGrid(t, []string{
		".#....",
		"..#...",
		"###...",
		"......",
		"......",
		"......",
	})
	want := mustGrid(t, []string{
		"......",
		"..#...",
		"...#..",
		".###..",
		"......",
		"......",
	})

	e := New(0)
	got := g
	for i := 0; i < 4; i++ {
		got = e.Step(got)
	}

	if !got.Equal(want) {
		t.Error("after 4 steps the glider should be the original shape shifted by (1,1)")
	}
}

func TestStep_EdgeCellsAreLost(t *testing.T) {
	// A horizontal blinker on the top row: with a flat (non-toroidal)
	// boundary the end cells die and only one cell is born below, so
	// the pattern decays instead of oscillating.
	g := mustGrid(t, []string{
		"###",
		"...",
		"...",
	})

	next := New(0).Step(g)
	want := mustGrid(t, []string{
		".#.",
		".#.",
		"...",
	})
	if !next.Equal(want) {
		t.Error("boundary must be treated as permanently dead")
	}
}

func TestStep_WorkerCountsAgree(t *testing.T) {
	g := mustGrid(t, []string{
		"..#..#..",
		"#.##.#.#",
		".#..##..",
		"#..#...#",
		".##..##.",
	})

	want := New(1).Step(g)
	for workers := 2; workers <= 6; workers++ {
		got := New(workers).Step(g)
		if !got.Equal(want) {
			t.Errorf("workers=%d produced a different generation", workers)
		}
	}
}

func TestRun_ContextCancel(t *testing.T) {
	g, _ := grid.New(10, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(0).Run(ctx, g, 100)
	if err == nil {
		t.Error("expected context error from canceled run")
	}
}

type recorder struct {
	gens []int
}

func (r *recorder) OnGeneration(gen int, g grid.Grid) {
	r.gens = append(r.gens, gen)
}

func TestRun_NotifiesObservers(t *testing.T) {
	g := mustGrid(t, []string{
		".#.",
		".#.",
		".#.",
	})

	e := New(0)
	rec := &recorder{}
	e.AddObserver(rec)

	if _, err := e.Run(context.Background(), g, 3); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(rec.gens) != 4 {
		t.Fatalf("expected 4 notifications (gen 0..3), got %d", len(rec.gens))
	}
	for i, gen := range rec.gens {
		if gen != i {
			t.Errorf("notification %d carried generation %d", i, gen)
		}
	}
}
