package engine

// nextState is the B3/S23 transition: a live cell survives with 2 or 3
// live neighbors, a dead cell is born with exactly 3.
func nextState(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
