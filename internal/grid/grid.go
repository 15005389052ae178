// Package grid holds the immutable cell field that every other package
// operates on. A Grid is a value: constructors and Set return fresh
// copies, so a caller can keep a reference to a previous generation
// without it changing underneath.
package grid

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// Grid is a finite two-dimensional field of boolean cells. Coordinates
// are (row, col) with row in [0,Height()) and col in [0,Width()).
type Grid struct {
	width  int
	height int
	cells  []bool
}

// New returns an all-dead grid of the given dimensions.
func New(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, errors.Wrapf(ErrInvalidDimension, "%dx%d", width, height)
	}
	return Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}, nil
}

// FromCells builds a grid from a row-major cell slice of length
// width*height. The slice is copied.
func FromCells(width, height int, cells []bool) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, errors.Wrapf(ErrInvalidDimension, "%dx%d", width, height)
	}
	if len(cells) != width*height {
		return Grid{}, errors.Wrapf(ErrInvalidDimension, "%d cells for a %dx%d grid", len(cells), width, height)
	}
	c := make([]bool, len(cells))
	copy(c, cells)
	return Grid{width: width, height: height, cells: c}, nil
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g Grid) Height() int { return g.height }

// Get returns the state of the cell at (row, col).
func (g Grid) Get(row, col int) (bool, error) {
	if !g.inBounds(row, col) {
		return false, errors.Wrapf(ErrOutOfBounds, "(%d,%d) in %dx%d grid", row, col, g.width, g.height)
	}
	return g.cells[row*g.width+col], nil
}

// Set returns a copy of the grid with the one cell at (row, col)
// replaced. The receiver is left untouched.
func (g Grid) Set(row, col int, alive bool) (Grid, error) {
	if !g.inBounds(row, col) {
		return Grid{}, errors.Wrapf(ErrOutOfBounds, "(%d,%d) in %dx%d grid", row, col, g.width, g.height)
	}
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	cells[row*g.width+col] = alive
	return Grid{width: g.width, height: g.height, cells: cells}, nil
}

// NeighborCount counts live cells among the 8 Moore-neighborhood
// positions of (row, col). Positions outside the grid are permanently
// dead: the topology is flat, not toroidal, so patterns reaching an
// edge lose cells rather than wrap around.
func (g Grid) NeighborCount(row, col int) (int, error) {
	if !g.inBounds(row, col) {
		return 0, errors.Wrapf(ErrOutOfBounds, "(%d,%d) in %dx%d grid", row, col, g.width, g.height)
	}

	minRow := max(0, row-1)
	maxRow := min(g.height-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.width-1, col+1)

	count := 0
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r*g.width+c] {
				count++
			}
		}
	}
	return count, nil
}

// Population returns the total number of live cells.
func (g Grid) Population() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Equal reports whether both grids have the same dimensions and the
// same state at every coordinate.
func (g Grid) Equal(other Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Hash returns an md5 digest of the cell bitmap, usable as a cheap
// identity for cycle detection.
func (g Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.width, g.height)
	for _, alive := range g.cells {
		if alive {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Alive reports the cell state at (row, col), treating every position
// outside the grid as dead. This is the accessor the step rule uses so
// it never has to special-case edges.
func (g Grid) Alive(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cells[row*g.width+col]
}

func (g Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}
