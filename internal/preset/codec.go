package preset

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"

	"github.com/shvets-d/lifelab/internal/grid"
)

// Preset text format: one row per line, '#' for a live cell, '.' for a
// dead one. Dimensions are implicit: height is the line count, width
// the line length, and every line must have the same length.
const (
	aliveChar = '#'
	deadChar  = '.'
)

// Marshal encodes a grid in the preset text format.
func Marshal(g grid.Grid) []byte {
	var buf bytes.Buffer
	buf.Grow((g.Width() + 1) * g.Height())
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			if g.Alive(r, c) {
				buf.WriteByte(aliveChar)
			} else {
				buf.WriteByte(deadChar)
			}
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Unmarshal parses preset text into a grid. It returns ErrCorrupt for
// empty input, ragged rows, or unknown characters, never a partially
// filled grid.
func Unmarshal(data []byte) (grid.Grid, error) {
	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return grid.Grid{}, errors.Wrap(ErrCorrupt, "empty input")
	}

	lines := strings.Split(text, "\n")
	width := len(lines[0])
	cells := make([]bool, 0, width*len(lines))

	for i, line := range lines {
		if len(line) != width {
			return grid.Grid{}, errors.Wrapf(ErrCorrupt, "line %d is %d chars, expected %d", i+1, len(line), width)
		}
		for j := 0; j < len(line); j++ {
			switch line[j] {
			case aliveChar:
				cells = append(cells, true)
			case deadChar:
				cells = append(cells, false)
			default:
				return grid.Grid{}, errors.Wrapf(ErrCorrupt, "line %d: unexpected character %q", i+1, line[j])
			}
		}
	}

	g, err := grid.FromCells(width, len(lines), cells)
	if err != nil {
		return grid.Grid{}, errors.Wrap(ErrCorrupt, err.Error())
	}
	return g, nil
}
