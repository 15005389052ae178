package preset

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/shvets-d/lifelab/internal/grid"
)

// Built-in presets. Each pattern is the canonical published layout,
// padded with dead margin so its evolution is not clipped by the grid
// boundary: the pulsar grows one cell past its 13x13 box while
// oscillating, and the gun needs room below and to the right for the
// gliders it emits.
const gliderPattern = `
......
..#...
...#..
.###..
......
......
`

const pulsarPattern = `
.................
.................
....###...###....
.................
..#....#.#....#..
..#....#.#....#..
..#....#.#....#..
....###...###....
.................
....###...###....
..#....#.#....#..
..#....#.#....#..
..#....#.#....#..
.................
....###...###....
.................
.................
`

const gosperGliderGunPattern = `
............................................
............................................
............................................
...........................#................
.........................#.#................
...............##......##............##.....
..............#...#....##............##.....
...##........#.....#...##...................
...##........#...#.##....#.#................
.............#.....#.......#................
..............#...#.........................
...............##...........................
............................................
............................................
............................................
............................................
............................................
............................................
............................................
............................................
............................................
............................................
............................................
............................................
............................................
............................................
............................................
............................................
............................................
............................................
`

var builtins = map[string]string{
	"glider":            gliderPattern,
	"gosper_glider_gun": gosperGliderGunPattern,
	"pulsar":            pulsarPattern,
}

// BuiltinNames returns the names of the presets that ship with the
// application, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsBuiltin reports whether name refers to a shipped preset.
func IsBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

func builtinGrid(name string) (grid.Grid, error) {
	pattern, ok := builtins[name]
	if !ok {
		return grid.Grid{}, errors.Wrapf(ErrNotFound, "%q", name)
	}
	g, err := Unmarshal([]byte(strings.TrimPrefix(pattern, "\n")))
	if err != nil {
		return grid.Grid{}, errors.WithMessagef(err, "built-in preset %q", name)
	}
	return g, nil
}
