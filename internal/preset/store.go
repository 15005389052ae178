// Package preset persists named grid snapshots. Three built-in
// patterns always exist; user presets are text files in a writable
// directory and may shadow a built-in name.
package preset

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/shvets-d/lifelab/internal/grid"
)

const fileExt = ".cells"

// Info describes one stored preset.
type Info struct {
	Name       string
	Width      int
	Height     int
	Population int
	Builtin    bool
}

// Store reads and writes presets under a single directory.
type Store struct {
	dir string
}

// New returns a store over the given preset directory. The directory
// is created lazily on the first Save (or eagerly by Init).
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Init creates the preset directory if it does not exist.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return errors.Wrapf(ErrPersistence, "create %s: %v", s.dir, err)
	}
	return nil
}

// List returns the built-ins plus every parseable user preset, sorted
// by name. A user preset shadowing a built-in name is listed once, as
// the user version.
func (s *Store) List() ([]Info, error) {
	byName := make(map[string]Info)

	for _, name := range BuiltinNames() {
		g, err := builtinGrid(name)
		if err != nil {
			return nil, err
		}
		byName[name] = Info{
			Name:       name,
			Width:      g.Width(),
			Height:     g.Height(),
			Population: g.Population(),
			Builtin:    true,
		}
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(ErrPersistence, "read %s: %v", s.dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExt) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), fileExt)

		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			continue
		}
		g, err := Unmarshal(data)
		if err != nil {
			// Unparseable files stay on disk but are not listed.
			continue
		}
		byName[name] = Info{
			Name:       name,
			Width:      g.Width(),
			Height:     g.Height(),
			Population: g.Population(),
			Builtin:    false,
		}
	}

	infos := make([]Info, 0, len(byName))
	for _, info := range byName {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// Load returns the grid stored under name, preferring a user preset
// over a built-in of the same name.
func (s *Store) Load(name string) (grid.Grid, error) {
	if err := validateName(name); err != nil {
		return grid.Grid{}, errors.Wrapf(ErrNotFound, "%q: %v", name, err)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name+fileExt))
	if err != nil {
		if os.IsNotExist(err) {
			if IsBuiltin(name) {
				return builtinGrid(name)
			}
			return grid.Grid{}, errors.Wrapf(ErrNotFound, "%q", name)
		}
		return grid.Grid{}, errors.Wrapf(ErrPersistence, "read preset %q: %v", name, err)
	}

	g, err := Unmarshal(data)
	if err != nil {
		return grid.Grid{}, errors.WithMessagef(err, "preset %q", name)
	}
	return g, nil
}

// Save writes or overwrites the named user preset. The write is
// all-or-nothing: data goes to a temp file in the same directory which
// is renamed over the destination, so a failed write never clobbers a
// previously good preset.
func (s *Store) Save(name string, g grid.Grid) error {
	if err := validateName(name); err != nil {
		return errors.Wrapf(ErrPersistence, "%q: %v", name, err)
	}
	if err := s.Init(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		return errors.Wrapf(ErrPersistence, "create temp file for %q: %v", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(Marshal(g)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(ErrPersistence, "write preset %q: %v", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(ErrPersistence, "close preset %q: %v", name, err)
	}

	if err := os.Rename(tmpName, filepath.Join(s.dir, name+fileExt)); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(ErrPersistence, "rename preset %q into place: %v", name, err)
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return errors.New("empty name")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return errors.Errorf("invalid name %q", name)
	}
	return nil
}
