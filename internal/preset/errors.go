package preset

import "github.com/pkg/errors"

// Domain errors for preset access and persistence.
var (
	// ErrNotFound indicates no preset with the requested name exists.
	ErrNotFound = errors.New("preset: not found")

	// ErrCorrupt indicates persisted data that cannot be parsed into a
	// valid grid.
	ErrCorrupt = errors.New("preset: corrupt data")

	// ErrPersistence indicates an underlying storage failure. The
	// previously stored preset, if any, is left intact.
	ErrPersistence = errors.New("preset: persistence failure")
)
