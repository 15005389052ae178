package config

import "sort"

// Named grid sizes offered when creating a fresh board.
var GridSizes = map[string]GridConfig{
	"small":  {Width: 10, Height: 10},
	"medium": {Width: 25, Height: 25},
	"large":  {Width: 50, Height: 50},
}

// GetSize returns the named grid size, or nil if unknown.
func GetSize(name string) *GridConfig {
	size, ok := GridSizes[name]
	if !ok {
		return nil
	}
	return &size
}

// ListSizes returns the available size names, sorted.
func ListSizes() []string {
	names := make([]string, 0, len(GridSizes))
	for name := range GridSizes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
