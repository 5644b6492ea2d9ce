package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the city table from the given paths. With no usable paths
	// the loader falls back to its built-in table.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
