package dataset

import "fmt"

// LoadError reports a city source that could not be read or is malformed.
type LoadError struct {
	City string
	Path string
	Err  error
}

// Error implements the error interface for LoadError.
func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load trips for %q from %s: %v", e.City, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}
