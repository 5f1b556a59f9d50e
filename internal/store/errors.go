package store

import (
	"errors"
	"fmt"
)

// LoadError describes a persistence file that could not be read or parsed.
// Load logs it and falls back to defaults; it is never returned to callers.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError describes a failed write of the persistence file
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("cannot save to %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// IsSaveError reports whether err is or wraps a SaveError
func IsSaveError(err error) bool {
	var e *SaveError
	return errors.As(err, &e)
}
