package portfolio

import (
	"errors"
	"fmt"
)

var (
	// ErrLoad matches every *LoadError.
	ErrLoad = errors.New("portfolio: language document load failed")

	// ErrResourceNotFound is reported by sources for missing documents.
	ErrResourceNotFound = errors.New("portfolio: resource not found")

	// ErrDecode marks documents that could not be parsed.
	ErrDecode = errors.New("portfolio: invalid language document")

	ErrInvalidLanguages = errors.New("portfolio: invalid language set")
)

// LoadError describes a failed document load.
type LoadError struct {
	Err  error
	Lang Code
	Path string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s (%s): %v", e.Path, e.Lang, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrLoad) true for any LoadError.
func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// AsLoadError extracts a *LoadError from err.
func AsLoadError(err error) (*LoadError, bool) {
	var le *LoadError
	if errors.As(err, &le) {
		return le, true
	}
	return nil, false
}
