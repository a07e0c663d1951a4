package scanner

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Every error returned by this package wraps exactly
// one of them.
var (
	ErrNotFound   = errors.New("directory not found")
	ErrPermission = errors.New("permission denied")
	ErrWrite      = errors.New("write failed")
)

// ScanError carries the failing path and the underlying cause.
type ScanError struct {
	Kind error
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	switch e.Kind {
	case ErrPermission:
		return fmt.Sprintf("permission denied accessing %s", e.Path)
	case ErrWrite:
		if e.Err != nil {
			return fmt.Sprintf("writing to file %s: %v", e.Path, e.Err)
		}
		return fmt.Sprintf("writing to file %s", e.Path)
	default:
		return fmt.Sprintf("directory not found at: %s", e.Path)
	}
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *ScanError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
