package fixture

import (
	"errors"
	"fmt"
)

var (
	// ErrResourceUnavailable is matched by errors returned from Open when the
	// named input could not be located or read.
	ErrResourceUnavailable = errors.New("resource unavailable")

	// ErrLineConversion is matched by errors returned from Parse when a line
	// could not be converted to the requested type.
	ErrLineConversion = errors.New("line conversion failed")
)

// ResourceError reports a failure to resolve a fixture by name.
type ResourceError struct {
	Name string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("fixture %q: %v: %v", e.Name, ErrResourceUnavailable, e.Err)
}

func (e *ResourceError) Unwrap() []error {
	return []error{ErrResourceUnavailable, e.Err}
}

// LineError reports the first line Parse could not convert.
type LineError struct {
	// Index is the 0-based position of the line among those consumed by Parse.
	Index int

	// Line is the raw line text.
	Line string

	Err error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%v: line %d %q: %v", ErrLineConversion, e.Index, e.Line, e.Err)
}

func (e *LineError) Unwrap() []error {
	return []error{ErrLineConversion, e.Err}
}
