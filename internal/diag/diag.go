// Package diag defines the fatal error kinds reported while expanding
// generated regions, together with the single tagged error type that carries
// the file and line where the failure was detected.
package diag

import (
	"errors"
	"fmt"
)

// Sentinel errors for marker and fragment failures. Callers should use
// errors.Is to classify a failure and errors.As to reach the location.
var (
	ErrUnclosedMarker        = errors.New("template was opened and not closed again")
	ErrUnknownFragment       = errors.New("no template found with name")
	ErrAmbiguousFragment     = errors.New("several templates match name")
	ErrUnresolvedPlaceholder = errors.New("template is missing parameter")
	ErrMalformedMarker       = errors.New("malformed marker")
)

// Error ties a sentinel error to the target file and 1-indexed line of the
// marker being processed. Name is the offending fragment name or token and may
// be empty.
type Error struct {
	File string
	Line int
	Name string
	Err  error
}

// New creates a located error.
func New(file string, line int, name string, err error) *Error {
	return &Error{File: file, Line: line, Name: name, Err: err}
}

// Error renders a single diagnostic line: "file:line: cause name".
func (e *Error) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v %s", e.File, e.Line, e.Err, e.Name)
}

// Unwrap returns the wrapped sentinel for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Err }

// Compile-time check that Error implements error.
var _ error = (*Error)(nil)

// Locate fills in File and Line on err if it is (or wraps) an *Error that has
// no location yet, so lower layers can report the cause and let the scanner
// attach the position. Any other error is wrapped with the location.
func Locate(err error, file string, line int) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		if de.File == "" {
			de.File = file
		}
		if de.Line == 0 {
			de.Line = line
		}
		return de
	}
	return fmt.Errorf("%s:%d: %w", file, line, err)
}
