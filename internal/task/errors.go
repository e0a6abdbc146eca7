package task

import (
	"errors"
	"fmt"
)

// FatalError marks a failure that must abort the whole run rather than
// continue to the next task: a required download that came back empty
// or failed with no fallback.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string { return e.Err.Error() }
func (e *FatalError) Unwrap() error { return e.Err }

// Fatalf builds a FatalError from a format string.
func Fatalf(format string, a ...any) error {
	return &FatalError{Err: fmt.Errorf(format, a...)}
}

// IsFatal reports whether err (or anything it wraps) is a FatalError.
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}
