package pipeline

import (
	"errors"
	"fmt"
)

// fatalError marks a job failure that retrying cannot fix: malformed
// input, a missing document, a validation failure. The worker drops the
// job instead of leaving it for the reaper.
type fatalError struct {
	err error
}

func (e *fatalError) Error() string { return e.err.Error() }
func (e *fatalError) Unwrap() error { return e.err }

// Fatal wraps err as non-retryable.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &fatalError{err: err}
}

// Fatalf formats a non-retryable error.
func Fatalf(format string, args ...any) error {
	return &fatalError{err: fmt.Errorf(format, args...)}
}

// IsFatal reports whether err is non-retryable.
func IsFatal(err error) bool {
	var fe *fatalError
	return errors.As(err, &fe)
}
