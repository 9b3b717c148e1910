// internal/cli/usage.go
package cli

import (
	"errors"
	"fmt"
)

// usageError marks errors that should exit with the usage status (2)
// rather than the runtime status (1).
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// Usage wraps err as a usage error.
func Usage(err error) error {
	if err == nil {
		return nil
	}
	return usageError{err}
}

// Usagef builds a usage error from a format string.
func Usagef(format string, a ...any) error {
	return usageError{fmt.Errorf(format, a...)}
}

// IsUsage reports whether err is (or wraps) a usage error.
func IsUsage(err error) bool {
	var u usageError
	return errors.As(err, &u)
}
