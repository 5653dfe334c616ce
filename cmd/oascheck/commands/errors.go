package commands

import (
	"errors"

	"github.com/erraggy/oascheck/oaserrors"
)

// Exit codes
const (
	ExitOK     = 0
	ExitFailed = 1
	ExitUsage  = 2
)

// errValidationFailed is returned when at least one file did not pass.
// The report has already been written, so nothing else is printed.
var errValidationFailed = errors.New("validation failed")

// usageError marks a bad command line.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

// ExitCode maps a command error to a process exit status.
func ExitCode(err error) int {
	var usage usageError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errValidationFailed):
		return ExitFailed
	case errors.As(err, &usage), errors.Is(err, oaserrors.ErrConfig):
		return ExitUsage
	default:
		return ExitFailed
	}
}
