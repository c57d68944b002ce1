package cli

import (
	"errors"

	"github.com/runoshun/lasgrid-shim/internal/domain"
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Err  error
	Code int
	// Reported is set when the failure has already been written to the host channel.
	Reported bool
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return "exit status 1"
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitStatus returns the exit code for err and whether it still needs to be printed.
func ExitStatus(err error) (code int, show bool) {
	if err == nil {
		return 0, false
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.Code
		if code <= 0 {
			code = 1
		}
		return code, !exitErr.Reported
	}
	return 1, true
}

// runFailure wraps an error returned by the RunGrid use case.
// Missing tools, failed runs and invalid parameters have been reported already.
func runFailure(err error) error {
	if errors.Is(err, domain.ErrToolNotFound) ||
		errors.Is(err, domain.ErrToolFailed) ||
		errors.Is(err, domain.ErrInvalidArgument) {
		return &ExitError{Code: 1, Err: err, Reported: true}
	}
	return &ExitError{Code: 1, Err: err}
}
