package errors

import "errors"

// Exit codes returned by the seed binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates an option value was rejected.
	ExitValidationError = 2

	// ExitUsageError indicates bad or missing command-line arguments.
	ExitUsageError = 3

	// ExitProcessError indicates an external command failed.
	ExitProcessError = 4

	// ExitIOError indicates a file read or write failed.
	ExitIOError = 5

	// ExitNotFound indicates a required binary or file is missing.
	ExitNotFound = 6
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Code int
	Err  error

	// Printed is true when the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrProcess):
		return ExitProcessError
	case errors.Is(err, ErrIO):
		return ExitIOError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitUsageError:
		return "Usage Error"
	case ExitProcessError:
		return "Process Error"
	case ExitIOError:
		return "IO Error"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
