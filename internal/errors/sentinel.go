package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrUsage indicates bad or missing command-line arguments.
	ErrUsage = errors.New("usage error")

	// ErrValidation indicates a value rejected by a field validator.
	ErrValidation = errors.New("validation error")

	// ErrProcess indicates an external command exited unsuccessfully.
	ErrProcess = errors.New("process error")

	// ErrIO indicates a file could not be read or written.
	ErrIO = errors.New("io error")

	// ErrNotFound indicates a required binary or file was not found.
	ErrNotFound = errors.New("not found")
)
