// Package errors provides sentinel errors and structured error types for the seed CLI.
package errors

import (
	"fmt"
	"sort"
	"strings"
)

// DetailError captures structured error information for display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path or directory involved (optional).
	Location string

	// Field is the option name for validation errors (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewUsageError creates a usage error with details.
func NewUsageError(message, hint string) error {
	return &DetailError{
		Type:    "usage",
		Message: message,
		Hint:    hint,
		Cause:   ErrUsage,
	}
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, field, hint string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Field:   field,
		Hint:    hint,
		Cause:   ErrValidation,
	}
}

// NewIOError creates an IO error for the given path.
func NewIOError(op, path string, err error) error {
	return &DetailError{
		Type:     "io failed",
		Message:  fmt.Sprintf("%s %s: %v", op, path, err),
		Location: path,
		Cause:    fmt.Errorf("%w: %w", ErrIO, err),
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, hint string) error {
	return &DetailError{
		Type:    "not found",
		Message: message,
		Hint:    hint,
		Cause:   ErrNotFound,
	}
}

// ProcessError reports an external command that exited with a non-zero status.
type ProcessError struct {
	Program  string
	Args     []string
	Dir      string
	ExitCode int
	Stderr   string

	// Err is the error returned by the process runner.
	Err error
}

// Error implements the error interface.
func (e *ProcessError) Error() string {
	cmdline := strings.TrimSpace(e.Program + " " + strings.Join(e.Args, " "))
	msg := fmt.Sprintf("%s failed with exit code %d", cmdline, e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += "\n\tstderr: " + stderr
	}
	return msg
}

// Unwrap returns the runner error.
func (e *ProcessError) Unwrap() error {
	return e.Err
}

// Is reports ProcessError as ErrProcess.
func (e *ProcessError) Is(target error) bool {
	return target == ErrProcess
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
