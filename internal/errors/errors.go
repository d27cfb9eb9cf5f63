// Package errors provides sentinel errors for the solforge CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a project name or option value failed validation.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a template identifier is not registered.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateTemplate indicates a template identifier was registered twice.
	ErrDuplicateTemplate = errors.New("duplicate template")

	// ErrPathCollision indicates the destination directory already exists.
	ErrPathCollision = errors.New("path collision")

	// ErrToolNotInstalled indicates the package manager binary is not in PATH.
	ErrToolNotInstalled = errors.New("tool not installed")

	// ErrInstall indicates the dependency installation process failed.
	ErrInstall = errors.New("dependency install failed")
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory path involved (optional).
	Location string

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
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
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

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
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

// NewPathCollisionError creates a path collision error for an existing destination.
func NewPathCollisionError(path string) error {
	return &DetailError{
		Type:     "path collision",
		Message:  fmt.Sprintf("destination %s already exists", path),
		Location: path,
		Hint:     "Choose a different project name or remove the existing directory.",
		Cause:    ErrPathCollision,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
