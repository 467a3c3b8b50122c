// Package errors provides the error taxonomy for gdxinit.
//
// Engine packages (project, build, templates, config) return sentinels
// wrapped with fmt.Errorf. The command layer turns them into a DetailError
// for the terminal and an ExitError carrying the process exit code.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// DetailError is a failed create, templates or config operation as shown on
// the terminal: a category line, the project directory or file involved, the
// message and an optional hint such as "Use --force to overwrite.".
type DetailError struct {
	// Type is the category line, e.g. "validation failed" or "build failed".
	Type string

	// Message is the specific description. Progress logs show only this part.
	Message string

	// Location is the project root, templates file or config file involved.
	Location string

	// Context holds extra key-value lines, printed below Location.
	Context map[string]string

	// Hint tells the user which flag or command fixes the problem.
	Hint string

	// Cause is the wrapped sentinel chain; errors.Is sees through it.
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

// NewValidationError reports bad input from the command line or a
// templates/config file. It maps to exit code 2.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// Wrap prefixes sentinel with message, keeping it matchable by errors.Is.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// Summary returns a single-line description of err, suitable for progress logs.
// For a DetailError it returns the message; otherwise the error text.
func Summary(err error) string {
	if err == nil {
		return ""
	}
	var detail *DetailError
	if errors.As(err, &detail) {
		return detail.Message
	}
	return err.Error()
}
