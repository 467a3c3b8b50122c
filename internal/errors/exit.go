package errors

import "errors"

// Process exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid input: an empty or taken project
	// name, an invalid flag or document.
	ExitValidationError = 2

	// ExitTemplatesUnavailable indicates the template set could not be loaded.
	ExitTemplatesUnavailable = 3

	// ExitFilesystemError indicates a directory or file could not be written.
	ExitFilesystemError = 4

	// ExitBuildFailed indicates an awaited background build did not succeed.
	ExitBuildFailed = 5
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitTemplatesUnavailable:
		return "Templates Unavailable"
	case ExitFilesystemError:
		return "Filesystem Error"
	case ExitBuildFailed:
		return "Build Failed"
	default:
		return "Unknown"
	}
}

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed is set when the command already reported the error, so main
	// only needs to exit.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return ExitCodeName(e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the exit code for err.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrEmptyName),
		errors.Is(err, ErrAlreadyExists),
		errors.Is(err, ErrFileExists),
		errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrTemplatesUnavailable):
		return ExitTemplatesUnavailable
	case errors.Is(err, ErrFilesystemWrite):
		return ExitFilesystemError
	case errors.Is(err, ErrBuildFailed),
		errors.Is(err, ErrBuildLaunch),
		errors.Is(err, ErrLibrarySourceMissing):
		return ExitBuildFailed
	default:
		return ExitGeneralError
	}
}
