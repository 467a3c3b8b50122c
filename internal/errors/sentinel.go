package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrEmptyName indicates the project name was empty.
	ErrEmptyName = errors.New("project name cannot be empty")

	// ErrAlreadyExists indicates a filesystem entry with the project name already exists.
	ErrAlreadyExists = errors.New("project with this name already exists")

	// ErrTemplatesUnavailable indicates the template set could not be loaded.
	ErrTemplatesUnavailable = errors.New("templates are not available")

	// ErrFilesystemWrite indicates a directory or file could not be created.
	ErrFilesystemWrite = errors.New("filesystem write failed")

	// ErrLibrarySourceMissing indicates the generated library source is absent
	// or no selected target resolves, so no build can run.
	ErrLibrarySourceMissing = errors.New("library source missing")

	// ErrBuildLaunch indicates the build tool could not be started.
	ErrBuildLaunch = errors.New("build process could not be started")

	// ErrBuildFailed indicates the build tool exited with a non-zero status.
	ErrBuildFailed = errors.New("build process failed")

	// ErrValidation indicates invalid user input or an invalid document.
	ErrValidation = errors.New("validation error")

	// ErrFileExists indicates a file the CLI would write already exists.
	ErrFileExists = errors.New("file already exists")

	// ErrNotFound indicates a file or binary was not found.
	ErrNotFound = errors.New("not found")
)
