package cmdutil

import (
	"errors"

	oerrors "github.com/gdxinit/cli/internal/errors"
)

// hints gives actionable guidance per sentinel.
var hints = []struct {
	sentinel error
	kind     string
	hint     string
}{
	{oerrors.ErrEmptyName, "validation failed", "Pass a non-empty project name."},
	{oerrors.ErrAlreadyExists, "validation failed", "Choose a different name or remove the existing entry."},
	{oerrors.ErrFileExists, "validation failed", "Use --force to overwrite."},
	{oerrors.ErrTemplatesUnavailable, "templates unavailable", "Create one with 'gdxinit templates init' or pass --templates."},
	{oerrors.ErrFilesystemWrite, "filesystem write failed", "Check permissions and free space in the target directory."},
	{oerrors.ErrBuildLaunch, "build failed", "Install cargo or point --cargo at the binary."},
	{oerrors.ErrBuildFailed, "build failed", "Run 'cargo build' in rust/src to see the compiler output."},
	{oerrors.ErrLibrarySourceMissing, "build failed", "Select at least one known target with --target."},
	{oerrors.ErrValidation, "validation failed", ""},
	{oerrors.ErrNotFound, "not found", ""},
}

// ToExitError converts err into an ExitError carrying a DetailError for
// display. Errors that already are an ExitError or a DetailError keep their
// presentation. location names the file or directory involved, if any.
func ToExitError(err error, location string) error {
	if err == nil {
		return nil
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	code := oerrors.ExitCodeFromError(err)

	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		return oerrors.NewExitError(err, code)
	}

	detail = &oerrors.DetailError{
		Type:     "error",
		Message:  err.Error(),
		Location: location,
		Cause:    err,
	}
	for _, h := range hints {
		if errors.Is(err, h.sentinel) {
			detail.Type = h.kind
			detail.Hint = h.hint
			break
		}
	}

	return oerrors.NewExitError(detail, code)
}
