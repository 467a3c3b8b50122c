// Package build compiles a generated crate in the background and reports
// progress into a shared log.
package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	oerrors "github.com/gdxinit/cli/internal/errors"
)

// Compiler builds the crate whose sources live in dir.
type Compiler interface {
	Build(ctx context.Context, dir string) error
}

// CommandCompiler runs an external build tool, `cargo build` by default.
// Only the exit status is inspected.
type CommandCompiler struct {
	// Path is the build tool binary. If empty, "cargo" is used from PATH.
	Path string

	// Args are the arguments passed to the tool. If empty, "build" is used.
	Args []string

	// Stdout receives the tool's standard output. If nil, it is discarded.
	Stdout io.Writer

	// Stderr receives the tool's standard error. If nil, it is discarded.
	Stderr io.Writer
}

// NewCommandCompiler returns a compiler running `<path> build`.
func NewCommandCompiler(path string) *CommandCompiler {
	return &CommandCompiler{Path: path}
}

// Build runs the tool in dir and waits for it to exit.
// A start failure wraps ErrBuildLaunch; a non-zero exit wraps ErrBuildFailed.
func (c *CommandCompiler) Build(ctx context.Context, dir string) error {
	args := c.args()
	cmd := exec.CommandContext(ctx, c.path(), args...)
	cmd.Dir = dir
	cmd.Stdout = c.stdout()
	cmd.Stderr = c.stderr()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %s %s: %v", oerrors.ErrBuildLaunch, c.path(), strings.Join(args, " "), err)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: %s %s exited with code %d",
				oerrors.ErrBuildFailed, c.path(), strings.Join(args, " "), exitErr.ExitCode())
		}
		return fmt.Errorf("%w: %s %s: %v", oerrors.ErrBuildFailed, c.path(), strings.Join(args, " "), err)
	}

	return nil
}

func (c *CommandCompiler) path() string {
	if c.Path != "" {
		return c.Path
	}
	return "cargo"
}

func (c *CommandCompiler) args() []string {
	if len(c.Args) > 0 {
		return c.Args
	}
	return []string{"build"}
}

func (c *CommandCompiler) stdout() io.Writer {
	if c.Stdout != nil {
		return c.Stdout
	}
	return io.Discard
}

func (c *CommandCompiler) stderr() io.Writer {
	if c.Stderr != nil {
		return c.Stderr
	}
	return io.Discard
}
