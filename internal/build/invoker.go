package build

import (
	"context"
	"errors"
	"fmt"
	"os"

	oerrors "github.com/gdxinit/cli/internal/errors"
	"github.com/gdxinit/cli/internal/layout"
	"github.com/gdxinit/cli/internal/output"
	"github.com/gdxinit/cli/internal/progress"
	"github.com/gdxinit/cli/internal/target"
)

// Progress log lines written by a build task.
const (
	MsgCompiling     = "Compiling Rust library..."
	MsgSourceMissing = "Rust library file does not exist."
	MsgCompiled      = "Rust library compiled successfully.\nProject created successfully."
	MsgLaunchFailed  = "Failed to start cargo build process."
	MsgBuildFailed   = "Failed to compile Rust library."
)

// Invoker dispatches background builds of generated projects.
type Invoker struct {
	// Compiler runs the build. If nil, `cargo build` from PATH is used.
	Compiler Compiler
}

// NewInvoker returns an invoker using c.
func NewInvoker(c Compiler) *Invoker {
	return &Invoker{Compiler: c}
}

// InvokeAsync starts building the project at p on a new goroutine and returns
// immediately. Progress is reported only through log. The task is not
// cancellable and the wait on the build tool is unbounded.
func (i *Invoker) InvokeAsync(p layout.Project, targets []string, log *progress.Log) *Task {
	task := newTask()
	compiler := i.compiler()
	resolved := len(target.ResolveAll(targets, p.Name))

	go func() {
		log.Append(MsgCompiling)

		if _, err := os.Stat(p.LibSource()); err != nil || resolved == 0 {
			log.Append(MsgSourceMissing)
			task.finish(Outcome{
				Status: Failed,
				Reason: MsgSourceMissing,
				Err:    fmt.Errorf("%w: %s", oerrors.ErrLibrarySourceMissing, p.LibSource()),
			})
			return
		}

		output.Debug("starting build", "project", p.Name, "dir", p.SourceDir())
		err := compiler.Build(context.Background(), p.SourceDir())
		switch {
		case err == nil:
			log.Append(MsgCompiled)
			task.finish(Outcome{Status: Succeeded})
		case errors.Is(err, oerrors.ErrBuildLaunch):
			output.Debug("build launch failed", "project", p.Name, "error", err)
			log.Append(MsgLaunchFailed)
			task.finish(Outcome{Status: Failed, Reason: MsgLaunchFailed, Err: err})
		default:
			output.Debug("build failed", "project", p.Name, "error", err)
			log.Append(MsgBuildFailed)
			task.finish(Outcome{Status: Failed, Reason: MsgBuildFailed, Err: err})
		}
	}()

	return task
}

func (i *Invoker) compiler() Compiler {
	if i != nil && i.Compiler != nil {
		return i.Compiler
	}
	return NewCommandCompiler("")
}
