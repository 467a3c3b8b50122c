// Package create provides the create command.
package create

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gdxinit/cli/internal/build"
	"github.com/gdxinit/cli/internal/cmdtypes"
	"github.com/gdxinit/cli/internal/cmdutil"
	"github.com/gdxinit/cli/internal/config"
	oerrors "github.com/gdxinit/cli/internal/errors"
	"github.com/gdxinit/cli/internal/output"
	"github.com/gdxinit/cli/internal/progress"
	"github.com/gdxinit/cli/internal/project"
	"github.com/gdxinit/cli/internal/templates"
	"github.com/gdxinit/cli/internal/version"
)

// NewCreateCmd creates the create command.
func NewCreateCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var flags cmdutil.CreateFlags

	c := &cobra.Command{
		Use:   "create <name>...",
		Short: "Create Godot projects with a Rust extension crate",
		Long: `Create one Godot project per name, each with a Rust GDExtension crate.

Every project gets:
  <name>/project.godot
  <name>/<name>.gdextension
  <name>/rust/Cargo.toml
  <name>/rust/.gitignore
  <name>/rust/src/lib.rs

Projects are created concurrently. An existing directory is never touched.

Examples:
  # Create a project in the current directory
  gdxinit create my_game

  # Create two projects and build their libraries right away
  gdxinit create --precompile my_game my_tool

  # Only ship Linux and Windows libraries
  gdxinit create --target linux.debug.x86_64 --target windows.debug.x86_64 my_game`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(c, args, cfg, &flags)
		},
	}

	flags.AddTo(c)

	return c
}

// creation pairs a project name with its in-flight creation.
type creation struct {
	name   string
	handle *project.Creation
	result *project.Result
	err    error
}

func runCreate(c *cobra.Command, names []string, cfg *cmdtypes.GlobalConfig, flags *cmdutil.CreateFlags) error {
	loader := config.NewLoader()
	if err := flags.Bind(loader, c); err != nil {
		return cmdutil.ToExitError(err, "")
	}
	settings, err := loader.Load(cfg.ConfigPath)
	if err != nil {
		return cmdutil.ToExitError(err, loader.Path())
	}
	if cfg.Verbose {
		config.LogResolvedValues(loader.Resolved())
	}

	if msg := version.CheckEngineVersion(settings.GodotVersion); msg != "" {
		output.Warn(msg)
	}
	cmdutil.WarnUnknownTargets(settings.Targets)

	store := templates.Load(settings.Templates)
	if store.Templates() == nil {
		output.Warn("templates unavailable", "path", store.Path(), "error", store.Err())
	}

	if settings.Precompile {
		if cargo := version.DetectCargo(settings.Cargo); !cargo.Compatible {
			output.Warn(cargo.Message)
		}
	}

	log := progress.New()
	invoker := build.NewInvoker(build.NewCommandCompiler(settings.Cargo))
	m := project.NewMaterializer(flags.Dir, invoker)

	creations := make([]*creation, 0, len(names))
	for _, name := range names {
		output.ProjectLogger(name).Debug("launching creation")
		creations = append(creations, &creation{
			name: name,
			handle: m.Launch(project.Request{
				Name:       name,
				Templates:  store.Templates(),
				Version:    settings.GodotVersion,
				Reloadable: settings.Reloadable,
				Targets:    settings.Targets,
				Precompile: settings.Precompile,
			}, log),
		})
	}

	var firstErr error
	var firstLoc string
	var tasks []*creation
	for _, cr := range creations {
		cr.result, cr.err = cr.handle.Wait()
		if cr.err != nil {
			output.ProjectLogger(cr.name).Debug("creation failed", "error", cr.err)
			if firstErr == nil {
				firstErr = cr.err
				firstLoc = filepath.Join(flags.Dir, cr.name)
			}
			continue
		}
		if cr.result.Build != nil {
			tasks = append(tasks, cr)
		}
	}

	output.Debug("creations finished", "projects", len(creations), "logEntries", log.Entries())

	text, offset := log.Since(0)
	cmdutil.PrintProgress(text)
	for _, cr := range creations {
		if cr.err == nil {
			output.Println("")
			output.Println(cmdutil.FileTree(cr.name, cr.result))
		}
	}

	if len(tasks) > 0 {
		buildErr := waitBuilds(tasks, log, offset)
		if firstErr == nil && buildErr != nil {
			firstErr = buildErr
		}
	}

	if firstErr != nil {
		return cmdutil.ToExitError(firstErr, firstLoc)
	}
	return nil
}

// waitBuilds waits for every background build, echoes the rest of the log
// and prints one summary line per project. It returns the first build failure.
func waitBuilds(tasks []*creation, log *progress.Log, offset int) error {
	title := fmt.Sprintf("Compiling %d Rust libraries...", len(tasks))
	if len(tasks) == 1 {
		title = "Compiling Rust library..."
	}

	err := output.RunWithSpinner(context.Background(), func() error {
		for _, cr := range tasks {
			cr.result.Build.Wait()
		}
		return nil
	}, output.WithTitle(title))
	if err != nil {
		output.Debug("spinner failed", "error", err)
	}

	outcomes := make([]build.Outcome, len(tasks))
	for i, cr := range tasks {
		outcomes[i] = finalOutcome(cr.result.Build)
	}

	text, _ := log.Since(offset)
	cmdutil.PrintProgress(text)

	output.Println("")
	var firstErr error
	for i, cr := range tasks {
		outcome := outcomes[i]
		output.Println(output.FormatStatusLine(cr.name, cmdutil.BuildStatus(outcome)))
		if outcome.Status == build.Failed && firstErr == nil {
			firstErr = outcome.Err
			if firstErr == nil {
				firstErr = oerrors.Wrap(oerrors.ErrBuildFailed, outcome.Reason)
			}
		}
	}

	return firstErr
}

// finalOutcome returns the outcome of t, blocking only if the spinner
// returned before t finished.
func finalOutcome(t *build.Task) build.Outcome {
	if outcome, finished := t.Outcome(); finished {
		return outcome
	}
	output.Debug("build still running after spinner returned")
	return t.Wait()
}
