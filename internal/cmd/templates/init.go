package templates

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gdxinit/cli/internal/cmdtypes"
	"github.com/gdxinit/cli/internal/cmdutil"
	oerrors "github.com/gdxinit/cli/internal/errors"
	"github.com/gdxinit/cli/internal/output"
	"github.com/gdxinit/cli/internal/templates"
)

// NewInitCmd creates the templates init command.
func NewInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the bundled default templates file",
		Long: `Write the bundled default templates to path, or to the configured
templates file when no path is given.

Examples:
  gdxinit templates init
  gdxinit templates init ./my-templates.yaml --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runInit(templatesPath(cfg, args), force)
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return c
}

func runInit(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return cmdutil.ToExitError(fmt.Errorf("%w: %s", oerrors.ErrFileExists, path), path)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return cmdutil.ToExitError(fmt.Errorf("%w: %v", oerrors.ErrFilesystemWrite, err), dir)
		}
	}
	if err := os.WriteFile(path, templates.DefaultYAML(), 0o644); err != nil {
		return cmdutil.ToExitError(fmt.Errorf("%w: %v", oerrors.ErrFilesystemWrite, err), path)
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Wrote templates to %s", path)))
	return nil
}
