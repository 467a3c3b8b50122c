package templates

import (
	"github.com/spf13/cobra"

	"github.com/gdxinit/cli/internal/cmdtypes"
	"github.com/gdxinit/cli/internal/cmdutil"
	"github.com/gdxinit/cli/internal/output"
	"github.com/gdxinit/cli/internal/templates"
)

// NewDiffCmd creates the templates diff command.
func NewDiffCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "diff [path]",
		Short: "Show how a templates file differs from the defaults",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runDiff(templatesPath(cfg, args))
		},
	}
}

func runDiff(path string) error {
	data, err := readTemplates(path)
	if err != nil {
		return err
	}

	diff, err := templates.DiffAgainstDefault(path, data, output.IsTTY())
	if err != nil {
		return cmdutil.ToExitError(err, path)
	}

	if diff == "" {
		output.Println("No differences from the default templates.")
		return nil
	}
	output.Print(diff)
	return nil
}
