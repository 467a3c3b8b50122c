package templates

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gdxinit/cli/internal/cmdtypes"
	"github.com/gdxinit/cli/internal/cmdutil"
	oerrors "github.com/gdxinit/cli/internal/errors"
	"github.com/gdxinit/cli/internal/output"
	"github.com/gdxinit/cli/internal/templates"
)

// NewVetCmd creates the templates vet command.
func NewVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet [path]",
		Short: "Validate a templates file",
		Long: `Validate a templates file against the templates schema.

Every problem is listed with the key it concerns. Exits with code 2 when the
file is invalid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runVet(templatesPath(cfg, args))
		},
	}
}

func runVet(path string) error {
	data, err := readTemplates(path)
	if err != nil {
		return err
	}

	result, err := templates.Validate(data)
	if err != nil {
		return cmdutil.ToExitError(
			oerrors.NewValidationError(err.Error(), path, "Check the file is well-formed YAML."), path)
	}

	if !result.Valid {
		for _, issue := range result.Issues {
			output.Println(output.FormatCross(issue.String()))
		}
		return cmdutil.ToExitError(oerrors.NewValidationError(
			fmt.Sprintf("%d problem(s) found", len(result.Issues)),
			path,
			"Run 'gdxinit templates init' to see a complete templates file.",
		), path)
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("%s is valid", path)))
	return nil
}

// readTemplates reads path, reporting a missing file as unavailable templates.
func readTemplates(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, cmdutil.ToExitError(fmt.Errorf("%w: %s not found", oerrors.ErrTemplatesUnavailable, path), path)
		}
		return nil, cmdutil.ToExitError(fmt.Errorf("reading %s: %w", path, err), path)
	}
	return data, nil
}
