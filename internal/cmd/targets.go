package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	oerrors "github.com/gdxinit/cli/internal/errors"
	"github.com/gdxinit/cli/internal/output"
	"github.com/gdxinit/cli/internal/target"
)

// targetRow is the machine-readable form of one target.
type targetRow struct {
	ID       string `json:"id" yaml:"id"`
	Platform string `json:"platform" yaml:"platform"`
	Profile  string `json:"profile" yaml:"profile"`
	Path     string `json:"path" yaml:"path"`
}

// NewTargetsCmd creates the targets command.
func NewTargetsCmd() *cobra.Command {
	var (
		projectName string
		format      string
	)

	c := &cobra.Command{
		Use:   "targets",
		Short: "List known library targets",
		Long: `List the target identifiers accepted by --target and the library path each
resolves to in the extension manifest.

Examples:
  # Show paths for a project named my_game
  gdxinit targets --project my_game

  # Machine-readable output
  gdxinit targets -o json`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTargets(projectName, format)
		},
	}

	c.Flags().StringVarP(&projectName, "project", "p", "<name>", "Project name used in the paths")
	c.Flags().StringVarP(&format, "output", "o", "table",
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))

	return c
}

func runTargets(projectName, format string) error {
	f, ok := output.ParseFormat(format)
	if !ok {
		return invalidFormat(format)
	}

	rows := make([]targetRow, 0, len(target.All()))
	for _, t := range target.All() {
		rows = append(rows, targetRow{
			ID:       t.ID,
			Platform: t.Platform.Name,
			Profile:  string(t.Profile),
			Path:     t.LibraryPath(projectName),
		})
	}

	switch f {
	case output.FormatJSON:
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling targets: %w", err)
		}
		output.Println(string(data))
	case output.FormatYAML:
		data, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("marshaling targets: %w", err)
		}
		output.Print(string(data))
	default:
		tbl := output.NewTable("ID", "PLATFORM", "PROFILE", "PATH").Dim(3)
		for _, r := range rows {
			tbl.Row(output.StyleNoun.Render(r.ID), r.Platform, r.Profile, r.Path)
		}
		output.Println(tbl.String())
	}

	return nil
}

func invalidFormat(format string) error {
	return oerrors.NewExitError(
		oerrors.NewValidationError(
			fmt.Sprintf("unknown output format %q", format),
			"",
			fmt.Sprintf("Use one of: %s.", strings.Join(output.ValidFormats(), ", ")),
		),
		oerrors.ExitValidationError,
	)
}
