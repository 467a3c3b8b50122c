package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gdxinit/cli/internal/cmdtypes"
	"github.com/gdxinit/cli/internal/output"
	"github.com/gdxinit/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show gdxinit version information.

Displays:
  - gdxinit version, commit, and build date
  - the cargo binary used for --precompile, and whether it is recent enough`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runVersion(cfg)
		},
	}
}

func runVersion(cfg *cmdtypes.GlobalConfig) error {
	info := version.Get()

	output.Println(fmt.Sprintf("gdxinit version %s", info.Version))
	output.Println(fmt.Sprintf("  Commit:    %s", info.GitCommit))
	output.Println(fmt.Sprintf("  Built:     %s", info.BuildDate))
	output.Println(fmt.Sprintf("  Go:        %s", info.GoVersion))

	cargo := version.DetectCargo(cfg.Settings().Cargo)
	switch {
	case !cargo.Found:
		output.Println(fmt.Sprintf("  Cargo:     %s", cargo.Message))
	case cargo.Compatible:
		output.Println(fmt.Sprintf("  Cargo:     %s (%s)", cargo.Version, cargo.Path))
	default:
		output.Println(fmt.Sprintf("  Cargo:     %s (%s)", cargo.Version, cargo.Path))
		output.Warn(cargo.Message)
	}

	return nil
}
