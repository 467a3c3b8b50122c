// Package templates provides the templates command group.
package templates

import (
	"github.com/spf13/cobra"

	"github.com/gdxinit/cli/internal/cmdtypes"
)

// NewTemplatesCmd creates the templates command group.
func NewTemplatesCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "templates",
		Short: "Manage the project templates file",
		Long: `Manage the templates file used by 'gdxinit create'.

The file holds the bodies of the crate manifest, library source, ignore rules
and the extension manifest. All four keys are required.`,
	}

	c.AddCommand(
		NewInitCmd(cfg),
		NewVetCmd(cfg),
		NewDiffCmd(cfg),
	)

	return c
}

// templatesPath returns the path argument if given, else the configured one.
func templatesPath(cfg *cmdtypes.GlobalConfig, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Settings().Templates
}
