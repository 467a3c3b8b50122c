// Package config provides the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/gdxinit/cli/internal/cmdtypes"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage the gdxinit configuration",
		Long: `Manage the gdxinit configuration file.

The file is read from ~/.gdxinit/config.yaml unless --config or
GDXINIT_CONFIG points elsewhere.`,
	}

	c.AddCommand(
		NewInitCmd(cfg),
		NewShowCmd(cfg),
	)

	return c
}
