package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gdxinit/cli/internal/cmdtypes"
	"github.com/gdxinit/cli/internal/cmdutil"
	"github.com/gdxinit/cli/internal/config"
	"github.com/gdxinit/cli/internal/output"
)

// NewInitCmd creates the config init command.
func NewInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a commented default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(cfg.ConfigPath, force)
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return c
}

func runInit(path string, force bool) error {
	if path == "" {
		var err error
		if path, err = config.GetConfigFile(); err != nil {
			return cmdutil.ToExitError(err, "")
		}
	}

	if err := config.WriteDefault(path, force); err != nil {
		return cmdutil.ToExitError(err, path)
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Wrote configuration to %s", path)))
	return nil
}
