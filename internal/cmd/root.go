// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	configcmd "github.com/gdxinit/cli/internal/cmd/config"
	"github.com/gdxinit/cli/internal/cmd/create"
	templatescmd "github.com/gdxinit/cli/internal/cmd/templates"
	"github.com/gdxinit/cli/internal/cmdtypes"
	"github.com/gdxinit/cli/internal/config"
	"github.com/gdxinit/cli/internal/output"
)

// rootFlags holds the persistent flags of the root command.
type rootFlags struct {
	config     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the gdxinit CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "gdxinit",
		Short: "Godot GDExtension project generator",
		Long: `gdxinit creates Godot projects backed by a Rust GDExtension crate.

It renders the crate manifest, library source, ignore rules and the extension
manifest from a templates file, and can build the crate with cargo right away.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, &flags, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: GDXINIT_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(
		create.NewCreateCmd(cfg),
		NewTargetsCmd(),
		templatescmd.NewTemplatesCmd(cfg),
		configcmd.NewConfigCmd(cfg),
		NewVersionCmd(cfg),
	)

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(c *cobra.Command, flags *rootFlags, cfg *cmdtypes.GlobalConfig) error {
	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: flags.config})
	if err != nil {
		return err
	}
	cfg.ConfigPath = pathResult.ConfigPath
	cfg.Verbose = flags.verbose

	loader := config.NewLoader()
	loaded, err := loader.Load(cfg.ConfigPath)
	if err != nil {
		// Commands that need configuration reload it and report the error.
		output.Debug("config load error", "error", err)
	}
	cfg.Config = loaded

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if flags.verbose {
		output.Debug("initializing CLI",
			"config", cfg.ConfigPath,
			"configSource", pathResult.Source,
		)
	}

	return nil
}
