// Package cmdutil provides shared command utilities for the gdxinit commands.
// It centralizes flag groups, error presentation and progress log echoing.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gdxinit/cli/internal/config"
	"github.com/gdxinit/cli/internal/target"
)

// CreateFlags holds the flags of project creation. Every flag except Dir is
// also a configuration key; Bind wires them into a config.Loader so that a
// flag set on the command line wins over env, config file and default.
type CreateFlags struct {
	Dir          string
	Templates    string
	GodotVersion string
	Reloadable   bool
	Targets      []string
	Precompile   bool
	Cargo        string
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"templates":     config.KeyTemplates,
	"godot-version": config.KeyGodotVersion,
	"reloadable":    config.KeyReloadable,
	"target":        config.KeyTargets,
	"precompile":    config.KeyPrecompile,
	"cargo":         config.KeyCargo,
}

// AddTo registers the creation flags on the given cobra command.
func (f *CreateFlags) AddTo(cmd *cobra.Command) {
	defaults := config.DefaultConfig()

	cmd.Flags().StringVarP(&f.Dir, "dir", "d", ".",
		"Directory to create projects in")
	cmd.Flags().StringVarP(&f.Templates, "templates", "t", defaults.Templates,
		"Templates file (env: GDXINIT_TEMPLATES)")
	cmd.Flags().StringVar(&f.GodotVersion, "godot-version", defaults.GodotVersion,
		"Minimum engine version written to the manifest (env: GDXINIT_GODOT_VERSION)")
	cmd.Flags().BoolVar(&f.Reloadable, "reloadable", defaults.Reloadable,
		"Enable hot reload of the extension library (env: GDXINIT_RELOADABLE)")
	cmd.Flags().StringSliceVar(&f.Targets, "target", defaults.Targets,
		fmt.Sprintf("Library targets, repeatable (known: %s)", strings.Join(target.IDs(), ", ")))
	cmd.Flags().BoolVar(&f.Precompile, "precompile", defaults.Precompile,
		"Build the Rust crate after creating each project (env: GDXINIT_PRECOMPILE)")
	cmd.Flags().StringVar(&f.Cargo, "cargo", defaults.Cargo,
		"Build tool binary (env: GDXINIT_CARGO)")
}

// Bind registers the flags of cmd with loader.
func (f *CreateFlags) Bind(loader *config.Loader, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		if err := loader.BindFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}
