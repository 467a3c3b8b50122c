package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/gdxinit/cli/internal/errors"
	"github.com/gdxinit/cli/internal/target"
	"github.com/gdxinit/cli/internal/templates"
)

// DefaultConfigTemplate returns the commented YAML written by `config init`.
func DefaultConfigTemplate() string {
	var sb strings.Builder
	sb.WriteString("# gdxinit configuration.\n")
	sb.WriteString("# Every key can be overridden by a GDXINIT_* environment variable or a flag.\n\n")
	sb.WriteString("# Templates file used by `gdxinit create`.\n")
	fmt.Fprintf(&sb, "templates: %s\n\n", templates.DefaultFileName)
	sb.WriteString("# Minimum engine version written to the manifest.\n")
	fmt.Fprintf(&sb, "godotVersion: %q\n\n", DefaultGodotVersion)
	sb.WriteString("# Enable hot reload of the extension library.\n")
	sb.WriteString("reloadable: true\n\n")
	sb.WriteString("# Library targets listed in the manifest.\n")
	sb.WriteString("targets:\n")
	for _, id := range target.IDs() {
		fmt.Fprintf(&sb, "  - %s\n", id)
	}
	sb.WriteString("\n# Build the Rust crate after creating a project.\n")
	sb.WriteString("precompile: false\n\n")
	sb.WriteString("# Build tool binary.\n")
	fmt.Fprintf(&sb, "cargo: %s\n\n", DefaultCargo)
	sb.WriteString("log:\n")
	sb.WriteString("  # Show timestamps on log lines.\n")
	sb.WriteString("  timestamps: true\n")
	return sb.String()
}

// WriteDefault writes DefaultConfigTemplate to path, creating its parent
// directory with mode 0700. An existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	if !force {
		exists, err := ConfigFileExists(expanded)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: %s", oerrors.ErrFileExists, expanded)
		}
	}

	if err := os.MkdirAll(filepath.Dir(expanded), 0o700); err != nil {
		return fmt.Errorf("%w: creating config directory: %v", oerrors.ErrFilesystemWrite, err)
	}
	if err := os.WriteFile(expanded, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		return fmt.Errorf("%w: writing config file: %v", oerrors.ErrFilesystemWrite, err)
	}
	return nil
}
