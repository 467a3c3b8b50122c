// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/create, internal/cmd/templates,
// internal/cmd/config).
package cmdtypes

import (
	"github.com/gdxinit/cli/internal/config"
	oerrors "github.com/gdxinit/cli/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is allocated by the root command, populated once at startup and passed
// explicitly into every sub-command constructor.
type GlobalConfig struct {
	// Config is the configuration loaded without command-specific flags.
	// Nil when loading failed; commands then fall back to defaults.
	Config *config.Config

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// Verbose is the --verbose flag.
	Verbose bool
}

// Settings returns the loaded configuration, or the defaults when none was loaded.
func (g *GlobalConfig) Settings() *config.Config {
	if g == nil || g.Config == nil {
		return config.DefaultConfig()
	}
	return g.Config
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess              = oerrors.ExitSuccess
	ExitGeneralError         = oerrors.ExitGeneralError
	ExitValidationError      = oerrors.ExitValidationError
	ExitTemplatesUnavailable = oerrors.ExitTemplatesUnavailable
	ExitFilesystemError      = oerrors.ExitFilesystemError
	ExitBuildFailed          = oerrors.ExitBuildFailed
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
