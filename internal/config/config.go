// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"strings"

	oerrors "github.com/gdxinit/cli/internal/errors"
	"github.com/gdxinit/cli/internal/target"
	"github.com/gdxinit/cli/internal/templates"
)

// Configuration keys. Nested keys use dots; their environment variables use
// underscores (log.timestamps -> GDXINIT_LOG_TIMESTAMPS).
const (
	KeyTemplates     = "templates"
	KeyGodotVersion  = "godotVersion"
	KeyReloadable    = "reloadable"
	KeyTargets       = "targets"
	KeyPrecompile    = "precompile"
	KeyCargo         = "cargo"
	KeyLogTimestamps = "log.timestamps"
)

// Built-in defaults that have no better home.
const (
	DefaultGodotVersion = "4.2"
	DefaultCargo        = "cargo"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config is the gdxinit configuration, loaded from ~/.gdxinit/config.yaml.
type Config struct {
	// Templates is the path of the templates file.
	// Env: GDXINIT_TEMPLATES, Default: templates.yaml
	Templates string `mapstructure:"templates" yaml:"templates"`

	// GodotVersion is the minimum engine version written to manifests.
	// Env: GDXINIT_GODOT_VERSION, Default: 4.2
	GodotVersion string `mapstructure:"godotVersion" yaml:"godotVersion"`

	// Reloadable enables hot reload in generated manifests.
	// Env: GDXINIT_RELOADABLE, Default: true
	Reloadable bool `mapstructure:"reloadable" yaml:"reloadable"`

	// Targets is the default target selection.
	// Env: GDXINIT_TARGETS (comma separated), Default: every known target
	Targets []string `mapstructure:"targets" yaml:"targets"`

	// Precompile builds the generated crate after creation.
	// Env: GDXINIT_PRECOMPILE, Default: false
	Precompile bool `mapstructure:"precompile" yaml:"precompile"`

	// Cargo is the build tool binary.
	// Env: GDXINIT_CARGO, Default: cargo
	Cargo string `mapstructure:"cargo" yaml:"cargo"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Templates:    templates.DefaultFileName,
		GodotVersion: DefaultGodotVersion,
		Reloadable:   true,
		Targets:      target.IDs(),
		Precompile:   false,
		Cargo:        DefaultCargo,
		Log:          LogConfig{Timestamps: &timestamps},
	}
}

// ValidationError is a single invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		fmt.Fprintf(&sb, "  %s: %s\n", err.Field, err.Message)
	}
	return sb.String()
}

// Unwrap lets errors.Is match ErrValidation.
func (e ValidationErrors) Unwrap() error {
	return oerrors.ErrValidation
}

// Validate checks that required values are present. Unknown target
// identifiers are not an error; they are dropped when manifests are rendered.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if strings.TrimSpace(c.Templates) == "" {
		errs = append(errs, ValidationError{Field: KeyTemplates, Message: "must not be empty"})
	}
	if strings.TrimSpace(c.GodotVersion) == "" {
		errs = append(errs, ValidationError{Field: KeyGodotVersion, Message: "must not be empty"})
	}
	if strings.TrimSpace(c.Cargo) == "" {
		errs = append(errs, ValidationError{Field: KeyCargo, Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UnknownTargets returns the configured targets missing from the target table.
func (c *Config) UnknownTargets() []string {
	var unknown []string
	for _, id := range c.Targets {
		if !target.Known(id) {
			unknown = append(unknown, id)
		}
	}
	return unknown
}
