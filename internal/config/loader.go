package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Environment variable prefix for gdxinit configuration.
const envPrefix = "GDXINIT"

// envNames maps each key to its environment variable.
var envNames = map[string]string{
	KeyTemplates:     envPrefix + "_TEMPLATES",
	KeyGodotVersion:  envPrefix + "_GODOT_VERSION",
	KeyReloadable:    envPrefix + "_RELOADABLE",
	KeyTargets:       envPrefix + "_TARGETS",
	KeyPrecompile:    envPrefix + "_PRECOMPILE",
	KeyCargo:         envPrefix + "_CARGO",
	KeyLogTimestamps: envPrefix + "_LOG_TIMESTAMPS",
}

// Keys returns every configuration key in display order.
func Keys() []string {
	return []string{
		KeyTemplates,
		KeyGodotVersion,
		KeyReloadable,
		KeyTargets,
		KeyPrecompile,
		KeyCargo,
		KeyLogTimestamps,
	}
}

// EnvName returns the environment variable bound to key.
func EnvName(key string) string {
	return envNames[key]
}

// Loader merges flags, environment, the config file and defaults.
// Precedence is flag > env > config > default.
type Loader struct {
	v *viper.Viper

	// file holds only the values read from the config file, so that the
	// source of a merged value can be reported.
	file *viper.Viper

	flags map[string]*pflag.Flag
	path  string
}

// NewLoader creates a loader with defaults and environment bindings set.
func NewLoader() *Loader {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault(KeyTemplates, defaults.Templates)
	v.SetDefault(KeyGodotVersion, defaults.GodotVersion)
	v.SetDefault(KeyReloadable, defaults.Reloadable)
	v.SetDefault(KeyTargets, defaults.Targets)
	v.SetDefault(KeyPrecompile, defaults.Precompile)
	v.SetDefault(KeyCargo, defaults.Cargo)
	v.SetDefault(KeyLogTimestamps, *defaults.Log.Timestamps)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, env := range envNames {
		_ = v.BindEnv(key, env)
	}

	return &Loader{v: v, file: viper.New(), flags: map[string]*pflag.Flag{}}
}

// BindFlag makes flag the highest-precedence source for key. The flag only
// takes effect when it was set on the command line.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("binding %s: flag not defined", key)
	}
	if err := l.v.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("binding %s: %w", key, err)
	}
	l.flags[key] = flag
	return nil
}

// Load reads configFile (the default path when empty) and returns the
// merged, validated configuration. A missing config file is not an error.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expanded, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}
	l.path = expanded

	l.file.SetConfigFile(expanded)
	l.file.SetConfigType("yaml")
	if err := l.file.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	if err := l.v.MergeConfigMap(l.file.AllSettings()); err != nil {
		return nil, fmt.Errorf("merging config file: %w", err)
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Path returns the expanded config file path used by the last Load.
func (l *Loader) Path() string {
	return l.path
}

// Source reports where the value of key came from.
func (l *Loader) Source(key string) ConfigSource {
	if f, ok := l.flags[key]; ok && f.Changed {
		return SourceFlag
	}
	if os.Getenv(EnvName(key)) != "" {
		return SourceEnv
	}
	if l.file.IsSet(key) {
		return SourceConfig
	}
	return SourceDefault
}

// Resolved describes the value and source of every key, including the
// lower-precedence values it shadows.
func (l *Loader) Resolved() []ResolvedValue {
	values := make([]ResolvedValue, 0, len(envNames))
	for _, key := range Keys() {
		rv := ResolvedValue{
			Key:      key,
			Value:    fmt.Sprint(l.v.Get(key)),
			Source:   l.Source(key),
			Shadowed: map[ConfigSource]string{},
		}

		if rv.Source == SourceFlag {
			if env := os.Getenv(EnvName(key)); env != "" {
				rv.Shadowed[SourceEnv] = env
			}
		}
		if (rv.Source == SourceFlag || rv.Source == SourceEnv) && l.file.IsSet(key) {
			rv.Shadowed[SourceConfig] = fmt.Sprint(l.file.Get(key))
		}

		values = append(values, rv)
	}
	return values
}

// ConfigFileExists reports whether the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expanded, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(expanded); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
