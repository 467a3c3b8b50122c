package config

import (
	"os"
	"path/filepath"
)

// Environment variables consulted outside viper.
const (
	// EnvConfig overrides the config file path.
	EnvConfig = envPrefix + "_CONFIG"
)

// Paths contains the standard filesystem paths for gdxinit.
type Paths struct {
	// HomeDir is the gdxinit home directory (~/.gdxinit).
	HomeDir string

	// ConfigFile is the path to the config file (~/.gdxinit/config.yaml).
	ConfigFile string
}

// DefaultPaths returns the default paths for gdxinit.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, ".gdxinit")
	return &Paths{
		HomeDir:    home,
		ConfigFile: filepath.Join(home, "config.yaml"),
	}, nil
}

// GetConfigFile returns the config file path. GDXINIT_CONFIG takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}
	return paths.ConfigFile, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
// ~username forms are returned unchanged.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}
	return path, nil
}
