package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/gdxinit/cli/internal/errors"
)

func TestResolveConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	defaultPath := filepath.Join(home, ".gdxinit", "config.yaml")

	tests := []struct {
		name         string
		flag         string
		env          string
		wantPath     string
		wantSource   ConfigSource
		wantShadowed map[ConfigSource]string
	}{
		{
			name:       "flag wins over env and default",
			flag:       "/flag/config.yaml",
			env:        "/env/config.yaml",
			wantPath:   "/flag/config.yaml",
			wantSource: SourceFlag,
			wantShadowed: map[ConfigSource]string{
				SourceEnv:     "/env/config.yaml",
				SourceDefault: defaultPath,
			},
		},
		{
			name:         "env wins over default",
			env:          "/env/config.yaml",
			wantPath:     "/env/config.yaml",
			wantSource:   SourceEnv,
			wantShadowed: map[ConfigSource]string{SourceDefault: defaultPath},
		},
		{
			name:         "default",
			wantPath:     defaultPath,
			wantSource:   SourceDefault,
			wantShadowed: map[ConfigSource]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfig, tt.env)

			result, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: tt.flag})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, result.ConfigPath)
			assert.Equal(t, tt.wantSource, result.Source)
			assert.Equal(t, tt.wantShadowed, result.Shadowed)
		})
	}
}

func TestLogResolvedValues_DoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		LogResolvedValues([]ResolvedValue{{
			Key:      KeyCargo,
			Value:    "/env/cargo",
			Source:   SourceEnv,
			Shadowed: map[ConfigSource]string{SourceConfig: "cargo"},
		}})
	})
}

func TestWriteDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".gdxinit")
	path := filepath.Join(dir, "config.yaml")

	require.NoError(t, WriteDefault(path, false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	dirInfo, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())

	err = WriteDefault(path, false)
	assert.ErrorIs(t, err, oerrors.ErrFileExists)

	require.NoError(t, os.WriteFile(path, []byte("cargo: x\n"), 0o600))
	require.NoError(t, WriteDefault(path, true))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfigTemplate(), string(data))
}

func TestDefaultConfigTemplate_LoadsAsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(DefaultConfigTemplate()), 0o600))

	// The template must set every key explicitly.
	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	for _, key := range Keys() {
		assert.True(t, v.IsSet(key), key)
	}

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
