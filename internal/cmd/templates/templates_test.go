package templates

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdxinit/cli/internal/cmdtypes"
	"github.com/gdxinit/cli/internal/config"
	oerrors "github.com/gdxinit/cli/internal/errors"
	"github.com/gdxinit/cli/internal/templates"
	"github.com/gdxinit/cli/internal/testutil"
)

func run(t *testing.T, cfg *cmdtypes.GlobalConfig, args ...string) (string, error) {
	t.Helper()
	out := testutil.CaptureStdout(t)

	c := NewTemplatesCmd(cfg)
	c.SetArgs(args)
	c.SilenceUsage = true
	c.SilenceErrors = true
	err := c.Execute()
	return out.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *oerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	return exitErr.Code
}

func TestInit_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "templates.yaml")

	out, err := run(t, nil, "init", path)
	require.NoError(t, err)

	assert.Equal(t, string(templates.DefaultYAML()), testutil.ReadFile(t, path))
	assert.Contains(t, out, path)
}

func TestInit_RefusesOverwrite(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "templates.yaml", "custom: true\n")

	_, err := run(t, nil, "init", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrFileExists)
	assert.Equal(t, oerrors.ExitValidationError, exitCode(t, err))
	assert.Equal(t, "custom: true\n", testutil.ReadFile(t, path))

	_, err = run(t, nil, "init", "--force", path)
	require.NoError(t, err)
	assert.Equal(t, string(templates.DefaultYAML()), testutil.ReadFile(t, path))
}

func TestInit_UsesConfiguredPath(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Templates = filepath.Join(t.TempDir(), "configured.yaml")

	_, err := run(t, &cmdtypes.GlobalConfig{Config: cfg}, "init")
	require.NoError(t, err)
	assert.FileExists(t, cfg.Templates)
}

func TestVet(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		content  string
		wantCode int
		wantOut  string
	}{
		{"valid", string(templates.DefaultYAML()), 0, "is valid"},
		{"missing keys", "gitignore: \"/target\\n\"\n", oerrors.ExitValidationError, "✘"},
		{"wrong type", "gitignore: 1\nlib_content: a\ngdextension: b\ncargo_toml: c\n", oerrors.ExitValidationError, "gitignore"},
		{"malformed", "gitignore: [unclosed\n", oerrors.ExitValidationError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteFile(t, dir, tt.name+".yaml", tt.content)

			out, err := run(t, nil, "vet", path)
			if tt.wantCode == 0 {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, exitCode(t, err))
				assert.ErrorIs(t, err, oerrors.ErrValidation)
			}
			assert.Contains(t, out, tt.wantOut)
		})
	}
}

func TestVet_MissingFile(t *testing.T) {
	_, err := run(t, nil, "vet", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitTemplatesUnavailable, exitCode(t, err))
}

func TestDiff(t *testing.T) {
	dir := t.TempDir()

	same := testutil.WriteFile(t, dir, "same.yaml", string(templates.DefaultYAML()))
	out, err := run(t, nil, "diff", same)
	require.NoError(t, err)
	assert.Contains(t, out, "No differences")

	changed := testutil.WriteFile(t, dir, "changed.yaml",
		"gitignore: |\n  /target\n  *.tmp\nlib_content: x\ngdextension: y\ncargo_toml: z\n")
	out, err = run(t, nil, "diff", changed)
	require.NoError(t, err)
	assert.Contains(t, out, "gitignore")
	assert.NotContains(t, out, "No differences")
}
