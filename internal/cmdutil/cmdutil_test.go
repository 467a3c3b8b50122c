package cmdutil

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdxinit/cli/internal/build"
	"github.com/gdxinit/cli/internal/config"
	oerrors "github.com/gdxinit/cli/internal/errors"
	"github.com/gdxinit/cli/internal/layout"
	"github.com/gdxinit/cli/internal/output"
	"github.com/gdxinit/cli/internal/project"
	"github.com/gdxinit/cli/internal/target"
)

func TestCreateFlags_AddTo(t *testing.T) {
	var f CreateFlags
	cmd := &cobra.Command{Use: "test"}
	f.AddTo(cmd)

	tests := []struct {
		name     string
		typ      string
		defValue string
	}{
		{"dir", "string", "."},
		{"templates", "string", "templates.yaml"},
		{"godot-version", "string", "4.2"},
		{"reloadable", "bool", "true"},
		{"target", "stringSlice", "[" + strings.Join(target.IDs(), ",") + "]"},
		{"precompile", "bool", "false"},
		{"cargo", "string", "cargo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := cmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.typ, flag.Value.Type())
			assert.Equal(t, tt.defValue, flag.DefValue)
		})
	}
}

func TestCreateFlags_Bind(t *testing.T) {
	var f CreateFlags
	cmd := &cobra.Command{Use: "test"}
	f.AddTo(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--godot-version", "4.4", "--target", "macos.debug", "--reloadable=false"}))

	loader := config.NewLoader()
	require.NoError(t, f.Bind(loader, cmd))

	cfg, err := loader.Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "4.4", cfg.GodotVersion)
	assert.Equal(t, []string{"macos.debug"}, cfg.Targets)
	assert.False(t, cfg.Reloadable)
	assert.Equal(t, config.SourceFlag, loader.Source(config.KeyGodotVersion))
}

func TestFileDescription(t *testing.T) {
	for _, rel := range layout.New(".", "demo").Rel() {
		assert.NotEmpty(t, FileDescription(rel), rel)
	}
	assert.Empty(t, FileDescription("README.md"))
}

func TestFileTree(t *testing.T) {
	p := layout.New(t.TempDir(), "demo")
	tree := FileTree("demo", &project.Result{Root: p.Root, Files: p.Rel()})

	assert.Contains(t, tree, "demo/")
	assert.Contains(t, tree, "lib.rs")
	assert.Contains(t, tree, "demo.gdextension")
	assert.Contains(t, tree, "Extension manifest")
}

func TestFormatProgressLine(t *testing.T) {
	tests := []struct {
		line      string
		wantMark  string
		wantPlain bool
	}{
		{"Creating project 'demo'...", "", true},
		{project.MsgSuccess, "✔", false},
		{"Error: project name cannot be empty", "✘", false},
		{build.MsgBuildFailed, "✘", false},
		{build.MsgSourceMissing, "✘", false},
		{build.MsgLaunchFailed, "✘", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := FormatProgressLine(tt.line)
			if tt.wantPlain {
				assert.Equal(t, tt.line, got)
				return
			}
			assert.Contains(t, got, tt.wantMark)
		})
	}

	assert.NotContains(t, FormatProgressLine("Error: boom"), "Error:")
}

func TestPrintProgress(t *testing.T) {
	var buf bytes.Buffer
	restore := output.SetStdout(&buf)
	defer restore()

	PrintProgress("")
	assert.Empty(t, buf.String())

	PrintProgress("Compiling Rust library...\n" + build.MsgCompiled + "\n")
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Compiling Rust library...", lines[0])
	assert.Equal(t, "Rust library compiled successfully.", lines[1])
	assert.Contains(t, lines[2], project.MsgSuccess)
}

func TestBuildStatus(t *testing.T) {
	assert.Equal(t, output.StatusSucceeded, BuildStatus(build.Outcome{Status: build.Succeeded}))
	assert.Equal(t, output.StatusFailed, BuildStatus(build.Outcome{Status: build.Failed}))
	assert.Equal(t, output.StatusSkipped, BuildStatus(build.Outcome{}))
}

func TestToExitError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantType string
		wantHint bool
	}{
		{"empty name", oerrors.ErrEmptyName, oerrors.ExitValidationError, "validation failed", true},
		{"exists", fmt.Errorf("%w: demo", oerrors.ErrAlreadyExists), oerrors.ExitValidationError, "validation failed", true},
		{"templates", oerrors.ErrTemplatesUnavailable, oerrors.ExitTemplatesUnavailable, "templates unavailable", true},
		{"filesystem", fmt.Errorf("%w: mkdir", oerrors.ErrFilesystemWrite), oerrors.ExitFilesystemError, "filesystem write failed", true},
		{"build", oerrors.ErrBuildFailed, oerrors.ExitBuildFailed, "build failed", true},
		{"other", errors.New("boom"), oerrors.ExitGeneralError, "error", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ToExitError(tt.err, "/tmp/demo")

			var exitErr *oerrors.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, tt.wantCode, exitErr.Code)
			assert.ErrorIs(t, err, tt.err)

			var detail *oerrors.DetailError
			require.ErrorAs(t, err, &detail)
			assert.Equal(t, tt.wantType, detail.Type)
			assert.Equal(t, "/tmp/demo", detail.Location)
			assert.Equal(t, tt.wantHint, detail.Hint != "")
		})
	}
}

func TestToExitError_Passthrough(t *testing.T) {
	assert.NoError(t, ToExitError(nil, ""))

	exitErr := oerrors.NewExitError(errors.New("x"), 7)
	assert.Same(t, exitErr, ToExitError(exitErr, ""))

	detail := oerrors.NewValidationError("bad flag", "", "fix it")
	var got *oerrors.ExitError
	require.ErrorAs(t, ToExitError(detail, ""), &got)
	assert.Equal(t, oerrors.ExitValidationError, got.Code)
	assert.Equal(t, detail, got.Err)
}
