package create

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdxinit/cli/internal/build"
	"github.com/gdxinit/cli/internal/cmdtypes"
	oerrors "github.com/gdxinit/cli/internal/errors"
	"github.com/gdxinit/cli/internal/layout"
	"github.com/gdxinit/cli/internal/progress"
	"github.com/gdxinit/cli/internal/testutil"
)

// runCmd executes the create command with args and returns stdout and the error.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := &cmdtypes.GlobalConfig{ConfigPath: testutil.IsolateConfig(t)}
	out := testutil.CaptureStdout(t)

	if args == nil {
		args = []string{}
	}
	c := NewCreateCmd(cfg)
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

func lookPath(t *testing.T, name string) string {
	t.Helper()
	path, err := exec.LookPath(name)
	if err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
	return path
}

func TestCreate_WritesProject(t *testing.T) {
	dir := t.TempDir()
	tpl := testutil.WriteTemplates(t, t.TempDir())

	out, err := runCmd(t, "--dir", dir, "--templates", tpl, "demo")
	require.NoError(t, err)

	for _, rel := range []string{"project.godot", "demo.gdextension", "rust/Cargo.toml", "rust/.gitignore", "rust/src/lib.rs"} {
		assert.FileExists(t, filepath.Join(dir, "demo", filepath.FromSlash(rel)))
	}

	assert.Contains(t, out, "Creating project 'demo'...")
	assert.Contains(t, out, "Created Godot project 'demo' with Rust integration.")
	assert.Contains(t, out, "Project created successfully.")
	assert.Contains(t, out, "Extension manifest")

	lib := testutil.ReadFile(t, filepath.Join(dir, "demo", "rust", "src", "lib.rs"))
	assert.Contains(t, lib, "struct DemoExtension;")
}

func TestCreate_ManifestFlags(t *testing.T) {
	dir := t.TempDir()
	tpl := testutil.WriteTemplates(t, t.TempDir())

	_, err := runCmd(t, "--dir", dir, "--templates", tpl,
		"--godot-version", "4.3", "--reloadable=false",
		"--target", "windows.debug.x86_64", "--target", "bogus",
		"demo")
	require.NoError(t, err)

	manifest := testutil.ReadFile(t, filepath.Join(dir, "demo", "demo.gdextension"))
	assert.Contains(t, manifest, "compatibility_minimum = 4.3")
	assert.Contains(t, manifest, "reloadable = false")
	assert.Contains(t, manifest, `windows.debug.x86_64 = "res://rust/target/debug/demo.dll"`)
	assert.NotContains(t, manifest, "bogus")
	assert.NotContains(t, manifest, "linux.debug.x86_64")
}

func TestCreate_SettingsFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	tpl := testutil.WriteTemplates(t, t.TempDir())
	cfgPath := testutil.IsolateConfig(t)
	testutil.WriteFile(t, filepath.Dir(cfgPath), filepath.Base(cfgPath),
		"templates: "+tpl+"\ngodotVersion: \"4.4\"\n")

	out := testutil.CaptureStdout(t)
	c := NewCreateCmd(&cmdtypes.GlobalConfig{ConfigPath: cfgPath})
	c.SetArgs([]string{"--dir", dir, "demo"})
	c.SilenceErrors = true
	require.NoError(t, c.Execute())

	assert.Contains(t, out.String(), "Project created successfully.")
	manifest := testutil.ReadFile(t, filepath.Join(dir, "demo", "demo.gdextension"))
	assert.Contains(t, manifest, "compatibility_minimum = 4.4")
}

func TestCreate_MultipleNames(t *testing.T) {
	dir := t.TempDir()
	tpl := testutil.WriteTemplates(t, t.TempDir())

	out, err := runCmd(t, "--dir", dir, "--templates", tpl, "alpha", "beta", "gamma")
	require.NoError(t, err)

	for _, name := range []string{"alpha", "beta", "gamma"} {
		assert.DirExists(t, filepath.Join(dir, name))
		assert.Contains(t, out, "Creating project '"+name+"'...")
	}
}

func TestCreate_ExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	tpl := testutil.WriteTemplates(t, t.TempDir())
	marker := testutil.WriteFile(t, filepath.Join(dir, "demo"), "keep.txt", "mine")

	out, err := runCmd(t, "--dir", dir, "--templates", tpl, "demo")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, exitCode(t, err))
	assert.ErrorIs(t, err, oerrors.ErrAlreadyExists)

	assert.Equal(t, "mine", testutil.ReadFile(t, marker))
	assert.NoFileExists(t, filepath.Join(dir, "demo", "project.godot"))
	assert.NotContains(t, out, "Creating project")
}

func TestCreate_PartialFailure(t *testing.T) {
	dir := t.TempDir()
	tpl := testutil.WriteTemplates(t, t.TempDir())
	require.NoError(t, os.Mkdir(filepath.Join(dir, "taken"), 0o755))

	out, err := runCmd(t, "--dir", dir, "--templates", tpl, "fresh", "taken")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, exitCode(t, err))

	assert.FileExists(t, filepath.Join(dir, "fresh", "project.godot"))
	assert.Contains(t, out, "Project created successfully.")
}

func TestCreate_TemplatesUnavailable(t *testing.T) {
	dir := t.TempDir()

	_, err := runCmd(t, "--dir", dir, "--templates", filepath.Join(dir, "missing.yaml"), "demo")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitTemplatesUnavailable, exitCode(t, err))
	assert.NoDirExists(t, filepath.Join(dir, "demo"))
}

func TestCreate_RequiresName(t *testing.T) {
	_, err := runCmd(t)
	require.Error(t, err)
}

func TestCreate_PrecompileSucceeds(t *testing.T) {
	cargo := lookPath(t, "true")
	dir := t.TempDir()
	tpl := testutil.WriteTemplates(t, t.TempDir())

	out, err := runCmd(t, "--dir", dir, "--templates", tpl, "--precompile", "--cargo", cargo, "demo")
	require.NoError(t, err)

	assert.Contains(t, out, "Compiling Rust library...")
	assert.Contains(t, out, "Rust library compiled successfully.")
	assert.Contains(t, out, "succeeded")
}

func TestCreate_PrecompileFails(t *testing.T) {
	cargo := lookPath(t, "false")
	dir := t.TempDir()
	tpl := testutil.WriteTemplates(t, t.TempDir())

	out, err := runCmd(t, "--dir", dir, "--templates", tpl, "--precompile", "--cargo", cargo, "demo")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitBuildFailed, exitCode(t, err))
	assert.ErrorIs(t, err, oerrors.ErrBuildFailed)

	assert.Contains(t, out, "Failed to compile Rust library.")
	assert.FileExists(t, filepath.Join(dir, "demo", "project.godot"))
}

func TestCreate_PrecompileLaunchFailure(t *testing.T) {
	dir := t.TempDir()
	tpl := testutil.WriteTemplates(t, t.TempDir())

	out, err := runCmd(t, "--dir", dir, "--templates", tpl, "--precompile",
		"--cargo", filepath.Join(dir, "no-such-cargo"), "demo")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitBuildFailed, exitCode(t, err))
	assert.Contains(t, out, "Failed to start cargo build process.")
}

func TestCreate_PrecompileWithoutTargets(t *testing.T) {
	cargo := lookPath(t, "true")
	dir := t.TempDir()
	tpl := testutil.WriteTemplates(t, t.TempDir())

	out, err := runCmd(t, "--dir", dir, "--templates", tpl, "--precompile",
		"--cargo", cargo, "--target", "bogus", "demo")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitBuildFailed, exitCode(t, err))
	assert.ErrorIs(t, err, oerrors.ErrLibrarySourceMissing)
	assert.Contains(t, out, "Rust library file does not exist.")
}

func TestFinalOutcome(t *testing.T) {
	// No lib.rs under the root: the task fails without launching the compiler.
	p := layout.New(t.TempDir(), "demo")
	task := build.NewInvoker(nil).InvokeAsync(p, []string{"linux.debug.x86_64"}, progress.New())

	outcome := finalOutcome(task)
	assert.Equal(t, build.Failed, outcome.Status)
	assert.ErrorIs(t, outcome.Err, oerrors.ErrLibrarySourceMissing)

	again, finished := task.Outcome()
	require.True(t, finished)
	assert.Equal(t, outcome, again)
}
