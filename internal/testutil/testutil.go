// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdxinit/cli/internal/config"
	"github.com/gdxinit/cli/internal/output"
	"github.com/gdxinit/cli/internal/templates"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WriteTemplates writes the bundled default templates into dir and returns the path.
func WriteTemplates(t *testing.T, dir string) string {
	t.Helper()
	return WriteFile(t, dir, templates.DefaultFileName, string(templates.DefaultYAML()))
}

// ReadFile returns the content of path, failing the test if it cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// IsolateConfig points GDXINIT_CONFIG at a file under a fresh temp dir and
// clears the other GDXINIT_* variables for the duration of the test.
func IsolateConfig(t *testing.T) string {
	t.Helper()
	for _, key := range config.Keys() {
		t.Setenv(config.EnvName(key), "")
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(config.EnvConfig, path)
	return path
}

// CaptureStdout redirects command output into a buffer until the test ends.
func CaptureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	restore := output.SetStdout(&buf)
	t.Cleanup(restore)
	return &buf
}
