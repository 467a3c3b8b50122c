package version

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"time"

	"github.com/Masterminds/semver/v3"
)

// MinCargoVersion is the oldest toolchain the generated crate is known to
// build with (edition 2021).
const MinCargoVersion = "1.56.0"

// cargoVersionRegex matches output like "cargo 1.75.0 (1d8b05cdd 2023-11-20)".
var cargoVersionRegex = regexp.MustCompile(`\d+\.\d+\.\d+(?:-[a-zA-Z0-9.]+)?`)

// probeTimeout bounds the `cargo --version` call.
const probeTimeout = 10 * time.Second

// CargoInfo describes the build tool installation.
type CargoInfo struct {
	// Version is the cargo version, without a "v" prefix.
	Version string `json:"version,omitempty"`

	// Path is the resolved binary path.
	Path string `json:"path,omitempty"`

	// Found indicates the binary was found.
	Found bool `json:"found"`

	// Compatible indicates the version is at least MinCargoVersion.
	Compatible bool `json:"compatible"`

	// Message provides additional information.
	Message string `json:"message,omitempty"`
}

// DetectCargo looks up binary (a name on PATH or a path) and reports its version.
func DetectCargo(binary string) CargoInfo {
	if binary == "" {
		binary = "cargo"
	}

	path, err := exec.LookPath(binary)
	if err != nil {
		return CargoInfo{Message: fmt.Sprintf("%s not found in PATH", binary)}
	}

	raw, err := probeCargoVersion(path)
	if err != nil {
		return CargoInfo{
			Path:    path,
			Found:   true,
			Message: "failed to get cargo version: " + err.Error(),
		}
	}

	v, err := extractVersion(raw)
	if err != nil {
		return CargoInfo{Path: path, Found: true, Message: err.Error()}
	}

	compatible := CargoCompatible(v)
	message := "compatible"
	if !compatible {
		message = fmt.Sprintf("cargo %s is older than %s", v, MinCargoVersion)
	}

	return CargoInfo{
		Version:    v,
		Path:       path,
		Found:      true,
		Compatible: compatible,
		Message:    message,
	}
}

// probeCargoVersion runs `<path> --version`.
func probeCargoVersion(path string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", err
	}
	return out.String(), nil
}

// extractVersion finds the first semantic version in output.
func extractVersion(output string) (string, error) {
	match := cargoVersionRegex.FindString(output)
	if match == "" {
		return "", &versionParseError{output: output}
	}
	return match, nil
}

// CargoCompatible reports whether v is at least MinCargoVersion.
func CargoCompatible(v string) bool {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return false
	}
	return !parsed.LessThan(semver.MustParse(MinCargoVersion))
}

// versionParseError indicates failure to parse version output.
type versionParseError struct {
	output string
}

func (e *versionParseError) Error() string {
	return "failed to parse cargo version from output: " + e.output
}
