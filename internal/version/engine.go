package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// EngineConstraint is the engine range that loads GDExtension libraries
// built by godot-rust.
const EngineConstraint = ">= 4.1, < 5.0"

var engineConstraint = mustConstraint(EngineConstraint)

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

// CheckEngineVersion returns a warning when v does not look like a supported
// engine version, or "" when it does. The value is written to the manifest
// verbatim either way.
func CheckEngineVersion(v string) string {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Sprintf("%q is not a valid version number", v)
	}
	if !engineConstraint.Check(parsed) {
		return fmt.Sprintf("engine version %s is outside the supported range %s", v, EngineConstraint)
	}
	return ""
}
