// Package templates loads, validates and compares the project template set.
package templates

import (
	_ "embed"
)

//go:embed default.yaml
var defaultYAML []byte

// DefaultFileName is the templates file looked up in the working directory.
const DefaultFileName = "templates.yaml"

// DefaultYAML returns the bundled templates document.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

// Default returns the bundled template set.
func Default() *ProjectTemplates {
	t, err := Parse(defaultYAML)
	if err != nil {
		// The bundled document is validated by tests.
		panic("templates: bundled defaults are invalid: " + err.Error())
	}
	return t
}
