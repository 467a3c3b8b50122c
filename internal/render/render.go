// Package render produces scaffold file contents from the project templates.
//
// Substitution is literal text replacement. The version and reload markers
// match the template's default-valued lines exactly; a template whose defaults
// differ from these strings is left untouched for that marker.
package render

import (
	"strconv"
	"strings"

	"github.com/gdxinit/cli/internal/naming"
	"github.com/gdxinit/cli/internal/target"
	"github.com/gdxinit/cli/internal/templates"
)

const (
	// VersionMarker is the default engine compatibility line in the manifest template.
	VersionMarker = "compatibility_minimum = 4.2"

	// ReloadMarker is the default hot-reload line in the manifest template.
	ReloadMarker = "reloadable = true"

	// LibrariesHeader starts the manifest section listing compiled libraries.
	LibrariesHeader = "[libraries]"
)

// Replacement is a literal token and its substitute.
type Replacement struct {
	Old string
	New string
}

// Replace applies each replacement to body in order, replacing every occurrence.
func Replace(body string, replacements ...Replacement) string {
	for _, r := range replacements {
		if r.Old == "" {
			continue
		}
		body = strings.ReplaceAll(body, r.Old, r.New)
	}
	return body
}

// Gitignore returns the ignore file unchanged.
func Gitignore(t *templates.ProjectTemplates) string {
	return t.Gitignore
}

// LibSource renders the library source with the symbol-cased project name.
func LibSource(t *templates.ProjectTemplates, projectName string) string {
	return Replace(t.LibSource, Replacement{templates.Placeholder, naming.ToSymbolCase(projectName)})
}

// BuildManifest renders the build manifest with the raw project name.
func BuildManifest(t *templates.ProjectTemplates, projectName string) string {
	return Replace(t.BuildManifest, Replacement{templates.Placeholder, projectName})
}

// Manifest renders the extension manifest and appends its libraries section.
func Manifest(t *templates.ProjectTemplates, projectName, version string, reloadable bool, targets []string) string {
	content := Replace(t.Manifest,
		Replacement{templates.Placeholder, projectName},
		Replacement{VersionMarker, "compatibility_minimum = " + version},
		Replacement{ReloadMarker, "reloadable = " + strconv.FormatBool(reloadable)},
	)
	return content + LibrariesSection(projectName, targets)
}

// LibrariesSection renders the [libraries] header and one line per resolvable
// target, in input order. Unknown targets are skipped; with none left the bare
// header is returned.
func LibrariesSection(projectName string, targets []string) string {
	resolved := target.ResolveAll(targets, projectName)

	var b strings.Builder
	b.WriteString(LibrariesHeader)
	b.WriteString("\n")
	for _, r := range resolved {
		b.WriteString(r.ID)
		b.WriteString(` = "`)
		b.WriteString(r.Path)
		b.WriteString("\"\n")
	}
	return b.String()
}
