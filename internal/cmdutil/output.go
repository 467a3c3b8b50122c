package cmdutil

import (
	"strings"

	"github.com/gdxinit/cli/internal/build"
	"github.com/gdxinit/cli/internal/layout"
	"github.com/gdxinit/cli/internal/output"
	"github.com/gdxinit/cli/internal/project"
	"github.com/gdxinit/cli/internal/target"
)

// fileDescriptions describes the generated files in the creation tree.
var fileDescriptions = map[string]string{
	"project.godot":   "Godot project",
	"rust/Cargo.toml": "Crate manifest",
	"rust/.gitignore": "Ignore rules",
	"rust/src/lib.rs": "Extension entry point",
}

// FileDescription returns the tree description of a generated file.
func FileDescription(rel string) string {
	if desc, ok := fileDescriptions[rel]; ok {
		return desc
	}
	if strings.HasSuffix(rel, layout.ManifestExt) {
		return "Extension manifest"
	}
	return ""
}

// FileTree renders the files of a created project below its name.
func FileTree(name string, result *project.Result) string {
	entries := make([]output.FileEntry, 0, len(result.Files))
	for _, f := range result.Files {
		entries = append(entries, output.FileEntry{Path: f, Description: FileDescription(f)})
	}
	return output.RenderFileTree(name, entries)
}

// failureLines are progress lines reported as failures.
var failureLines = map[string]bool{
	build.MsgSourceMissing: true,
	build.MsgLaunchFailed:  true,
	build.MsgBuildFailed:   true,
}

// FormatProgressLine styles one progress log line for the terminal.
func FormatProgressLine(line string) string {
	switch {
	case strings.HasPrefix(line, "Error: "):
		return output.FormatCross(strings.TrimPrefix(line, "Error: "))
	case failureLines[line]:
		return output.FormatCross(line)
	case line == project.MsgSuccess:
		return output.FormatCheckmark(line)
	default:
		return line
	}
}

// PrintProgress echoes text, a chunk of the progress log, to stdout.
func PrintProgress(text string) {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		output.Println(FormatProgressLine(line))
	}
}

// WarnUnknownTargets logs a warning for each selected target that will be
// dropped from the manifest.
func WarnUnknownTargets(ids []string) {
	for _, id := range ids {
		if !target.Known(id) {
			output.Warn("unknown target will be ignored", "target", id,
				"known", strings.Join(target.IDs(), ", "))
		}
	}
}

// BuildStatus maps a build outcome to a summary status word.
func BuildStatus(o build.Outcome) string {
	switch o.Status {
	case build.Succeeded:
		return output.StatusSucceeded
	case build.Failed:
		return output.StatusFailed
	default:
		return output.StatusSkipped
	}
}
