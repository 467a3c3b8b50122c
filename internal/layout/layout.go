// Package layout names the files and directories of a generated project.
package layout

import "path/filepath"

// File and directory names relative to the project root.
const (
	ProjectFile       = "project.godot"
	CrateDir          = "rust"
	BuildManifestFile = "Cargo.toml"
	GitignoreFile     = ".gitignore"
	SourceDir         = "src"
	LibSourceFile     = "lib.rs"
	ManifestExt       = ".gdextension"
)

// Project resolves the paths of one generated project.
type Project struct {
	// Name is the raw project name, also the root directory name.
	Name string

	// Root is the project root directory.
	Root string
}

// New returns the layout of project name rooted under baseDir.
func New(baseDir, name string) Project {
	return Project{Name: name, Root: filepath.Join(baseDir, name)}
}

// CrateDir returns the Rust crate directory.
func (p Project) CrateDir() string {
	return filepath.Join(p.Root, CrateDir)
}

// SourceDir returns the crate's source directory, where the build runs.
func (p Project) SourceDir() string {
	return filepath.Join(p.Root, CrateDir, SourceDir)
}

// LibSource returns the path of the generated library source.
func (p Project) LibSource() string {
	return filepath.Join(p.SourceDir(), LibSourceFile)
}

// ManifestFile returns the manifest file name, "<name>.gdextension".
func (p Project) ManifestFile() string {
	return p.Name + ManifestExt
}

// Rel returns the slash-separated paths of the generated files relative to
// the root, in write order.
func (p Project) Rel() []string {
	return []string{
		ProjectFile,
		CrateDir + "/" + BuildManifestFile,
		CrateDir + "/" + GitignoreFile,
		CrateDir + "/" + SourceDir + "/" + LibSourceFile,
		p.ManifestFile(),
	}
}
