// Package project turns a project request into a scaffold on disk.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdxinit/cli/internal/build"
	oerrors "github.com/gdxinit/cli/internal/errors"
	"github.com/gdxinit/cli/internal/layout"
	"github.com/gdxinit/cli/internal/output"
	"github.com/gdxinit/cli/internal/progress"
	"github.com/gdxinit/cli/internal/render"
	"github.com/gdxinit/cli/internal/templates"
)

// ProjectDescriptor is the fixed project.godot body. It is not templated.
const ProjectDescriptor = "[gd_project]\nversion=4.0\nrun/main_scene=\"res://main.tscn\"\n"

// Progress log lines written during materialization.
const (
	msgCreating = "Creating project '%s'..."
	msgCreated  = "Created Godot project '%s' with Rust integration."
	MsgSuccess  = "Project created successfully."
)

// Request describes one project to create.
type Request struct {
	// Name is the project name and root directory name.
	Name string

	// Templates is the template set; nil means the set is unavailable.
	Templates *templates.ProjectTemplates

	// Version is the minimum engine version written to the manifest.
	Version string

	// Reloadable enables hot reload in the manifest.
	Reloadable bool

	// Targets are the selected target identifiers, in manifest order.
	Targets []string

	// Precompile dispatches a background build after the files are written.
	Precompile bool
}

// Result describes a materialized project.
type Result struct {
	// Root is the project root directory.
	Root string

	// Files are the created files relative to Root, in write order.
	Files []string

	// Build tracks the background build; nil when Precompile was false.
	Build *build.Task
}

// Materializer writes project scaffolds.
type Materializer struct {
	// BaseDir is the directory projects are created in. Defaults to ".".
	BaseDir string

	// Invoker dispatches background builds. Defaults to `cargo build`.
	Invoker *build.Invoker
}

// NewMaterializer returns a Materializer creating projects under baseDir.
func NewMaterializer(baseDir string, invoker *build.Invoker) *Materializer {
	return &Materializer{BaseDir: baseDir, Invoker: invoker}
}

// Materialize validates req and writes its scaffold.
//
// Preconditions are checked before any filesystem or log mutation. A write
// failure aborts the remaining steps; files already written are left in place.
// When req.Precompile is set the build runs on its own goroutine and its
// outcome is reported only through log.
func (m *Materializer) Materialize(req Request, log *progress.Log) (*Result, error) {
	if req.Name == "" {
		return nil, oerrors.ErrEmptyName
	}

	p := layout.New(m.baseDir(), req.Name)

	// Point-in-time check; two creations racing on the same name are not
	// serialized here.
	if _, err := os.Lstat(p.Root); err == nil {
		return nil, fmt.Errorf("%w: %s", oerrors.ErrAlreadyExists, req.Name)
	}

	if req.Templates == nil {
		return nil, oerrors.ErrTemplatesUnavailable
	}

	log.Appendf(msgCreating, req.Name)
	output.Debug("materializing project", "name", req.Name, "root", p.Root, "targets", req.Targets)

	files, err := m.write(p, req)
	if err != nil {
		return nil, err
	}

	log.Appendf(msgCreated, req.Name)

	result := &Result{Root: p.Root, Files: files}
	if req.Precompile {
		result.Build = m.Invoker.InvokeAsync(p, req.Targets, log)
	} else {
		log.Append(MsgSuccess)
	}

	return result, nil
}

// write performs the filesystem steps in their fixed order.
func (m *Materializer) write(p layout.Project, req Request) ([]string, error) {
	t := req.Templates
	var files []string

	steps := []struct {
		dir     string
		file    string
		content string
	}{
		{dir: p.Root},
		{file: layout.ProjectFile, content: ProjectDescriptor},
		{dir: p.CrateDir()},
		{dir: p.SourceDir()},
		{file: layout.CrateDir + "/" + layout.BuildManifestFile, content: render.BuildManifest(t, req.Name)},
		{file: layout.CrateDir + "/" + layout.GitignoreFile, content: render.Gitignore(t)},
		{file: layout.CrateDir + "/" + layout.SourceDir + "/" + layout.LibSourceFile, content: render.LibSource(t, req.Name)},
		{file: p.ManifestFile(), content: render.Manifest(t, req.Name, req.Version, req.Reloadable, req.Targets)},
	}

	for _, step := range steps {
		if step.dir != "" {
			if err := os.Mkdir(step.dir, 0o755); err != nil {
				return files, fmt.Errorf("%w: creating directory %s: %v", oerrors.ErrFilesystemWrite, step.dir, err)
			}
			continue
		}

		target := filepath.Join(p.Root, filepath.FromSlash(step.file))
		if err := os.WriteFile(target, []byte(step.content), 0o644); err != nil {
			return files, fmt.Errorf("%w: writing %s: %v", oerrors.ErrFilesystemWrite, target, err)
		}

		output.Debug("created file", "path", step.file)
		files = append(files, step.file)
	}

	return files, nil
}

func (m *Materializer) baseDir() string {
	if m.BaseDir != "" {
		return m.BaseDir
	}
	return "."
}
