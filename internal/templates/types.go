package templates

// Placeholder is the token substituted with the project name in template bodies.
const Placeholder = "{project_name}"

// ProjectTemplates holds the four template bodies used to scaffold a project.
// The bodies are opaque to this package.
type ProjectTemplates struct {
	// Gitignore is the ignore file written into the crate directory.
	Gitignore string `yaml:"gitignore" json:"gitignore"`

	// LibSource is the crate's src/lib.rs body.
	LibSource string `yaml:"lib_content" json:"lib_content"`

	// Manifest is the .gdextension descriptor body.
	Manifest string `yaml:"gdextension" json:"gdextension"`

	// BuildManifest is the crate's Cargo.toml body.
	BuildManifest string `yaml:"cargo_toml" json:"cargo_toml"`
}
