// Package target maps build target identifiers to compiled library paths.
package target

import "fmt"

// LibraryRoot is the engine resource path of the Cargo target directory.
const LibraryRoot = "res://rust/target"

// Profile is a Cargo build profile.
type Profile string

const (
	// Debug is the unoptimized development profile.
	Debug Profile = "debug"

	// Release is the optimized profile.
	Release Profile = "release"
)

// Platform identifies an operating system family and its library naming convention.
type Platform struct {
	// Name is the platform family (e.g., "linux").
	Name string

	// Prefix is prepended to the library file name.
	Prefix string

	// Ext is the shared library extension, including the dot.
	Ext string
}

var (
	// Linux uses lib<name>.so.
	Linux = Platform{Name: "linux", Prefix: "lib", Ext: ".so"}

	// Windows uses <name>.dll.
	Windows = Platform{Name: "windows", Prefix: "", Ext: ".dll"}

	// MacOS uses lib<name>.dylib.
	MacOS = Platform{Name: "macos", Prefix: "lib", Ext: ".dylib"}
)

// Target is one (platform, profile) pair known to the manifest.
type Target struct {
	// ID is the manifest key (e.g., "linux.debug.x86_64").
	ID string

	// Platform determines the library file naming.
	Platform Platform

	// Profile selects the Cargo output directory.
	Profile Profile
}

// LibraryPath returns the resource path of the compiled library for project.
func (t Target) LibraryPath(project string) string {
	return fmt.Sprintf("%s/%s/%s%s%s", LibraryRoot, t.Profile, t.Platform.Prefix, project, t.Platform.Ext)
}

// table is the closed set of supported targets, in canonical order.
var table = []Target{
	{ID: "linux.debug.x86_64", Platform: Linux, Profile: Debug},
	{ID: "linux.release.x86_64", Platform: Linux, Profile: Release},
	{ID: "windows.debug.x86_64", Platform: Windows, Profile: Debug},
	{ID: "windows.release.x86_64", Platform: Windows, Profile: Release},
	{ID: "macos.debug", Platform: MacOS, Profile: Debug},
	{ID: "macos.release", Platform: MacOS, Profile: Release},
}

// All returns every supported target in canonical order.
func All() []Target {
	out := make([]Target, len(table))
	copy(out, table)
	return out
}

// IDs returns every supported target identifier in canonical order.
func IDs() []string {
	ids := make([]string, len(table))
	for i, t := range table {
		ids[i] = t.ID
	}
	return ids
}

// Lookup returns the target registered under id.
func Lookup(id string) (Target, bool) {
	for _, t := range table {
		if t.ID == id {
			return t, true
		}
	}
	return Target{}, false
}

// Known reports whether id names a supported target.
func Known(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// Resolve returns the library path for id and project.
// Unknown identifiers yield ("", false); that is not an error.
func Resolve(id, project string) (string, bool) {
	t, ok := Lookup(id)
	if !ok {
		return "", false
	}
	return t.LibraryPath(project), true
}

// Resolved is a target identifier paired with its library path.
type Resolved struct {
	ID   string
	Path string
}

// ResolveAll resolves ids in order, dropping unknown identifiers.
// Duplicates are kept.
func ResolveAll(ids []string, project string) []Resolved {
	out := make([]Resolved, 0, len(ids))
	for _, id := range ids {
		if path, ok := Resolve(id, project); ok {
			out = append(out, Resolved{ID: id, Path: path})
		}
	}
	return out
}
