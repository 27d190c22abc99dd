// Package project implements the four YAML document kinds a workspace
// reads and writes: the project file itself, the resolved package lock,
// a library document describing a native dependency's headers/libraries,
// and the build lock recording parameters that must stay stable across
// incremental builds.
package project

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/cwbudde/emberc/internal/diag"
)

// TargetType is the kind of artifact a project builds.
type TargetType string

const (
	Library    TargetType = "library"
	Executable TargetType = "executable"
	Interface  TargetType = "interface"
)

// PlatformDefaults holds the target-triple and allocator overrides a
// project can pin, so a build is reproducible across machines with
// different system defaults.
type PlatformDefaults struct {
	Triple         string `yaml:"triple,omitempty"`
	Malloc         string `yaml:"malloc,omitempty"`
	Free           string `yaml:"free,omitempty"`
	Realloc        string `yaml:"realloc,omitempty"`
	RawPlatform    bool   `yaml:"raw-platform,omitempty"`
	MutableGlobals bool   `yaml:"mutable-globals,omitempty"`
}

// TargetOptions is the compile/link configuration shared by a project and
// each of its imports; an import's options are merged onto the project's.
type TargetOptions struct {
	Includes         []string         `yaml:"includes,omitempty"`
	IncludeArguments []string         `yaml:"include-arguments,omitempty"`
	Libraries        []string         `yaml:"libraries,omitempty"`
	DynamicLibraries []string         `yaml:"dynamic-libraries,omitempty"`
	LinkerOptions    []string         `yaml:"linker-options,omitempty"`
	Defaults         PlatformDefaults `yaml:"options,omitempty"`
}

// Merge appends other's list fields onto o in place and keeps o's own
// PlatformDefaults fields where set, falling back to other's.
func (o *TargetOptions) Merge(other TargetOptions) {
	o.Includes = append(o.Includes, other.Includes...)
	o.IncludeArguments = append(o.IncludeArguments, other.IncludeArguments...)
	o.Libraries = append(o.Libraries, other.Libraries...)
	o.DynamicLibraries = append(o.DynamicLibraries, other.DynamicLibraries...)
	o.LinkerOptions = append(o.LinkerOptions, other.LinkerOptions...)

	if o.Defaults.Triple == "" {
		o.Defaults.Triple = other.Defaults.Triple
	}
	if o.Defaults.Malloc == "" {
		o.Defaults.Malloc = other.Defaults.Malloc
	}
	if o.Defaults.Free == "" {
		o.Defaults.Free = other.Defaults.Free
	}
	if o.Defaults.Realloc == "" {
		o.Defaults.Realloc = other.Defaults.Realloc
	}
	o.Defaults.RawPlatform = o.Defaults.RawPlatform || other.Defaults.RawPlatform
	o.Defaults.MutableGlobals = o.Defaults.MutableGlobals || other.Defaults.MutableGlobals
}

// ImportKind distinguishes how an Import's Path resolves.
type ImportKind string

const (
	ImportFile  ImportKind = "file"
	ImportURL   ImportKind = "url"
	ImportCMake ImportKind = "cmake"
)

// Import is one dependency entry in a project's `import` list: either a
// path to another project file, a package repository URL, or a CMake
// package name. Kind is auto-detected from Path when the document leaves
// it implicit.
//
// The original format lets a plain string stand for a file import with no
// further options; this module always requires the explicit map form
// (a `path:` key plus an optional `kind:` of file, url or cmake) since
// goccy/go-yaml, like the
// rest of this codebase's dependencies, is driven entirely off static
// struct tags here rather than a custom polymorphic (un)marshaler.
type Import struct {
	Kind           ImportKind `yaml:"kind,omitempty"`
	Path           string     `yaml:"path"`
	Targets        []string   `yaml:"targets,omitempty"`
	BuildArguments []string   `yaml:"build-arguments,omitempty"`
	TargetOptions  `yaml:",inline"`
}

// ProjectFile is the root `project.yaml` document: what gets built, from
// which source files, into which output directory, and what it imports.
type ProjectFile struct {
	Type              TargetType `yaml:"type,omitempty"`
	Name              string     `yaml:"name,omitempty"`
	Files             []string   `yaml:"files,omitempty"`
	OutputDirectory   string     `yaml:"output-directory,omitempty"`
	PackagesDirectory string     `yaml:"packages-directory,omitempty"`
	Import            []Import   `yaml:"import,omitempty"`
	TargetOptions     `yaml:",inline"`
}

const defaultDirectory = "build"

// ResolveName returns Name if set, otherwise the base name of root without
// its extension — matching a project file inferring its own target name
// from its filename when the document doesn't state one.
func (p *ProjectFile) ResolveName(root string) (string, error) {
	if p.Name != "" {
		return p.Name, nil
	}
	stem := stemOf(root)
	if stem == "" {
		return "", fmt.Errorf("could not resolve target name for %s", root)
	}
	return stem, nil
}

func stemOf(path string) string {
	base := path
	for i := len(base) - 1; i >= 0; i-- {
		switch base[i] {
		case '/':
			base = base[i+1:]
			i = -1
		}
	}
	for i := len(base) - 1; i >= 0; i-- {
		if base[i] == '.' {
			return base[:i]
		}
	}
	return base
}

// OutputDir returns OutputDirectory, defaulting to "build".
func (p *ProjectFile) OutputDir() string {
	if p.OutputDirectory == "" {
		return defaultDirectory
	}
	return p.OutputDirectory
}

// PackagesDir returns PackagesDirectory, defaulting to "build".
func (p *ProjectFile) PackagesDir() string {
	if p.PackagesDirectory == "" {
		return defaultDirectory
	}
	return p.PackagesDirectory
}

// LoadProjectFile reads and parses a project file at path.
func LoadProjectFile(path string) (*ProjectFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diag.IOf(0, "reading project file %s: %v", path, err)
	}
	var p ProjectFile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, diag.IOf(0, "parsing project file %s: %v", path, err)
	}
	for i := range p.Import {
		p.Import[i].detectKind()
	}
	return &p, nil
}

// detectKind fills Kind from Path's shape when the document left it
// implicit: an http(s) URL, otherwise a plain file path.
func (imp *Import) detectKind() {
	if imp.Kind != "" {
		return
	}
	if hasScheme(imp.Path, "http") || hasScheme(imp.Path, "https") {
		imp.Kind = ImportURL
	} else {
		imp.Kind = ImportFile
	}
}

func hasScheme(path, scheme string) bool {
	return len(path) > len(scheme)+2 && path[:len(scheme)] == scheme && path[len(scheme):len(scheme)+3] == "://"
}

// Save serializes p to path as YAML.
func (p *ProjectFile) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("serializing project file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return diag.IOf(0, "writing project file %s: %v", path, err)
	}
	return nil
}
