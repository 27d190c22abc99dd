// Package source implements the Source/Project Manager: it collects and
// caches every file a build touches by absolute path, parses each exactly
// once, and resolves the transitive closure of a file's imports.
//
// The manager never inspects an AST's import nodes itself — the lexer and
// parser own that grammar, and are out of this module's current scope.
// Instead a Parser hands back a file's Dependencies alongside its parsed
// Program, the same information the original's ManagerFile constructor
// extracted from Kind::Import children.
package source

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/emberc/internal/ast"
	"github.com/cwbudde/emberc/internal/diag"
	"github.com/cwbudde/emberc/internal/project"
)

// Dependency is one `import` a file's Parser discovered, with the kind
// tag (empty/"ember" for a normal source import, "c" for a native header)
// that selects how Manager resolves its path.
type Dependency struct {
	Path string
	Kind string
}

// File is one parsed translation unit, owned and cached by a Manager.
type File struct {
	Path         string // absolute
	Kind         string
	Program      *ast.Program
	Dependencies []Dependency
}

// Parser parses one file's raw content into a Program plus the
// Dependencies its import declarations name. Supplied by the lexer/parser
// front end; Manager is decoupled from its concrete implementation.
type Parser func(path string, content []byte) (*ast.Program, []Dependency, error)

// Manager collects every file a build reaches, keyed by absolute path, so
// a file imported from two different translation units is parsed exactly
// once. Libraries resolves a native ("c") import whose path does not
// exist relative to its importer against each LibraryDocument's Includes,
// in order, the first match winning.
type Manager struct {
	Libraries []*project.LibraryDocument

	parse Parser
	nodes map[string]*File
}

// NewManager returns a Manager that parses files with parse.
func NewManager(parse Parser, libraries []*project.LibraryDocument) *Manager {
	return &Manager{parse: parse, Libraries: libraries, nodes: make(map[string]*File)}
}

// Get returns the cached File for path (resolved against root if path is
// relative), parsing it for the first time if necessary. An empty kind
// defaults to "ember".
func (m *Manager) Get(path, root, kind string) (*File, error) {
	fullPath := path
	if !filepath.IsAbs(fullPath) {
		fullPath = filepath.Join(root, path)
	}

	if _, err := os.Stat(fullPath); err != nil {
		resolved, ok := m.matchLibrary(path)
		if !ok {
			return nil, diag.IOf(0, "cannot find file under path %s", path)
		}
		fullPath = resolved
	}

	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return nil, diag.IOf(0, "resolving %s: %v", fullPath, err)
	}

	if f, ok := m.nodes[absPath]; ok {
		return f, nil
	}

	if kind == "" {
		kind = "ember"
	}
	f, err := m.load(absPath, kind)
	if err != nil {
		return nil, err
	}
	m.nodes[absPath] = f
	return f, nil
}

func (m *Manager) matchLibrary(path string) (string, bool) {
	if filepath.IsAbs(path) {
		return "", false
	}
	for _, lib := range m.Libraries {
		if match, ok := lib.Match(path); ok {
			return match, true
		}
	}
	return "", false
}

func (m *Manager) load(absPath, kind string) (*File, error) {
	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, diag.IOf(0, "reading %s: %v", absPath, err)
	}

	program, deps, err := m.parse(absPath, content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", absPath, err)
	}

	return &File{Path: absPath, Kind: kind, Program: program, Dependencies: deps}, nil
}

// Nodes returns every file the manager has loaded so far, for callers
// that need the whole working set (e.g. to drive analysis over every
// reached file, not just one root's transitive closure).
func (m *Manager) Nodes() map[string]*File {
	return m.nodes
}
