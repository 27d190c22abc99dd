package project

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/cwbudde/emberc/internal/diag"
)

// LibraryDocument describes how to compile against and link a native (C)
// library: where its headers live, which static/dynamic libraries to
// link, and any extra compiler arguments its use requires.
type LibraryDocument struct {
	Language         string   `yaml:"language"`
	Includes         []string `yaml:"includes,omitempty"`
	Libraries        []string `yaml:"libraries,omitempty"`
	DynamicLibraries []string `yaml:"dynamic-libraries,omitempty"`
	Arguments        []string `yaml:"arguments,omitempty"`
}

// LoadLibraryDocument reads a library document at path, resolving every
// relative Includes/Libraries/DynamicLibraries entry against root.
func LoadLibraryDocument(path, root string) (*LibraryDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diag.IOf(0, "reading library document %s: %v", path, err)
	}
	var doc LibraryDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, diag.IOf(0, "parsing library document %s: %v", path, err)
	}
	doc.Includes = resolveAll(root, doc.Includes)
	doc.Libraries = resolveAll(root, doc.Libraries)
	doc.DynamicLibraries = resolveAll(root, doc.DynamicLibraries)
	return &doc, nil
}

func resolveAll(root string, paths []string) []string {
	resolved := make([]string, len(paths))
	for i, p := range paths {
		if filepath.IsAbs(p) {
			resolved[i] = p
		} else {
			resolved[i] = filepath.Join(root, p)
		}
	}
	return resolved
}

// Match searches Includes in order for header, returning the path of
// header under the first include directory that contains it. Used to decide which library
// document satisfies an unresolved `#include`-style native import.
func (d *LibraryDocument) Match(header string) (string, bool) {
	for _, include := range d.Includes {
		candidate := filepath.Join(include, header)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}
