package cmd

import (
	"path/filepath"

	"github.com/cwbudde/emberc/internal/diag"
	"github.com/cwbudde/emberc/internal/project"
	"github.com/cwbudde/emberc/internal/source"
	"github.com/cwbudde/emberc/internal/symbols"
)

// frontEnd parses one source file into a Program plus its import
// Dependencies. Parser grammar is explicitly left unspecified by this
// compiler's own scope, so no lexer/parser ships in this module; an
// embedding tool wires a concrete front end in here before calling
// analyzeProject. Left nil, every pipeline command reports a single clear
// diagnostic instead of silently producing an empty program.
var frontEnd source.Parser

// analyzeProject loads projectFile, resolves every listed source file's
// transitive import closure through a source.Manager, and runs the global
// symbol builder over each resulting file. It returns every diagnostic
// produced; a nil slice with a nil error means the project type-checked
// cleanly.
func analyzeProject(projectFile string) ([]*diag.Error, error) {
	if frontEnd == nil {
		return []*diag.Error{diag.IOf(0,
			"no front end is registered; emberc's parser grammar is a separate " +
				"concern from this analyzer and must be wired in before compiling")}, nil
	}

	proj, err := project.LoadProjectFile(projectFile)
	if err != nil {
		return nil, err
	}
	root := filepath.Dir(projectFile)

	mgr := source.NewManager(frontEnd, nil)
	seen := make(map[*source.File]struct{})
	for _, name := range proj.Files {
		f, err := mgr.Get(name, root, "")
		if err != nil {
			return nil, err
		}
		closure, err := f.Resolve(mgr)
		if err != nil {
			return nil, err
		}
		for cf := range closure {
			seen[cf] = struct{}{}
		}
	}

	var diags []*diag.Error
	for f := range seen {
		b := symbols.NewBuilder()
		if err := b.Build(f.Program); err != nil {
			for _, e := range b.Errors() {
				diags = append(diags, diag.Verifyf(0, "%s: %v", f.Path, e).WithSource(f.Path, ""))
			}
		}
	}
	return diags, nil
}
