// Package symbols implements the Global Symbol Builder (§4.2): it walks a
// parsed Program and materializes every top-level type, global variable and
// function, and answers the two name-resolution queries `find`/`find_all`
// used throughout the Expression Engine.
package symbols

import "github.com/cwbudde/emberc/internal/types"

// BindingKind tags what a Binding names.
type BindingKind int

const (
	BindVar BindingKind = iota
	BindFunction
	BindType
)

// Binding is one named entry in a scope: a variable, a function (possibly
// one of several overloads sharing the name), or a type.
type Binding struct {
	Name    string
	Kind    BindingKind
	Type    types.Type // variable's type, or the function's FunctionType
	Node    any        // declaring AST node, used for identity and position
	Mutable bool
}

// SymbolTable is a chained scope: a per-scope slice of Bindings (insertion
// order preserved, so "closest declared" wins for Find), chained to an
// enclosing scope.
type SymbolTable struct {
	bindings map[string][]*Binding
	outer    *SymbolTable
	imports  []*SymbolTable // transitively-imported files' top-level scopes
}

// NewSymbolTable creates a root (global) scope.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{bindings: make(map[string][]*Binding)}
}

// NewEnclosedSymbolTable creates a scope nested inside outer.
func NewEnclosedSymbolTable(outer *SymbolTable) *SymbolTable {
	return &SymbolTable{bindings: make(map[string][]*Binding), outer: outer}
}

// AddImport registers another file's top-level scope as transitively
// reachable for name resolution that falls through the lexical chain.
func (s *SymbolTable) AddImport(other *SymbolTable) {
	s.imports = append(s.imports, other)
}

// Define adds a binding to the current scope.
func (s *SymbolTable) Define(b *Binding) {
	s.bindings[b.Name] = append(s.bindings[b.Name], b)
}

// Find answers the `find(name) → node*` query: the lexically closest
// binding, walking outward from this scope. The first variable encountered
// hides any later (outer) variable of the same name; a function or type
// name with no local variable shadow returns its first declaration.
func (s *SymbolTable) Find(name string) (*Binding, bool) {
	for scope := s; scope != nil; scope = scope.outer {
		if entries := scope.bindings[name]; len(entries) > 0 {
			return entries[0], true
		}
	}
	for _, imp := range s.rootImports() {
		if b, ok := imp.Find(name); ok {
			return b, true
		}
	}
	return nil, false
}

// FindAll answers the `find_all(name) → [node*]` query: every matching
// function/type declaration reachable from this scope (closest first), so
// overload resolution can pick among all of them. Only the first
// encountered variable of the name is included — later (outer) variables
// of the same name are hidden exactly as for Find, but functions/types are
// never hidden by an outer declaration of the same kind.
func (s *SymbolTable) FindAll(name string) []*Binding {
	var result []*Binding
	sawVar := false

	for scope := s; scope != nil; scope = scope.outer {
		for _, b := range scope.bindings[name] {
			if b.Kind == BindVar {
				if sawVar {
					continue
				}
				sawVar = true
			}
			result = append(result, b)
		}
	}

	if len(result) == 0 {
		for _, imp := range s.rootImports() {
			result = append(result, imp.FindAll(name)...)
		}
	}

	return result
}

// rootImports returns the imports registered on the root scope of the
// chain, since imports are only meaningful at file (global) scope.
func (s *SymbolTable) rootImports() []*SymbolTable {
	root := s
	for root.outer != nil {
		root = root.outer
	}
	return root.imports
}
