package expr

import (
	"github.com/cwbudde/emberc/internal/symbols"
)

// Context threads the state one expression lowering needs: the lexically
// current scope for name resolution, and the Builder for type-expression
// resolution (`new T`, `as T` casts, `*T(...)` constructor calls). There is
// no global mutable state (§5): every call site passes its own Context.
type Context struct {
	Scope   *symbols.SymbolTable
	Builder *symbols.Builder
	Emitter Emitter
}

// WithScope returns a copy of c scoped to a different (typically nested)
// SymbolTable, leaving Builder and Emitter unchanged.
func (c Context) WithScope(scope *symbols.SymbolTable) Context {
	c.Scope = scope
	return c
}
