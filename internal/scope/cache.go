package scope

import "github.com/cwbudde/emberc/internal/types"

// VariableBinding is what a scope cache resolves a declaring node to: the
// backend storage handle for a local variable plus its resolved type.
type VariableBinding struct {
	Handle  any
	Type    types.Type
	Mutable bool
}

// Cache maps a declaring AST node (any, to avoid an import cycle with
// internal/ast) to the VariableBinding a scope allocated for it. Lookups
// chain to Outer when the current scope has no entry, so a nested scope
// sees variables declared by its enclosing scopes without copying them.
type Cache struct {
	Outer   *Cache
	entries map[any]VariableBinding
}

// NewCache returns an empty Cache chained to outer (nil for a root scope).
func NewCache(outer *Cache) *Cache {
	return &Cache{Outer: outer, entries: make(map[any]VariableBinding)}
}

// Bind records binding for decl in this scope's own entries.
func (c *Cache) Bind(decl any, binding VariableBinding) {
	c.entries[decl] = binding
}

// Lookup finds the binding for decl, checking this scope then each
// enclosing scope in turn.
func (c *Cache) Lookup(decl any) (VariableBinding, bool) {
	for cur := c; cur != nil; cur = cur.Outer {
		if b, ok := cur.entries[decl]; ok {
			return b, true
		}
	}
	return VariableBinding{}, false
}

// ExprCache memoizes the lowered handle for an expression node, keyed by
// node identity. It is used for array-size expressions, which the type
// algebra's identity anchors (ArrayType.SizeExpr) reference by node rather
// than by value, and which must only be evaluated once per scope.
type ExprCache struct {
	entries map[any]any
}

// NewExprCache returns an empty ExprCache.
func NewExprCache() *ExprCache {
	return &ExprCache{entries: make(map[any]any)}
}

// Lookup returns the memoized handle for node, if any.
func (c *ExprCache) Lookup(node any) (any, bool) {
	handle, ok := c.entries[node]
	return handle, ok
}

// Store memoizes handle for node.
func (c *ExprCache) Store(node any, handle any) {
	c.entries[node] = handle
}
