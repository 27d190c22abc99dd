package expr

import (
	"github.com/cwbudde/emberc/internal/ast"
	"github.com/cwbudde/emberc/internal/diag"
)

// blame runs fn and converts any panic it raises into a diag.Error of kind
// Unreachable, carrying node's position and op (the invariant that was
// supposed to hold). Lowering code panics rather than threading an error
// return through every helper when a condition the earlier passes should
// have already ruled out turns up anyway; blame is the one place that
// turns that panic back into a normal diagnostic for the caller.
func blame(node ast.Node, op string, fn func() (Wrapped, error)) (result Wrapped, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = diag.Unreachablef(node.Position(), "%s: %v", op, r)
		}
	}()
	return fn()
}
