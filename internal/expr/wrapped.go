// Package expr implements the expression engine (§4.3): a handler-chain
// lowering of the precedence-resolved expression tree into a Wrapped value,
// and the `infer` collapse from a deferred name lookup to a concrete Result.
package expr

import (
	"fmt"

	"github.com/cwbudde/emberc/internal/convert"
	"github.com/cwbudde/emberc/internal/symbols"
	"github.com/cwbudde/emberc/internal/types"
)

// Unresolved is a name that has not yet been collapsed to a value: a plain
// identifier with its `find_all` candidate set, or the result of UFCS dot
// lookup carrying an implicit receiver to prepend to the eventual call's
// argument list.
type Unresolved struct {
	Name       string
	Candidates []*symbols.Binding
	Receiver   *convert.Value // non-nil for a UFCS-bound method set
}

// Wrapped is the expression engine's universal return value: either a
// Result (fully resolved) or an Unresolved name awaiting `infer`.
type Wrapped struct {
	Result     *convert.Value
	Unresolved *Unresolved
}

// IsResolved reports whether w already carries a concrete value.
func (w Wrapped) IsResolved() bool { return w.Result != nil }

// ResultOf wraps an already-resolved value.
func ResultOf(v convert.Value) Wrapped { return Wrapped{Result: &v} }

// UnresolvedOf wraps a deferred name lookup.
func UnresolvedOf(u Unresolved) Wrapped { return Wrapped{Unresolved: &u} }

// Infer collapses an Unresolved Wrapped to a Result, per §4.3: prefer a
// variable binding if one is among the candidates, wherever it stands in
// the list (FindAll keeps at most the closest variable, see
// internal/symbols); otherwise resolve a zero-argument overload from the
// function candidates, yielding the function value itself rather than a
// call of it; otherwise report an error. A Wrapped that is already a
// Result passes through unchanged.
func Infer(w Wrapped) (convert.Value, error) {
	if w.IsResolved() {
		return *w.Result, nil
	}
	u := w.Unresolved

	for _, c := range u.Candidates {
		if c.Kind == symbols.BindVar {
			return convert.Value{Type: c.Type, Flags: mutableFlag(c.Mutable)}, nil
		}
	}

	var zeroArg []*symbols.Binding
	for _, c := range u.Candidates {
		fn, ok := c.Type.(*types.FunctionType)
		if c.Kind == symbols.BindFunction && ok && len(fn.Parameters) == 0 {
			zeroArg = append(zeroArg, c)
		}
	}
	switch len(zeroArg) {
	case 1:
		return convert.Value{Type: zeroArg[0].Type}, nil
	case 0:
		return convert.Value{}, fmt.Errorf("%q does not refer to a variable or a callable zero-argument overload", u.Name)
	default:
		return convert.Value{}, fmt.Errorf("%q is ambiguous among %d zero-argument overloads", u.Name, len(zeroArg))
	}
}

// InferTwice applies Infer twice at an expression boundary (§4.3): the
// first Infer may land on a zero-parameter function *value* (e.g. a bare
// reference to a parameterless function, not a call), and the second pass
// auto-invokes it, reducing to the function's return type. A value flagged
// convert.Explicit is returned as is, without the auto-invoke.
func InferTwice(w Wrapped) (convert.Value, error) {
	v, err := Infer(w)
	if err != nil {
		return convert.Value{}, err
	}
	if fn, ok := v.Type.(*types.FunctionType); ok && len(fn.Parameters) == 0 && !v.Is(convert.Explicit) {
		return convert.Value{Type: fn.ReturnType}, nil
	}
	return v, nil
}

func mutableFlag(mutable bool) convert.Flag {
	if mutable {
		return convert.Mutable
	}
	return 0
}
