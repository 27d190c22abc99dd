package expr

import (
	"fmt"

	"github.com/cwbudde/emberc/internal/ast"
	"github.com/cwbudde/emberc/internal/convert"
	"github.com/cwbudde/emberc/internal/symbols"
	"github.com/cwbudde/emberc/internal/types"
)

// LowerDot lowers `receiver.Name` (§4.3 "Dot operator"): two handlers
// tried in order, field access then uniform-function-call syntax.
func LowerDot(ctx Context, n *ast.DotExpr) (Wrapped, error) {
	w, err := Lower(ctx, n.Receiver)
	if err != nil {
		return Wrapped{}, err
	}
	recv, err := InferTwice(w)
	if err != nil {
		return Wrapped{}, err
	}

	if result, ok := dotField(ctx, recv, n.Name); ok {
		return ResultOf(result), nil
	}
	if wrapped, ok := dotUFCS(ctx, recv, n.Name); ok {
		return wrapped, nil
	}
	return Wrapped{}, fmt.Errorf("%q has no field or function named %q", recv.Type, n.Name)
}

// dotField dereferences through any number of reference layers to find the
// underlying Named type, then locates the matching field, returning a
// reference to it that preserves the source's Mutable/Temporary flags.
func dotField(ctx Context, recv convert.Value, name string) (convert.Value, bool) {
	handle := recv.Handle
	flags := recv.Flags
	t := recv.Type

	for {
		ref, ok := t.(*types.ReferenceType)
		if !ok {
			break
		}
		if ref.Mutable {
			flags |= convert.Mutable
		}
		t = ref.Inner
		if ctx.Emitter != nil && handle != nil {
			handle = ctx.Emitter.Load(handle, ref.Inner)
		}
	}

	named, ok := t.(*types.NamedType)
	if !ok {
		return convert.Value{}, false
	}
	idx := named.FieldIndex(name)
	if idx < 0 {
		return convert.Value{}, false
	}
	field := named.Fields[idx]

	var fieldHandle any
	if ctx.Emitter != nil {
		fieldHandle = ctx.Emitter.FieldGEP(handle, named, idx)
	}

	resultFlags := convert.Reference
	if field.Mutable && flags.Is(convert.Mutable) {
		resultFlags |= convert.Mutable
	}
	if flags.Is(convert.Temporary) {
		resultFlags |= convert.Temporary
	}
	return convert.Value{Handle: fieldHandle, Type: field.Type, Flags: resultFlags}, true
}

// dotUFCS searches every function whose first parameter can accept recv,
// wrapping the matches into an Unresolved with recv as the implicit
// receiver so a subsequent call operator performs overload resolution with
// the receiver prepended to the argument list.
func dotUFCS(ctx Context, recv convert.Value, name string) (Wrapped, bool) {
	candidates := ctx.Scope.FindAll(name)
	var accepted []*symbols.Binding
	for _, c := range candidates {
		fn, ok := c.Type.(*types.FunctionType)
		if !ok || c.Kind != symbols.BindFunction || len(fn.Parameters) == 0 {
			continue
		}
		if _, ok := convert.Convert(ctx.Emitter, recv, fn.Parameters[0].Type, false); ok {
			accepted = append(accepted, c)
		}
	}
	if len(accepted) == 0 {
		return Wrapped{}, false
	}
	return UnresolvedOf(Unresolved{Name: name, Candidates: accepted, Receiver: &recv}), true
}
