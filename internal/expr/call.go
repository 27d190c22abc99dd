package expr

import (
	"fmt"

	"github.com/cwbudde/emberc/internal/ast"
	"github.com/cwbudde/emberc/internal/convert"
	"github.com/cwbudde/emberc/internal/match"
	"github.com/cwbudde/emberc/internal/symbols"
	"github.com/cwbudde/emberc/internal/types"
)

// LowerCall lowers `callee(args...)` (§4.3 "Call operator"): three
// handlers tried in order — call-on-new (`*T(args)`, sugar for `new
// T(args)`), call-on-function-or-type (overload-resolve against the
// function candidates in the callee's candidate set; type candidates are
// skipped, so a callee that names only a type is reported as not a
// callable function), and call-on-value (invoke an already-resolved
// function value).
func LowerCall(ctx Context, n *ast.CallExpr) (Wrapped, error) {
	if star, ok := n.Callee.(*ast.UnaryExpr); ok && star.Op == ast.Dereference {
		if ref, ok := star.Inner.(*ast.RefExpr); ok {
			if _, isType := ctx.Builder.Types[ref.Name]; isType {
				return lowerCallOnNew(ctx, ref.Name, n.Args)
			}
		}
	}

	w, err := Lower(ctx, n.Callee)
	if err != nil {
		return Wrapped{}, err
	}

	if !w.IsResolved() && !hasVariableCandidate(*w.Unresolved) {
		u := *w.Unresolved
		return blame(n, "call to function or type", func() (Wrapped, error) {
			return lowerCallOnFunctionOrType(ctx, u, n.Args)
		})
	}

	callee, err := Infer(w)
	if err != nil {
		return Wrapped{}, err
	}
	return lowerCallOnValue(ctx, callee, n.Args)
}

// sameCandidate reports whether a and b name the same overload. Name alone
// does not distinguish overloads, so parameter types are compared too.
func sameCandidate(a, b match.Candidate) bool {
	if a.Name != b.Name || len(a.Parameters) != len(b.Parameters) {
		return false
	}
	for i := range a.Parameters {
		if !a.Parameters[i].Type.Equals(b.Parameters[i].Type) {
			return false
		}
	}
	return true
}

func hasVariableCandidate(u Unresolved) bool {
	for _, c := range u.Candidates {
		if c.Kind == symbols.BindVar {
			return true
		}
	}
	return false
}

func lowerCallOnNew(ctx Context, typeName string, args []ast.Arg) (Wrapped, error) {
	named := ctx.Builder.Types[typeName]
	values, err := lowerArgValues(ctx, args)
	if err != nil {
		return Wrapped{}, err
	}

	var handle any
	if ctx.Emitter != nil {
		handle = ctx.Emitter.AllocHeap(named)
		raw := make([]any, len(values))
		for i, v := range values {
			raw[i] = v.Handle
		}
		ctx.Emitter.CopyInitialize(handle, named, raw)
	}

	return ResultOf(convert.Value{
		Handle: handle,
		Type:   &types.ReferenceType{Inner: named, Mutable: true, Kind_: types.Unique},
	}), nil
}

func lowerCallOnFunctionOrType(ctx Context, u Unresolved, args []ast.Arg) (Wrapped, error) {
	values, err := lowerArgValues(ctx, args)
	if err != nil {
		return Wrapped{}, err
	}

	matchArgs := make([]match.Arg, 0, len(values)+1)
	if u.Receiver != nil {
		matchArgs = append(matchArgs, match.Arg{Value: *u.Receiver})
	}
	for i, a := range args {
		matchArgs = append(matchArgs, match.Arg{Name: a.Name, Value: values[i]})
	}

	var candidates []match.Candidate
	var funcTypes []*types.FunctionType
	for _, c := range u.Candidates {
		fn, ok := c.Type.(*types.FunctionType)
		if !ok || c.Kind != symbols.BindFunction {
			continue
		}
		params := make([]match.Parameter, len(fn.Parameters))
		for i, p := range fn.Parameters {
			params[i] = match.Parameter{Name: p.Name, Type: p.Type}
		}
		candidates = append(candidates, match.Candidate{Name: c.Name, Parameters: params})
		funcTypes = append(funcTypes, fn)
	}
	if len(candidates) == 0 {
		return Wrapped{}, fmt.Errorf("%q does not name a callable function", u.Name)
	}

	outcome, err := match.Call(ctx.Emitter, candidates, match.Input{Args: matchArgs})
	if err != nil {
		return Wrapped{}, fmt.Errorf("call to %q: %w", u.Name, err)
	}

	var retType types.Type
	found := false
	for i, c := range candidates {
		if sameCandidate(c, outcome.Candidate) {
			retType = funcTypes[i].ReturnType
			found = true
			break
		}
	}
	if !found {
		panic(fmt.Sprintf("match.Call returned a candidate %q absent from its own input set", outcome.Candidate.Name))
	}

	var handle any
	if ctx.Emitter != nil {
		raw := make([]any, len(outcome.Result.Bound))
		for i, b := range outcome.Result.Bound {
			raw[i] = b.Handle
		}
		handle = ctx.Emitter.Call(outcome.Candidate.Name, raw)
	}
	return ResultOf(convert.Value{Handle: handle, Type: retType, Flags: convert.Temporary}), nil
}

func lowerCallOnValue(ctx Context, callee convert.Value, args []ast.Arg) (Wrapped, error) {
	fn, ok := callee.Type.(*types.FunctionType)
	if !ok {
		return Wrapped{}, fmt.Errorf("%s is not callable", callee.Type)
	}

	values, err := lowerArgValues(ctx, args)
	if err != nil {
		return Wrapped{}, err
	}
	if len(values) != len(fn.Parameters) {
		return Wrapped{}, fmt.Errorf("expected %d arguments, got %d", len(fn.Parameters), len(values))
	}

	converted := make([]any, len(values))
	for i, v := range values {
		cv, ok := convert.Convert(ctx.Emitter, v, fn.Parameters[i].Type, false)
		if !ok {
			return Wrapped{}, fmt.Errorf("argument %d: cannot convert %s to %s", i, v.Type, fn.Parameters[i].Type)
		}
		converted[i] = cv.Handle
	}

	var handle any
	if ctx.Emitter != nil {
		handle = ctx.Emitter.Call(callee.Handle, converted)
	}
	return ResultOf(convert.Value{Handle: handle, Type: fn.ReturnType, Flags: convert.Temporary}), nil
}
