package expr

import (
	"fmt"

	"github.com/cwbudde/emberc/internal/ast"
	"github.com/cwbudde/emberc/internal/convert"
	"github.com/cwbudde/emberc/internal/types"
)

// LowerNoun lowers an atom (§4.3 "Noun lowering"): a parenthesized
// expression, a reference name, a `new` allocation, a special literal
// (`null`/`nothing`/`any`), a boolean/numeric/string literal, or an array
// literal.
func LowerNoun(ctx Context, n ast.Expr) (Wrapped, error) {
	switch v := n.(type) {
	case *ast.ParenExpr:
		return Lower(ctx, v.Inner)

	case *ast.RefExpr:
		candidates := ctx.Scope.FindAll(v.Name)
		if len(candidates) == 0 {
			return Wrapped{}, fmt.Errorf("undeclared name %q", v.Name)
		}
		return UnresolvedOf(Unresolved{Name: v.Name, Candidates: candidates}), nil

	case *ast.NewExpr:
		return lowerNew(ctx, v)

	case *ast.NullExpr:
		return ResultOf(constValue(ctx, types.NULL, func(e Emitter) any { return e.ConstNull(types.NULL) })), nil

	case *ast.NothingExpr:
		return ResultOf(convert.Value{Type: types.NOTHING}), nil

	case *ast.AnyExpr:
		return ResultOf(convert.Value{Type: types.ANY}), nil

	case *ast.BoolLit:
		val := v.Value
		return ResultOf(constValue(ctx, types.BOOL, func(e Emitter) any { return e.ConstBool(val) })), nil

	case *ast.IntLit:
		t := types.INT
		if v.Unsigned {
			t = types.UINT
		}
		val := v.Value
		return ResultOf(constValue(ctx, t, func(e Emitter) any { return e.ConstInt(val, t) })), nil

	case *ast.FloatLit:
		val := v.Value
		return ResultOf(constValue(ctx, types.DOUBLE, func(e Emitter) any { return e.ConstFloat(val, types.DOUBLE) })), nil

	case *ast.StringLit:
		// Emitted as an unbounded-reference global (§4.3).
		strType := &types.ArrayType{Inner: types.UBYTE, Kind_: types.Unbounded}
		val := v.Value
		return ResultOf(constValue(ctx, strType, func(e Emitter) any { return e.ConstString(val) })), nil

	case *ast.ArrayLit:
		return lowerArrayLit(ctx, v)

	default:
		return Wrapped{}, fmt.Errorf("%T is not a noun", n)
	}
}

func constValue(ctx Context, t types.Type, build func(Emitter) any) convert.Value {
	var handle any
	if ctx.Emitter != nil {
		handle = build(ctx.Emitter)
	}
	return convert.Value{Handle: handle, Type: t}
}

func lowerNew(ctx Context, n *ast.NewExpr) (Wrapped, error) {
	t, err := ctx.Builder.ResolveTypeExpr(n.Type)
	if err != nil {
		return Wrapped{}, err
	}

	args, err := lowerArgValues(ctx, n.Args)
	if err != nil {
		return Wrapped{}, err
	}

	var handle any
	if ctx.Emitter != nil {
		handle = ctx.Emitter.AllocHeap(t)
		raw := make([]any, len(args))
		for i, a := range args {
			raw[i] = a.Handle
		}
		ctx.Emitter.CopyInitialize(handle, t, raw)
	}

	return ResultOf(convert.Value{
		Handle: handle,
		Type:   &types.ReferenceType{Inner: t, Mutable: true, Kind_: types.Unique},
	}), nil
}

func lowerArrayLit(ctx Context, n *ast.ArrayLit) (Wrapped, error) {
	elems := make([]convert.Value, 0, len(n.Elements))
	for _, e := range n.Elements {
		w, err := Lower(ctx, e)
		if err != nil {
			return Wrapped{}, err
		}
		v, err := InferTwice(w)
		if err != nil {
			return Wrapped{}, err
		}
		elems = append(elems, v)
	}

	var elemType types.Type = types.ANY
	if len(elems) > 0 {
		elemType = elems[0].Type
	}
	arrType := &types.ArrayType{Inner: elemType, Kind_: types.FixedSize, Size: len(elems)}

	var handle any
	if ctx.Emitter != nil {
		handle = ctx.Emitter.AllocFixedArray(arrType)
		for i, v := range elems {
			ctx.Emitter.StoreElement(handle, i, v.Handle)
		}
	}

	return ResultOf(convert.Value{Handle: handle, Type: arrType}), nil
}

func lowerArgValues(ctx Context, args []ast.Arg) ([]convert.Value, error) {
	values := make([]convert.Value, 0, len(args))
	for _, a := range args {
		w, err := Lower(ctx, a.Value)
		if err != nil {
			return nil, err
		}
		v, err := InferTwice(w)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
