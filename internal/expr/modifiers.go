package expr

import (
	"fmt"

	"github.com/cwbudde/emberc/internal/ast"
	"github.com/cwbudde/emberc/internal/convert"
	"github.com/cwbudde/emberc/internal/types"
)

// LowerTernary lowers `cond ? then : else`: negotiate a common type for
// the two branches (§4.4 Negotiation) and convert each branch to it.
func LowerTernary(ctx Context, n *ast.TernaryExpr) (Wrapped, error) {
	cw, err := Lower(ctx, n.Cond)
	if err != nil {
		return Wrapped{}, err
	}
	cond, err := InferTwice(cw)
	if err != nil {
		return Wrapped{}, err
	}
	cond, ok := convert.Convert(ctx.Emitter, cond, types.BOOL, false)
	if !ok {
		return Wrapped{}, fmt.Errorf("ternary condition must convert to bool, got %s", cond.Type)
	}

	tw, err := Lower(ctx, n.Then)
	if err != nil {
		return Wrapped{}, err
	}
	then, err := InferTwice(tw)
	if err != nil {
		return Wrapped{}, err
	}

	ew, err := Lower(ctx, n.Else)
	if err != nil {
		return Wrapped{}, err
	}
	els, err := InferTwice(ew)
	if err != nil {
		return Wrapped{}, err
	}

	left, right, ok := convert.ConvertDouble(ctx.Emitter, then, ctx.Emitter, els)
	if !ok {
		return Wrapped{}, fmt.Errorf("ternary branches have incompatible types %s and %s", then.Type, els.Type)
	}
	_ = right

	return ResultOf(convert.Value{Type: left.Type, Flags: convert.Temporary}), nil
}

// LowerCast lowers `inner as T`: a forced conversion (§4.4 rule 3's
// "Forced" family and beyond — `force=true` unlocks every rule, not only
// the forced-only ones).
func LowerCast(ctx Context, n *ast.CastExpr) (Wrapped, error) {
	iw, err := Lower(ctx, n.Inner)
	if err != nil {
		return Wrapped{}, err
	}
	inner, err := InferTwice(iw)
	if err != nil {
		return Wrapped{}, err
	}

	target, err := ctx.Builder.ResolveTypeExpr(n.Type)
	if err != nil {
		return Wrapped{}, err
	}

	converted, ok := convert.Convert(ctx.Emitter, inner, target, true)
	if !ok {
		return Wrapped{}, fmt.Errorf("cannot cast %s to %s", inner.Type, target)
	}
	return ResultOf(converted), nil
}

// LowerUnary lowers a prefix-operator application: logical not, numeric
// negation, address-of (borrow a Regular reference to an addressable
// value), and dereference (load through any reference kind).
func LowerUnary(ctx Context, n *ast.UnaryExpr) (Wrapped, error) {
	iw, err := Lower(ctx, n.Inner)
	if err != nil {
		return Wrapped{}, err
	}

	switch n.Op {
	case ast.Not:
		v, err := InferTwice(iw)
		if err != nil {
			return Wrapped{}, err
		}
		v, ok := convert.Convert(ctx.Emitter, v, types.BOOL, false)
		if !ok {
			return Wrapped{}, fmt.Errorf("! requires a bool-convertible operand, got %s", v.Type)
		}
		return ResultOf(convert.Value{Type: types.BOOL, Flags: convert.Temporary}), nil

	case ast.Negate:
		v, err := InferTwice(iw)
		if err != nil {
			return Wrapped{}, err
		}
		p, ok := v.Type.(*types.PrimitiveType)
		if !ok || !(p.IsInteger() || p.IsFloat()) {
			return Wrapped{}, fmt.Errorf("- requires a numeric operand, got %s", v.Type)
		}
		return ResultOf(convert.Value{Type: v.Type, Flags: convert.Temporary}), nil

	case ast.AddressOf:
		v, err := InferTwice(iw)
		if err != nil {
			return Wrapped{}, err
		}
		if !v.Is(convert.Reference) {
			return Wrapped{}, fmt.Errorf("& requires an addressable operand")
		}
		refType := &types.ReferenceType{Inner: v.Type, Mutable: v.Is(convert.Mutable), Kind_: types.Regular}
		return ResultOf(convert.Value{Handle: v.Handle, Type: refType}), nil

	case ast.Dereference:
		v, err := InferTwice(iw)
		if err != nil {
			return Wrapped{}, err
		}
		ref, ok := v.Type.(*types.ReferenceType)
		if !ok {
			return Wrapped{}, fmt.Errorf("@ requires a reference operand, got %s", v.Type)
		}
		var handle any
		if ctx.Emitter != nil && v.Handle != nil {
			handle = ctx.Emitter.Load(v.Handle, ref.Inner)
		}
		flags := convert.Reference
		if ref.Mutable {
			flags |= convert.Mutable
		}
		return ResultOf(convert.Value{Handle: handle, Type: ref.Inner, Flags: flags}), nil

	default:
		return Wrapped{}, fmt.Errorf("unhandled unary operator %v", n.Op)
	}
}
