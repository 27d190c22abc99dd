package expr

import (
	"fmt"

	"github.com/cwbudde/emberc/internal/ast"
	"github.com/cwbudde/emberc/internal/convert"
	"github.com/cwbudde/emberc/internal/types"
)

// LowerBinary lowers one binary combinator application (§4.3 "Binary
// combinators"): the parser has already reduced the flat atom/operator
// list left-to-right per the precedence table, so this only needs to
// negotiate a common operand type and pick the result type for op.
func LowerBinary(ctx Context, n *ast.BinaryExpr) (Wrapped, error) {
	lw, err := Lower(ctx, n.Left)
	if err != nil {
		return Wrapped{}, err
	}
	left, err := InferTwice(lw)
	if err != nil {
		return Wrapped{}, err
	}

	rw, err := Lower(ctx, n.Right)
	if err != nil {
		return Wrapped{}, err
	}
	right, err := InferTwice(rw)
	if err != nil {
		return Wrapped{}, err
	}

	switch n.Op {
	case ast.And, ast.Or:
		l, ok := convert.Convert(ctx.Emitter, left, types.BOOL, false)
		if !ok {
			return Wrapped{}, fmt.Errorf("%s requires a bool-convertible left operand, got %s", opName(n.Op), left.Type)
		}
		r, ok := convert.Convert(ctx.Emitter, right, types.BOOL, false)
		if !ok {
			return Wrapped{}, fmt.Errorf("%s requires a bool-convertible right operand, got %s", opName(n.Op), right.Type)
		}
		_, _ = l, r
		return ResultOf(convert.Value{Type: types.BOOL, Flags: convert.Temporary}), nil

	case ast.EQ, ast.NE, ast.GT, ast.GE, ast.LT, ast.LE:
		if _, _, ok := convert.ConvertDouble(ctx.Emitter, left, ctx.Emitter, right); !ok {
			return Wrapped{}, fmt.Errorf("%s: %s and %s have no common type", opName(n.Op), left.Type, right.Type)
		}
		return ResultOf(convert.Value{Type: types.BOOL, Flags: convert.Temporary}), nil

	case ast.Fallback:
		return lowerFallback(ctx, left, right)

	default: // Mul, Div, Add, Sub, Mod
		l, r, ok := convert.ConvertDouble(ctx.Emitter, left, ctx.Emitter, right)
		if !ok {
			return Wrapped{}, fmt.Errorf("%s: %s and %s have no common type", opName(n.Op), left.Type, right.Type)
		}
		_ = r
		return ResultOf(convert.Value{Type: l.Type, Flags: convert.Temporary}), nil
	}
}

// lowerFallback implements `left ?? right` (SPEC_FULL.md §9): left must be
// Optional; yields left's inner value if present, otherwise right.
func lowerFallback(ctx Context, left, right convert.Value) (Wrapped, error) {
	opt, ok := left.Type.(*types.OptionalType)
	if !ok {
		return Wrapped{}, fmt.Errorf("?? requires an optional left operand, got %s", left.Type)
	}
	converted, ok := convert.Convert(ctx.Emitter, right, opt.Inner, false)
	if !ok {
		return Wrapped{}, fmt.Errorf("?? fallback value %s does not match optional's inner type %s", right.Type, opt.Inner)
	}
	return ResultOf(convert.Value{Type: converted.Type, Flags: convert.Temporary}), nil
}

func opName(op ast.BinaryOp) string {
	names := map[ast.BinaryOp]string{
		ast.Mul: "*", ast.Div: "/", ast.Add: "+", ast.Sub: "-", ast.Mod: "%",
		ast.EQ: "==", ast.NE: "!=", ast.GT: ">", ast.GE: ">=", ast.LT: "<", ast.LE: "<=",
		ast.And: "&&", ast.Or: "||", ast.Fallback: "??",
	}
	if s, ok := names[op]; ok {
		return s
	}
	return "?"
}
