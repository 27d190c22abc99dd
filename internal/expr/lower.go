package expr

import (
	"fmt"

	"github.com/cwbudde/emberc/internal/ast"
)

// Lower dispatches one expression node to noun, modifier or combinator
// lowering, per §4.3. It is the single recursive entry point every other
// lowering function in this package calls back into for sub-expressions.
func Lower(ctx Context, e ast.Expr) (Wrapped, error) {
	switch v := e.(type) {
	case *ast.ParenExpr, *ast.RefExpr, *ast.NewExpr, *ast.NullExpr, *ast.NothingExpr,
		*ast.AnyExpr, *ast.BoolLit, *ast.IntLit, *ast.FloatLit, *ast.StringLit, *ast.ArrayLit:
		return LowerNoun(ctx, e)

	case *ast.CallExpr:
		return LowerCall(ctx, v)
	case *ast.DotExpr:
		return LowerDot(ctx, v)
	case *ast.IndexExpr:
		return LowerIndex(ctx, v)
	case *ast.TernaryExpr:
		return LowerTernary(ctx, v)
	case *ast.CastExpr:
		return LowerCast(ctx, v)
	case *ast.UnaryExpr:
		return LowerUnary(ctx, v)

	case *ast.BinaryExpr:
		return LowerBinary(ctx, v)

	default:
		return Wrapped{}, fmt.Errorf("%T is not a recognized expression node", e)
	}
}
