package expr

import (
	"testing"

	"github.com/cwbudde/emberc/internal/ast"
	"github.com/cwbudde/emberc/internal/symbols"
	"github.com/cwbudde/emberc/internal/types"
)

func newTestContext() Context {
	b := symbols.NewBuilder()
	return Context{Scope: b.Scope, Builder: b}
}

func TestLowerNounBoolLit(t *testing.T) {
	ctx := newTestContext()
	w, err := Lower(ctx, &ast.BoolLit{Value: true})
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	if !w.Result.Type.Equals(types.BOOL) {
		t.Errorf("got %s, want Bool", w.Result.Type)
	}
}

func TestLowerNounIntLitSignedness(t *testing.T) {
	ctx := newTestContext()

	signed, _ := Lower(ctx, &ast.IntLit{Value: 5})
	if !signed.Result.Type.Equals(types.INT) {
		t.Errorf("signed literal got %s, want Int", signed.Result.Type)
	}

	unsigned, _ := Lower(ctx, &ast.IntLit{Value: 5, Unsigned: true})
	if !unsigned.Result.Type.Equals(types.UINT) {
		t.Errorf("unsigned literal got %s, want UInt", unsigned.Result.Type)
	}
}

func TestLowerNounFloatLit(t *testing.T) {
	ctx := newTestContext()
	w, _ := Lower(ctx, &ast.FloatLit{Value: 3.14})
	if !w.Result.Type.Equals(types.DOUBLE) {
		t.Errorf("got %s, want Double", w.Result.Type)
	}
}

func TestLowerNounStringLitIsUnboundedByteArray(t *testing.T) {
	ctx := newTestContext()
	w, _ := Lower(ctx, &ast.StringLit{Value: "hi"})
	arr, ok := w.Result.Type.(*types.ArrayType)
	if !ok || arr.Kind_ != types.Unbounded {
		t.Fatalf("got %s, want an Unbounded array", w.Result.Type)
	}
}

func TestLowerNounNullNothingAny(t *testing.T) {
	ctx := newTestContext()

	n, _ := Lower(ctx, &ast.NullExpr{})
	if !n.Result.Type.Equals(types.NULL) {
		t.Errorf("null: got %s", n.Result.Type)
	}
	nothing, _ := Lower(ctx, &ast.NothingExpr{})
	if !nothing.Result.Type.Equals(types.NOTHING) {
		t.Errorf("nothing: got %s", nothing.Result.Type)
	}
	any_, _ := Lower(ctx, &ast.AnyExpr{})
	if !any_.Result.Type.Equals(types.ANY) {
		t.Errorf("any: got %s", any_.Result.Type)
	}
}

func TestLowerNounRefExprUndeclaredIsError(t *testing.T) {
	ctx := newTestContext()
	if _, err := Lower(ctx, &ast.RefExpr{Name: "nope"}); err == nil {
		t.Fatal("expected an undeclared reference to be an error")
	}
}

func TestLowerNounRefExprResolvesToUnresolved(t *testing.T) {
	ctx := newTestContext()
	decl := &ast.VarDecl{Name: "x"}
	ctx.Scope.Define(&symbols.Binding{Name: "x", Kind: symbols.BindVar, Type: types.INT, Node: decl})

	w, err := Lower(ctx, &ast.RefExpr{Name: "x"})
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	if w.IsResolved() {
		t.Fatal("expected a bare name to lower to Unresolved, awaiting infer")
	}
	v, err := Infer(w)
	if err != nil || !v.Type.Equals(types.INT) {
		t.Errorf("Infer: %v, %+v", err, v)
	}
}

func TestLowerNounArrayLitInfersElementTypeAndSize(t *testing.T) {
	ctx := newTestContext()
	lit := &ast.ArrayLit{Elements: []ast.Expr{&ast.IntLit{Value: 1}, &ast.IntLit{Value: 2}, &ast.IntLit{Value: 3}}}

	w, err := Lower(ctx, lit)
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	arr, ok := w.Result.Type.(*types.ArrayType)
	if !ok || arr.Kind_ != types.FixedSize || arr.Size != 3 || !arr.Inner.Equals(types.INT) {
		t.Fatalf("got %s", w.Result.Type)
	}
}

func TestLowerNounParenUnwraps(t *testing.T) {
	ctx := newTestContext()
	w, err := Lower(ctx, &ast.ParenExpr{Inner: &ast.BoolLit{Value: false}})
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	if !w.Result.Type.Equals(types.BOOL) {
		t.Errorf("got %s", w.Result.Type)
	}
}

func TestLowerNounNewAllocatesUniqueReference(t *testing.T) {
	ctx := newTestContext()
	td := &ast.TypeDecl{Name: "Point"}
	ctx.Builder.Build(&ast.Program{Declarations: []ast.Decl{td}})

	w, err := Lower(ctx, &ast.NewExpr{Type: &ast.NameType{Name: "Point"}})
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	ref, ok := w.Result.Type.(*types.ReferenceType)
	if !ok || ref.Kind_ != types.Unique || !ref.Mutable {
		t.Fatalf("got %s, want a mutable Unique reference", w.Result.Type)
	}
}
