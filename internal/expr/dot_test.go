package expr

import (
	"testing"

	"github.com/cwbudde/emberc/internal/ast"
	"github.com/cwbudde/emberc/internal/convert"
	"github.com/cwbudde/emberc/internal/symbols"
	"github.com/cwbudde/emberc/internal/types"
)

func TestLowerDotFieldAccess(t *testing.T) {
	ctx := newTestContext()
	point := &types.NamedType{Name: "Point", Fields: []types.Field{
		{Name: "x", Type: types.INT, Mutable: true},
		{Name: "y", Type: types.INT},
	}}
	ctx.Scope.Define(&symbols.Binding{Name: "p", Kind: symbols.BindVar, Type: point, Mutable: true})

	w, err := LowerDot(ctx, &ast.DotExpr{Receiver: &ast.RefExpr{Name: "p"}, Name: "x"})
	if err != nil {
		t.Fatalf("LowerDot: %v", err)
	}
	if !w.Result.Type.Equals(types.INT) || !w.Result.Is(convert.Reference) || !w.Result.Is(convert.Mutable) {
		t.Errorf("got %+v", w.Result)
	}
}

func TestLowerDotDereferencesThroughReference(t *testing.T) {
	ctx := newTestContext()
	point := &types.NamedType{Name: "Point", Fields: []types.Field{{Name: "x", Type: types.INT}}}
	ctx.Scope.Define(&symbols.Binding{
		Name: "p", Kind: symbols.BindVar,
		Type: &types.ReferenceType{Inner: point, Kind_: types.Regular},
	})

	w, err := LowerDot(ctx, &ast.DotExpr{Receiver: &ast.RefExpr{Name: "p"}, Name: "x"})
	if err != nil {
		t.Fatalf("LowerDot: %v", err)
	}
	if !w.Result.Type.Equals(types.INT) {
		t.Errorf("got %+v", w.Result)
	}
}

func TestLowerDotUFCSWrapsUnresolvedWithReceiver(t *testing.T) {
	ctx := newTestContext()
	ctx.Scope.Define(&symbols.Binding{Name: "p", Kind: symbols.BindVar, Type: types.INT})
	fn := &types.FunctionType{
		ReturnType: types.BOOL,
		Parameters: []types.Parameter{{Name: "self", Type: types.INT}},
	}
	ctx.Scope.Define(&symbols.Binding{Name: "isPositive", Kind: symbols.BindFunction, Type: fn})

	w, err := LowerDot(ctx, &ast.DotExpr{Receiver: &ast.RefExpr{Name: "p"}, Name: "isPositive"})
	if err != nil {
		t.Fatalf("LowerDot: %v", err)
	}
	if w.IsResolved() || w.Unresolved.Receiver == nil {
		t.Fatalf("expected an Unresolved UFCS wrapper with a receiver, got %+v", w)
	}
}

func TestLowerDotUnknownNameIsError(t *testing.T) {
	ctx := newTestContext()
	ctx.Scope.Define(&symbols.Binding{Name: "p", Kind: symbols.BindVar, Type: types.INT})
	if _, err := LowerDot(ctx, &ast.DotExpr{Receiver: &ast.RefExpr{Name: "p"}, Name: "bogus"}); err == nil {
		t.Fatal("expected an unknown field/UFCS name to be an error")
	}
}
