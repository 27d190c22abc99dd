package expr

import (
	"testing"

	"github.com/cwbudde/emberc/internal/ast"
	"github.com/cwbudde/emberc/internal/convert"
	"github.com/cwbudde/emberc/internal/symbols"
	"github.com/cwbudde/emberc/internal/types"
)

func testArrayIndex(t *testing.T, kind types.ArrayKind) Wrapped {
	t.Helper()
	ctx := newTestContext()
	arr := &types.ArrayType{Inner: types.INT, Kind_: kind, Size: 4}
	ctx.Scope.Define(&symbols.Binding{Name: "a", Kind: symbols.BindVar, Type: arr, Mutable: true})

	w, err := LowerIndex(ctx, &ast.IndexExpr{
		Receiver: &ast.RefExpr{Name: "a"},
		Index:    &ast.IntLit{Value: 0},
	})
	if err != nil {
		t.Fatalf("LowerIndex (%v): %v", kind, err)
	}
	return w
}

func TestLowerIndexFixedSize(t *testing.T) {
	w := testArrayIndex(t, types.FixedSize)
	if !w.Result.Type.Equals(types.INT) || !w.Result.Is(convert.Reference) {
		t.Errorf("got %+v", w.Result)
	}
}

func TestLowerIndexUnbounded(t *testing.T) {
	w := testArrayIndex(t, types.Unbounded)
	if !w.Result.Type.Equals(types.INT) {
		t.Errorf("got %+v", w.Result)
	}
}

func TestLowerIndexVariableSize(t *testing.T) {
	w := testArrayIndex(t, types.VariableSize)
	if !w.Result.Type.Equals(types.INT) {
		t.Errorf("got %+v", w.Result)
	}
}

func TestLowerIndexIterableIsError(t *testing.T) {
	ctx := newTestContext()
	arr := &types.ArrayType{Inner: types.INT, Kind_: types.Iterable}
	ctx.Scope.Define(&symbols.Binding{Name: "a", Kind: symbols.BindVar, Type: arr})

	_, err := LowerIndex(ctx, &ast.IndexExpr{Receiver: &ast.RefExpr{Name: "a"}, Index: &ast.IntLit{Value: 0}})
	if err == nil {
		t.Fatal("expected indexing an Iterable array to be an error")
	}
}

func TestLowerIndexNonArrayIsError(t *testing.T) {
	ctx := newTestContext()
	ctx.Scope.Define(&symbols.Binding{Name: "a", Kind: symbols.BindVar, Type: types.INT})

	_, err := LowerIndex(ctx, &ast.IndexExpr{Receiver: &ast.RefExpr{Name: "a"}, Index: &ast.IntLit{Value: 0}})
	if err == nil {
		t.Fatal("expected indexing a non-array to be an error")
	}
}

func TestLowerIndexDereferencesThroughReference(t *testing.T) {
	ctx := newTestContext()
	arr := &types.ArrayType{Inner: types.INT, Kind_: types.Unbounded}
	ctx.Scope.Define(&symbols.Binding{
		Name: "a", Kind: symbols.BindVar,
		Type: &types.ReferenceType{Inner: arr, Kind_: types.Regular},
	})

	w, err := LowerIndex(ctx, &ast.IndexExpr{Receiver: &ast.RefExpr{Name: "a"}, Index: &ast.IntLit{Value: 0}})
	if err != nil {
		t.Fatalf("LowerIndex: %v", err)
	}
	if !w.Result.Type.Equals(types.INT) {
		t.Errorf("got %+v", w.Result)
	}
}
