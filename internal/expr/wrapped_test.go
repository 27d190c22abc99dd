package expr

import (
	"testing"

	"github.com/cwbudde/emberc/internal/convert"
	"github.com/cwbudde/emberc/internal/symbols"
	"github.com/cwbudde/emberc/internal/types"
)

func TestInferResolvedPassesThrough(t *testing.T) {
	w := ResultOf(convert.Value{Type: types.INT})
	v, err := Infer(w)
	if err != nil {
		t.Fatalf("Infer: %v", err)
	}
	if !v.Type.Equals(types.INT) {
		t.Errorf("got %s, want Int", v.Type)
	}
}

func TestInferPrefersVariableOverFunction(t *testing.T) {
	w := UnresolvedOf(Unresolved{Name: "x", Candidates: []*symbols.Binding{
		{Name: "x", Kind: symbols.BindFunction, Type: &types.FunctionType{}},
		{Name: "x", Kind: symbols.BindVar, Type: types.BOOL, Mutable: true},
	}})
	v, err := Infer(w)
	if err != nil {
		t.Fatalf("Infer: %v", err)
	}
	if !v.Type.Equals(types.BOOL) || !v.Is(convert.Mutable) {
		t.Errorf("expected the mutable bool variable to win, got %+v", v)
	}
}

func TestInferResolvesSingleZeroArgOverload(t *testing.T) {
	fn := &types.FunctionType{ReturnType: types.INT}
	w := UnresolvedOf(Unresolved{Name: "f", Candidates: []*symbols.Binding{
		{Name: "f", Kind: symbols.BindFunction, Type: fn},
	}})
	v, err := Infer(w)
	if err != nil {
		t.Fatalf("Infer: %v", err)
	}
	if fnType, ok := v.Type.(*types.FunctionType); !ok || fnType != fn {
		t.Errorf("expected Infer to yield the function value itself (not yet invoked), got %+v", v)
	}
}

func TestInferTwiceAutoInvokesZeroArgFunction(t *testing.T) {
	fn := &types.FunctionType{ReturnType: types.INT}
	w := UnresolvedOf(Unresolved{Name: "f", Candidates: []*symbols.Binding{
		{Name: "f", Kind: symbols.BindFunction, Type: fn},
	}})
	v, err := InferTwice(w)
	if err != nil {
		t.Fatalf("InferTwice: %v", err)
	}
	if !v.Type.Equals(types.INT) {
		t.Errorf("expected the second Infer pass to reduce to the return type, got %s", v.Type)
	}
}

func TestInferAmbiguousZeroArgOverloadsIsError(t *testing.T) {
	w := UnresolvedOf(Unresolved{Name: "f", Candidates: []*symbols.Binding{
		{Name: "f", Kind: symbols.BindFunction, Type: &types.FunctionType{ReturnType: types.INT}},
		{Name: "f", Kind: symbols.BindFunction, Type: &types.FunctionType{ReturnType: types.BOOL}},
	}})
	if _, err := Infer(w); err == nil {
		t.Fatal("expected ambiguity between two zero-arg overloads to be an error")
	}
}

func TestInferNoUsableCandidateIsError(t *testing.T) {
	w := UnresolvedOf(Unresolved{Name: "f", Candidates: []*symbols.Binding{
		{Name: "f", Kind: symbols.BindFunction, Type: &types.FunctionType{
			Parameters: []types.Parameter{{Name: "a", Type: types.INT}},
		}},
	}})
	if _, err := Infer(w); err == nil {
		t.Fatal("expected a name with only non-zero-arg overloads to fail Infer")
	}
}
