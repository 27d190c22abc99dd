package types

import "testing"

func TestPrimitiveStringAndKind(t *testing.T) {
	tests := []struct {
		typ      Type
		expected string
	}{
		{INT, "int"},
		{LONG, "long"},
		{DOUBLE, "double"},
		{BOOL, "bool"},
		{ANY, "any"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
			if tt.typ.Kind() != KindPrimitive {
				t.Errorf("Kind() = %v, want KindPrimitive", tt.typ.Kind())
			}
		})
	}
}

func TestPrimitiveEquality(t *testing.T) {
	if !INT.Equals(NewPrimitive(Int)) {
		t.Error("two Int primitives should be equal")
	}
	if INT.Equals(LONG) {
		t.Error("Int and Long should not be equal")
	}
}

func TestPriorityOrder(t *testing.T) {
	if DOUBLE.Priority() <= ULONG.Priority() {
		t.Error("Double must outrank ULong")
	}
	if ULONG.Priority() <= LONG.Priority() {
		t.Error("ULong must outrank Long")
	}
	if BYTE.Priority() != 1 {
		t.Errorf("Byte should have the lowest priority, got %d", BYTE.Priority())
	}
}

func TestNamedTypeIdentityEquality(t *testing.T) {
	declA := &struct{ id int }{1}
	declB := &struct{ id int }{2}

	a := &NamedType{Decl: declA, Name: "Point", Fields: []Field{{Name: "x", Type: INT}}}
	aAgain := &NamedType{Decl: declA, Name: "Point", Fields: []Field{{Name: "x", Type: INT}}}
	b := &NamedType{Decl: declB, Name: "Point", Fields: []Field{{Name: "x", Type: INT}}}

	if !a.Equals(aAgain) {
		t.Error("same declaring node should be equal even as distinct Go values")
	}
	if a.Equals(b) {
		t.Error("structurally identical but distinct declarations must not be equal")
	}
}

func TestReferenceEquality(t *testing.T) {
	a := &ReferenceType{Inner: INT, Mutable: false, Kind_: Regular}
	b := &ReferenceType{Inner: INT, Mutable: true, Kind_: Regular}
	c := &ReferenceType{Inner: INT, Mutable: false, Kind_: Unique}

	if a.Equals(b) {
		t.Error("mutability must affect reference equality")
	}
	if a.Equals(c) {
		t.Error("ownership kind must affect reference equality")
	}
	if !a.Equals(&ReferenceType{Inner: INT, Mutable: false, Kind_: Regular}) {
		t.Error("identical references should be equal")
	}
}

func TestFunctionEqualityIgnoresParameterNames(t *testing.T) {
	f1 := &FunctionType{ReturnType: INT, Parameters: []Parameter{{Name: "a", Type: INT}}}
	f2 := &FunctionType{ReturnType: INT, Parameters: []Parameter{{Name: "b", Type: INT}}}
	f3 := &FunctionType{ReturnType: INT, Parameters: []Parameter{{Name: "b", Type: LONG}}}

	if !f1.Equals(f2) {
		t.Error("function equality must ignore parameter names")
	}
	if f1.Equals(f3) {
		t.Error("function equality must still compare parameter types")
	}
}

func TestArrayUnboundedSizedComparesExpressionIdentity(t *testing.T) {
	exprA := &struct{ id int }{1}
	exprB := &struct{ id int }{2}

	a := &ArrayType{Inner: INT, Kind_: UnboundedSized, SizeExpr: exprA}
	aSame := &ArrayType{Inner: INT, Kind_: UnboundedSized, SizeExpr: exprA}
	b := &ArrayType{Inner: INT, Kind_: UnboundedSized, SizeExpr: exprB}

	if !a.Equals(aSame) {
		t.Error("same size-expression node identity should be equal")
	}
	if a.Equals(b) {
		t.Error("different size-expression node identity must not be equal, regardless of value")
	}
}

func TestArrayFixedSizeComparesSize(t *testing.T) {
	a := &ArrayType{Inner: INT, Kind_: FixedSize, Size: 4}
	b := &ArrayType{Inner: INT, Kind_: FixedSize, Size: 8}
	if a.Equals(b) {
		t.Error("different fixed sizes must not be equal")
	}
}

func TestOptionalEquality(t *testing.T) {
	a := &OptionalType{Inner: INT, Bubbles: false}
	b := &OptionalType{Inner: INT, Bubbles: true}
	if a.Equals(b) {
		t.Error("bubbles flag must affect optional equality")
	}
}

func TestDereferenceAll(t *testing.T) {
	ref := &ReferenceType{Inner: &ReferenceType{Inner: INT, Kind_: Regular}, Kind_: Unique}
	got := DereferenceAll(ref)
	if !got.Equals(INT) {
		t.Errorf("DereferenceAll should strip every layer, got %v", got)
	}
}
