package scope

import (
	"testing"

	"github.com/cwbudde/emberc/internal/types"
)

type recordingInitializer struct {
	calls []string
}

func (i *recordingInitializer) ZeroPrimitive(t *types.PrimitiveType) any {
	i.calls = append(i.calls, "zero_primitive:"+t.String())
	return 0
}
func (i *recordingInitializer) NullReference(t *types.ReferenceType) any {
	i.calls = append(i.calls, "null_reference:"+t.String())
	return nil
}
func (i *recordingInitializer) NullOptional(t *types.OptionalType) any {
	i.calls = append(i.calls, "null_optional:"+t.String())
	return nil
}
func (i *recordingInitializer) ZeroVariableArray(t *types.ArrayType) any {
	i.calls = append(i.calls, "zero_variable_array:"+t.String())
	return nil
}
func (i *recordingInitializer) ZeroFixedArray(t *types.ArrayType, elems []any) any {
	i.calls = append(i.calls, "zero_fixed_array:"+t.String())
	return elems
}
func (i *recordingInitializer) BuildAggregate(t *types.NamedType, fields []any) any {
	i.calls = append(i.calls, "build_aggregate:"+t.String())
	return fields
}

func TestInitializePrimitiveZeroes(t *testing.T) {
	init := &recordingInitializer{}
	Initialize(init, types.INT)
	if len(init.calls) != 1 || init.calls[0] != "zero_primitive:int" {
		t.Errorf("got %v", init.calls)
	}
}

func TestInitializeReferenceIsNull(t *testing.T) {
	init := &recordingInitializer{}
	Initialize(init, &types.ReferenceType{Inner: types.INT, Kind_: types.Regular})
	if len(init.calls) != 1 || init.calls[0] != "null_reference:&int" {
		t.Errorf("got %v", init.calls)
	}
}

func TestInitializeOptionalIsNull(t *testing.T) {
	init := &recordingInitializer{}
	Initialize(init, &types.OptionalType{Inner: types.INT})
	if len(init.calls) != 1 {
		t.Errorf("got %v", init.calls)
	}
}

func TestInitializeVariableArrayIsZeroTriple(t *testing.T) {
	init := &recordingInitializer{}
	Initialize(init, &types.ArrayType{Inner: types.INT, Kind_: types.VariableSize})
	if len(init.calls) != 1 || init.calls[0] != "zero_variable_array:[int]" {
		t.Errorf("got %v", init.calls)
	}
}

func TestInitializeFixedArrayInitializesEachElement(t *testing.T) {
	init := &recordingInitializer{}
	Initialize(init, &types.ArrayType{Inner: types.INT, Kind_: types.FixedSize, Size: 3})

	// 3 element initializations plus the final ZeroFixedArray call.
	if len(init.calls) != 4 {
		t.Fatalf("got %v", init.calls)
	}
	for _, c := range init.calls[:3] {
		if c != "zero_primitive:int" {
			t.Errorf("expected each element to be zeroed, got %q", c)
		}
	}
	if init.calls[3] != "zero_fixed_array:[int:3]" {
		t.Errorf("got %q", init.calls[3])
	}
}

func TestInitializeNamedWalksFieldsInDeclarationOrder(t *testing.T) {
	init := &recordingInitializer{}
	named := &types.NamedType{
		Name: "Point",
		Fields: []types.Field{
			{Name: "x", Type: types.INT},
			{Name: "y", Type: types.INT},
		},
	}
	Initialize(init, named)

	want := []string{"zero_primitive:int", "zero_primitive:int", "build_aggregate:Point"}
	if len(init.calls) != len(want) {
		t.Fatalf("got %v, want %v", init.calls, want)
	}
	for i := range want {
		if init.calls[i] != want[i] {
			t.Errorf("call[%d] = %q, want %q", i, init.calls[i], want[i])
		}
	}
}

func TestInitializeNilInitializerWalksWithoutPanicking(t *testing.T) {
	named := &types.NamedType{
		Name:   "Point",
		Fields: []types.Field{{Name: "x", Type: types.INT}},
	}
	if got := Initialize(nil, named); got != nil {
		t.Errorf("expected a nil Initializer to yield nil, got %v", got)
	}
}
