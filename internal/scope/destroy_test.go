package scope

import (
	"testing"

	"github.com/cwbudde/emberc/internal/types"
)

type recordingDestroyer struct {
	calls []string
}

func (d *recordingDestroyer) FreeUnique(handle any, pointee types.Type) {
	d.calls = append(d.calls, "free_unique:"+pointee.String())
}
func (d *recordingDestroyer) DecrefShared(handle any, pointee types.Type) {
	d.calls = append(d.calls, "decref_shared:"+pointee.String())
}
func (d *recordingDestroyer) FreeVariableArrayData(handle any, elem types.Type) {
	d.calls = append(d.calls, "free_array:"+elem.String())
}
func (d *recordingDestroyer) FieldHandle(aggregate any, named *types.NamedType, index int) any {
	return named.Fields[index].Name
}

func TestDestroyPrimitiveIsNoOp(t *testing.T) {
	d := &recordingDestroyer{}
	Destroy(d, nil, types.INT)
	if len(d.calls) != 0 {
		t.Errorf("expected no destructor calls for a primitive, got %v", d.calls)
	}
}

func TestDestroyRegularReferenceIsNoOp(t *testing.T) {
	d := &recordingDestroyer{}
	Destroy(d, nil, &types.ReferenceType{Inner: types.INT, Kind_: types.Regular})
	if len(d.calls) != 0 {
		t.Errorf("a borrow should never be destroyed, got %v", d.calls)
	}
}

func TestDestroyUniqueReferenceFreesHeapBlock(t *testing.T) {
	d := &recordingDestroyer{}
	Destroy(d, nil, &types.ReferenceType{Inner: types.INT, Kind_: types.Unique})
	if len(d.calls) != 1 || d.calls[0] != "free_unique:int" {
		t.Errorf("got %v", d.calls)
	}
}

func TestDestroySharedReferenceDecrefs(t *testing.T) {
	d := &recordingDestroyer{}
	Destroy(d, nil, &types.ReferenceType{Inner: types.INT, Kind_: types.Shared})
	if len(d.calls) != 1 || d.calls[0] != "decref_shared:int" {
		t.Errorf("got %v", d.calls)
	}
}

func TestDestroyVariableArrayFreesData(t *testing.T) {
	d := &recordingDestroyer{}
	Destroy(d, nil, &types.ArrayType{Inner: types.INT, Kind_: types.VariableSize})
	if len(d.calls) != 1 || d.calls[0] != "free_array:int" {
		t.Errorf("got %v", d.calls)
	}
}

func TestDestroyFixedArrayIsNoOp(t *testing.T) {
	d := &recordingDestroyer{}
	Destroy(d, nil, &types.ArrayType{Inner: types.INT, Kind_: types.FixedSize, Size: 4})
	if len(d.calls) != 0 {
		t.Errorf("a fixed-size array has no separate heap block, got %v", d.calls)
	}
}

func TestDestroyNamedWalksFieldsInReverseOrder(t *testing.T) {
	d := &recordingDestroyer{}
	named := &types.NamedType{
		Name: "Pair",
		Fields: []types.Field{
			{Name: "first", Type: &types.ReferenceType{Inner: types.INT, Kind_: types.Unique}},
			{Name: "second", Type: &types.ReferenceType{Inner: types.INT, Kind_: types.Shared}},
		},
	}
	Destroy(d, "handle", named)

	want := []string{"decref_shared:int", "free_unique:int"}
	if len(d.calls) != len(want) {
		t.Fatalf("got %v, want %v", d.calls, want)
	}
	for i := range want {
		if d.calls[i] != want[i] {
			t.Errorf("call[%d] = %q, want %q", i, d.calls[i], want[i])
		}
	}
}
