package scope

import "github.com/cwbudde/emberc/internal/types"

// Destroyer is the backend hook makeDestroy (§4.7) lowers to: freeing a
// unique reference's heap block, decrementing a shared reference's
// refcount (freeing on zero), and freeing a variable-size array's backing
// data pointer.
type Destroyer interface {
	FreeUnique(handle any, pointee types.Type)
	DecrefShared(handle any, pointee types.Type)
	FreeVariableArrayData(handle any, elem types.Type)
	FieldHandle(aggregate any, named *types.NamedType, index int) any
}

// Destroy implements makeDestroy: dispatch on t's kind, tearing down
// exactly the parts of a value that own a resource.
//
//   - Primitive, Regular reference, Optional, Unbounded/UnboundedSized/
//     Iterable/FixedSize array, Function: no-op. A Regular reference never
//     owns its referent; a FixedSize array has no separate heap block to
//     free, and its elements are not walked.
//   - Unique reference: free the heap block.
//   - Shared reference: decrement the refcount, freeing on zero.
//   - VariableSize array: free the backing data pointer.
//   - Named: destroy each field in reverse declaration order.
//
// d may be nil, in which case Destroy only walks the type structure (for
// pure dispatch-shape tests) and performs no backend calls.
func Destroy(d Destroyer, handle any, t types.Type) {
	switch v := t.(type) {
	case *types.ReferenceType:
		switch v.Kind_ {
		case types.Unique:
			if d != nil {
				d.FreeUnique(handle, v.Inner)
			}
		case types.Shared:
			if d != nil {
				d.DecrefShared(handle, v.Inner)
			}
		}
	case *types.ArrayType:
		if v.Kind_ == types.VariableSize {
			if d != nil {
				d.FreeVariableArrayData(handle, v.Inner)
			}
		}
	case *types.NamedType:
		for i := len(v.Fields) - 1; i >= 0; i-- {
			var fieldHandle any
			if d != nil {
				fieldHandle = d.FieldHandle(handle, v, i)
			}
			Destroy(d, fieldHandle, v.Fields[i].Type)
		}
	}
}
