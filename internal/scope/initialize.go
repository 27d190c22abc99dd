package scope

import "github.com/cwbudde/emberc/internal/types"

// Initializer is the backend hook makeInitialize (§4.7) lowers to: zeroing
// a primitive, nulling a reference, and building the (size=0, capacity=0,
// data=null) triple a VariableSize array starts life as.
type Initializer interface {
	ZeroPrimitive(t *types.PrimitiveType) any
	NullReference(t *types.ReferenceType) any
	NullOptional(t *types.OptionalType) any
	ZeroVariableArray(t *types.ArrayType) any
	ZeroFixedArray(t *types.ArrayType, elems []any) any
	BuildAggregate(t *types.NamedType, fields []any) any
}

// Initialize implements makeInitialize: build the default value for t.
//
//   - Primitive: zero value of its width.
//   - Reference, Optional: null.
//   - VariableSize array: the (0, 0, null) triple.
//   - FixedSize array: Size copies of the element's default value.
//   - Unbounded, UnboundedSized, Iterable array: not default-constructible;
//     the caller must supply an initializer (enforced earlier, by the
//     analysis pass that rejects a bare declaration of these kinds).
//   - Named: each field initialized in declaration order.
//
// init may be nil, in which case Initialize only walks the type structure
// (for pure dispatch-shape tests) and returns nil at every leaf.
func Initialize(init Initializer, t types.Type) any {
	switch v := t.(type) {
	case *types.PrimitiveType:
		if init == nil {
			return nil
		}
		return init.ZeroPrimitive(v)
	case *types.ReferenceType:
		if init == nil {
			return nil
		}
		return init.NullReference(v)
	case *types.OptionalType:
		if init == nil {
			return nil
		}
		return init.NullOptional(v)
	case *types.ArrayType:
		switch v.Kind_ {
		case types.VariableSize:
			if init == nil {
				return nil
			}
			return init.ZeroVariableArray(v)
		case types.FixedSize:
			elems := make([]any, v.Size)
			for i := range elems {
				elems[i] = Initialize(init, v.Inner)
			}
			if init == nil {
				return nil
			}
			return init.ZeroFixedArray(v, elems)
		default:
			return nil
		}
	case *types.NamedType:
		fields := make([]any, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = Initialize(init, f.Type)
		}
		if init == nil {
			return nil
		}
		return init.BuildAggregate(v, fields)
	default:
		return nil
	}
}
