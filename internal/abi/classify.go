package abi

import "github.com/cwbudde/emberc/internal/types"

// registerClass is the machine class a flattened leaf contributes:
// integer-class leaves combine in general-purpose registers, float-class
// leaves combine in SSE registers (§4.8's "all-float and all-double
// fast-paths").
type registerClass int

const (
	classInteger registerClass = iota
	classFloat
	classDouble
)

type leaf struct {
	class registerClass
	size  int
}

// maxAggregateSize is the System V in-register threshold: an aggregate
// larger than two eightbytes is always passed and returned indirectly.
const (
	eightbyte        = 8
	maxAggregateSize = 2 * eightbyte
)

// sizeOf returns the in-memory size of t. Iterable arrays have no fixed
// representation here and are always classified as oversized so they
// spill to the indirect convention.
func sizeOf(t types.Type) int {
	switch v := t.(type) {
	case *types.PrimitiveType:
		return v.Size()
	case *types.ReferenceType:
		return eightbyte
	case *types.FunctionType:
		return eightbyte
	case *types.OptionalType:
		return sizeOf(v.Inner) + 1
	case *types.ArrayType:
		switch v.Kind_ {
		case types.FixedSize:
			return sizeOf(v.Inner) * v.Size
		case types.Unbounded, types.UnboundedSized:
			return eightbyte
		case types.VariableSize:
			return 3 * eightbyte // size, capacity, data pointer
		default: // Iterable
			return maxAggregateSize + 1
		}
	case *types.NamedType:
		total := 0
		for _, f := range v.Fields {
			total += sizeOf(f.Type)
		}
		return total
	default:
		return maxAggregateSize + 1
	}
}

// flatten decomposes t into its primitive-leaf sequence, recursing through
// named fields and fixed-size array elements. It fails (ok=false) for any
// type System V cannot describe as a flat sequence of scalar leaves.
func flatten(t types.Type) (leaves []leaf, ok bool) {
	switch v := t.(type) {
	case *types.PrimitiveType:
		switch v.Kind_ {
		case types.Float:
			return []leaf{{classFloat, v.Size()}}, true
		case types.Double:
			return []leaf{{classDouble, v.Size()}}, true
		case types.Nothing:
			return nil, true
		default:
			return []leaf{{classInteger, v.Size()}}, true
		}
	case *types.ReferenceType:
		return []leaf{{classInteger, eightbyte}}, true
	case *types.FunctionType:
		return []leaf{{classInteger, eightbyte}}, true
	case *types.OptionalType:
		inner, ok := flatten(v.Inner)
		if !ok {
			return nil, false
		}
		return append(inner, leaf{classInteger, 1}), true
	case *types.ArrayType:
		switch v.Kind_ {
		case types.FixedSize:
			elem, ok := flatten(v.Inner)
			if !ok {
				return nil, false
			}
			result := make([]leaf, 0, len(elem)*v.Size)
			for i := 0; i < v.Size; i++ {
				result = append(result, elem...)
			}
			return result, true
		case types.Unbounded, types.UnboundedSized:
			return []leaf{{classInteger, eightbyte}}, true
		default: // VariableSize, Iterable
			return nil, false
		}
	case *types.NamedType:
		var result []leaf
		for _, f := range v.Fields {
			fl, ok := flatten(f.Type)
			if !ok {
				return nil, false
			}
			result = append(result, fl...)
		}
		return result, true
	default:
		return nil, false
	}
}

// combine packs a leaf sequence into at most two eightbyte registers,
// mirroring combineSysVLLVMTypes: consecutive leaves accumulate into the
// current eightbyte until it would overflow, at which point the eightbyte
// is pushed as float (all leaves seen were Float), double (all Double, and
// exactly 8 bytes), or integer (anything else, rounded up to the nearest
// of {1, 2, 4, 8} bytes).
func combine(leaves []leaf) ([]registerSlot, bool) {
	var result []registerSlot
	bytesSoFar := 0
	allFloats, allDoubles := true, true

	push := func() {
		switch {
		case allFloats:
			result = append(result, registerSlot{classFloat, bytesSoFar})
		case allDoubles:
			result = append(result, registerSlot{classDouble, eightbyte})
		default:
			result = append(result, registerSlot{classInteger, roundUpIntSize(bytesSoFar)})
		}
		bytesSoFar, allFloats, allDoubles = 0, true, true
	}

	for _, l := range leaves {
		if l.size > eightbyte {
			return nil, false
		}
		if bytesSoFar+l.size > eightbyte {
			push()
		}
		bytesSoFar += l.size
		if l.class != classFloat {
			allFloats = false
		}
		if l.class != classDouble {
			allDoubles = false
		}
	}
	if bytesSoFar > 0 {
		push()
	}

	if len(result) > 2 {
		return nil, false
	}
	return result, true
}

func roundUpIntSize(n int) int {
	for _, size := range []int{1, 2, 4, 8} {
		if n <= size {
			return size
		}
	}
	return eightbyte
}

type registerSlot struct {
	class registerClass
	size  int
}

// registerType maps a classified slot back to a concrete primitive type
// from the closed type algebra, since System V register classes don't
// warrant a new Type variant of their own.
func registerType(s registerSlot) *types.PrimitiveType {
	switch s.class {
	case classFloat:
		return types.FLOAT
	case classDouble:
		return types.DOUBLE
	default:
		switch {
		case s.size <= 1:
			return types.UBYTE
		case s.size <= 2:
			return types.USHORT
		case s.size <= 4:
			return types.UINT
		default:
			return types.ULONG
		}
	}
}

// classify is the full System V decision for one logical type: oversized
// or unclassifiable types report ok=false so the caller falls back to the
// indirect convention; otherwise it returns the (one or two) register
// types the value is packed into.
func classify(t types.Type) ([]types.Type, bool) {
	if sizeOf(t) > maxAggregateSize {
		return nil, false
	}
	leaves, ok := flatten(t)
	if !ok {
		return nil, false
	}
	if len(leaves) == 0 {
		return nil, true // Nothing: no registers at all
	}
	slots, ok := combine(leaves)
	if !ok {
		return nil, false
	}
	result := make([]types.Type, len(slots))
	for i, s := range slots {
		result[i] = registerType(s)
	}
	return result, true
}
