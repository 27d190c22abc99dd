package expr

import (
	"fmt"

	"github.com/cwbudde/emberc/internal/ast"
	"github.com/cwbudde/emberc/internal/convert"
	"github.com/cwbudde/emberc/internal/types"
)

// LowerIndex lowers `receiver[index]` (§4.3 "Index operator"): the GEP
// shape depends on the array's representation kind.
func LowerIndex(ctx Context, n *ast.IndexExpr) (Wrapped, error) {
	rw, err := Lower(ctx, n.Receiver)
	if err != nil {
		return Wrapped{}, err
	}
	recv, err := InferTwice(rw)
	if err != nil {
		return Wrapped{}, err
	}

	iw, err := Lower(ctx, n.Index)
	if err != nil {
		return Wrapped{}, err
	}
	index, err := InferTwice(iw)
	if err != nil {
		return Wrapped{}, err
	}

	handle, flags := recv.Handle, recv.Flags
	t := recv.Type
	for {
		ref, ok := t.(*types.ReferenceType)
		if !ok {
			break
		}
		if ref.Mutable {
			flags |= convert.Mutable
		}
		t = ref.Inner
		if ctx.Emitter != nil && handle != nil {
			handle = ctx.Emitter.Load(handle, ref.Inner)
		}
	}

	arr, ok := t.(*types.ArrayType)
	if !ok {
		return Wrapped{}, fmt.Errorf("%s is not indexable", recv.Type)
	}

	var elemHandle any
	switch arr.Kind_ {
	case types.FixedSize:
		if ctx.Emitter != nil {
			elemHandle = ctx.Emitter.GEPFixedIndex(handle, arr, index.Handle)
		}
	case types.Unbounded, types.UnboundedSized:
		if ctx.Emitter != nil {
			elemHandle = ctx.Emitter.GEPUnboundedIndex(handle, arr.Inner, index.Handle)
		}
	case types.VariableSize:
		if ctx.Emitter != nil {
			dataPtr := ctx.Emitter.LoadArrayDataPointer(handle)
			elemHandle = ctx.Emitter.GEPUnboundedIndex(dataPtr, arr.Inner, index.Handle)
		}
	case types.Iterable:
		return Wrapped{}, fmt.Errorf("an iterable array is not directly indexable")
	default:
		return Wrapped{}, fmt.Errorf("unhandled array kind %v", arr.Kind_)
	}

	resultFlags := convert.Reference
	if flags.Is(convert.Mutable) {
		resultFlags |= convert.Mutable
	}
	return ResultOf(convert.Value{Handle: elemHandle, Type: arr.Inner, Flags: resultFlags}), nil
}
