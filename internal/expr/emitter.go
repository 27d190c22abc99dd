package expr

import (
	"github.com/cwbudde/emberc/internal/convert"
	"github.com/cwbudde/emberc/internal/types"
)

// Emitter is the backend hook noun/modifier lowering calls into. It embeds
// convert.Emitter so every Wrapped value this package produces can be fed
// straight into convert.Convert/match.Call without a second backend
// handle. Every Lower* function in this package is nil-Emitter-safe: with
// e == nil only the type-level shape of the computation runs, so the
// handler chains are unit-testable without a real backend.
type Emitter interface {
	convert.Emitter

	ConstBool(v bool) any
	ConstInt(value uint64, t *types.PrimitiveType) any
	ConstFloat(value float64, t *types.PrimitiveType) any
	ConstString(value string) any

	AllocFixedArray(t *types.ArrayType) any
	StoreElement(arrHandle any, index int, value any)

	AllocHeap(t types.Type) any
	CopyInitialize(handle any, t types.Type, args []any)

	FieldGEP(handle any, named *types.NamedType, index int) any
	GEPFixedIndex(handle any, arr *types.ArrayType, index any) any
	GEPUnboundedIndex(handle any, elem types.Type, index any) any
	LoadArrayDataPointer(handle any) any

	Call(target any, args []any) any
}
