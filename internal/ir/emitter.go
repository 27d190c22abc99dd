// Package ir wraps a backend.Builder into the handful of narrow Emitter
// interfaces the semantic layers (internal/scope, internal/convert,
// internal/expr, internal/abi) each declare for themselves. Emitter is a
// thin forwarder: nearly every method is a one-line delegation, with only
// the exit-chain/switch plumbing doing any real translation (scope.ExitCode
// keys don't belong in the backend-agnostic Builder contract, so Emitter
// converts them to the generic backend.SwitchCase form at the boundary).
package ir

import (
	"github.com/cwbudde/emberc/internal/backend"
	"github.com/cwbudde/emberc/internal/scope"
	"github.com/cwbudde/emberc/internal/types"
)

// Emitter adapts a backend.Builder to every Emitter/Destroyer/Initializer
// interface the semantic packages declare. A nil *Emitter is valid: every
// method checks before touching Builder, so callers can pass a nil Emitter
// through code written against scope.Emitter/convert.Emitter/etc. to run in
// analyze-only mode, same as a literal nil interface value would.
type Emitter struct {
	Builder backend.Builder
}

// New wraps a backend.Builder.
func New(b backend.Builder) *Emitter {
	return &Emitter{Builder: b}
}

func (e *Emitter) live() bool { return e != nil && e.Builder != nil }

// --- scope.Emitter ---

func (e *Emitter) NewBlock(name string) any {
	if !e.live() {
		return nil
	}
	return e.Builder.NewBlock(name)
}

func (e *Emitter) SetInsertPoint(block any) {
	if e.live() {
		e.Builder.SetInsertPoint(block)
	}
}

func (e *Emitter) Branch(to any) {
	if e.live() {
		e.Builder.Branch(to)
	}
}

func (e *Emitter) Alloca(name string) any {
	if !e.live() {
		return nil
	}
	return e.Builder.Alloca(name)
}

func (e *Emitter) StoreExitCode(slot any, code scope.ExitCode) {
	if e.live() {
		e.Builder.StoreByte(slot, byte(code))
	}
}

func (e *Emitter) LoadExitCode(slot any) any {
	if !e.live() {
		return nil
	}
	return e.Builder.LoadByte(slot)
}

func (e *Emitter) Switch(on any, cases map[scope.ExitCode]any, defaultCase any) {
	if !e.live() {
		return
	}
	generic := make([]backend.SwitchCase, 0, len(cases))
	for code, block := range cases {
		generic = append(generic, backend.SwitchCase{Value: code, Block: block})
	}
	e.Builder.Switch(on, generic, defaultCase)
}

// --- convert.Emitter / expr.Emitter / abi.Emitter shared ops ---

func (e *Emitter) Load(handle any, pointee types.Type) any {
	if !e.live() {
		return nil
	}
	return e.Builder.Load(handle, pointee)
}

func (e *Emitter) Store(handle any, value any) {
	if e.live() {
		e.Builder.Store(handle, value)
	}
}

func (e *Emitter) GEPFirstElement(handle any, arr *types.ArrayType) any {
	if !e.live() {
		return nil
	}
	return e.Builder.GEPFirstElement(handle, arr)
}

func (e *Emitter) BitCast(handle any, to types.Type) any {
	if !e.live() {
		return nil
	}
	return e.Builder.BitCast(handle, to)
}

func (e *Emitter) IntToPtr(handle any, to types.Type) any {
	if !e.live() {
		return nil
	}
	return e.Builder.IntToPtr(handle, to)
}

func (e *Emitter) PtrToInt(handle any, to types.Type) any {
	if !e.live() {
		return nil
	}
	return e.Builder.PtrToInt(handle, to)
}

func (e *Emitter) ConstNull(t types.Type) any {
	if !e.live() {
		return nil
	}
	return e.Builder.ConstNull(t)
}

func (e *Emitter) NonNull(handle any) any {
	if !e.live() {
		return nil
	}
	return e.Builder.NonNull(handle)
}

func (e *Emitter) Bool(b bool) any {
	if !e.live() {
		return nil
	}
	return e.Builder.ConstBool(b)
}

func (e *Emitter) IntExtendOrTruncate(handle any, from, to *types.PrimitiveType) any {
	if !e.live() {
		return nil
	}
	return e.Builder.IntExtendOrTruncate(handle, from, to)
}

func (e *Emitter) FloatExtendOrTruncate(handle any, from, to *types.PrimitiveType) any {
	if !e.live() {
		return nil
	}
	return e.Builder.FloatExtendOrTruncate(handle, from, to)
}

func (e *Emitter) IntToFloat(handle any, from, to *types.PrimitiveType) any {
	if !e.live() {
		return nil
	}
	return e.Builder.IntToFloat(handle, from, to)
}

func (e *Emitter) FloatToInt(handle any, from, to *types.PrimitiveType) any {
	if !e.live() {
		return nil
	}
	return e.Builder.FloatToInt(handle, from, to)
}

func (e *Emitter) MakeUniqueArrayToVariable(handle any, from, to *types.ArrayType) any {
	if !e.live() {
		return nil
	}
	return e.Builder.MakeUniqueArrayToVariable(handle, from, to)
}

func (e *Emitter) MakeOptionalSome(handle any, t types.Type) any {
	if !e.live() {
		return nil
	}
	return e.Builder.MakeOptionalSome(handle, t)
}

// --- expr.Emitter-only ops ---

func (e *Emitter) ConstBool(v bool) any {
	if !e.live() {
		return nil
	}
	return e.Builder.ConstBool(v)
}

func (e *Emitter) ConstInt(value uint64, t *types.PrimitiveType) any {
	if !e.live() {
		return nil
	}
	return e.Builder.ConstInt(value, t)
}

func (e *Emitter) ConstFloat(value float64, t *types.PrimitiveType) any {
	if !e.live() {
		return nil
	}
	return e.Builder.ConstFloat(value, t)
}

func (e *Emitter) ConstString(value string) any {
	if !e.live() {
		return nil
	}
	return e.Builder.ConstString(value)
}

func (e *Emitter) AllocFixedArray(t *types.ArrayType) any {
	if !e.live() {
		return nil
	}
	return e.Builder.AllocFixedArray(t)
}

func (e *Emitter) StoreElement(arrHandle any, index int, value any) {
	if e.live() {
		e.Builder.StoreElement(arrHandle, index, value)
	}
}

func (e *Emitter) AllocHeap(t types.Type) any {
	if !e.live() {
		return nil
	}
	return e.Builder.AllocHeap(t)
}

func (e *Emitter) CopyInitialize(handle any, t types.Type, args []any) {
	if e.live() {
		e.Builder.CopyInitialize(handle, t, args)
	}
}

func (e *Emitter) FieldGEP(handle any, named *types.NamedType, index int) any {
	if !e.live() {
		return nil
	}
	return e.Builder.FieldGEP(handle, named, index)
}

func (e *Emitter) GEPFixedIndex(handle any, arr *types.ArrayType, index any) any {
	if !e.live() {
		return nil
	}
	return e.Builder.GEPFixedIndex(handle, arr, index)
}

func (e *Emitter) GEPUnboundedIndex(handle any, elem types.Type, index any) any {
	if !e.live() {
		return nil
	}
	return e.Builder.GEPUnboundedIndex(handle, elem, index)
}

func (e *Emitter) LoadArrayDataPointer(handle any) any {
	if !e.live() {
		return nil
	}
	return e.Builder.LoadArrayDataPointer(handle)
}

func (e *Emitter) Call(target any, args []any) any {
	if !e.live() {
		return nil
	}
	return e.Builder.Call(target, args)
}

// --- abi.Emitter-only ops ---

func (e *Emitter) AllocaValue(t types.Type) any {
	if !e.live() {
		return nil
	}
	return e.Builder.AllocaValue(t)
}

func (e *Emitter) OffsetBytes(handle any, bytes int) any {
	if !e.live() {
		return nil
	}
	return e.Builder.OffsetBytes(handle, bytes)
}

func (e *Emitter) ReturnValues(values []any) {
	if e.live() {
		e.Builder.ReturnValues(values)
	}
}

// --- scope.Initializer ---

func (e *Emitter) ZeroPrimitive(t *types.PrimitiveType) any {
	if !e.live() {
		return nil
	}
	return e.Builder.ZeroPrimitive(t)
}

func (e *Emitter) NullReference(t *types.ReferenceType) any {
	if !e.live() {
		return nil
	}
	return e.Builder.NullReference(t)
}

func (e *Emitter) NullOptional(t *types.OptionalType) any {
	if !e.live() {
		return nil
	}
	return e.Builder.NullOptional(t)
}

func (e *Emitter) ZeroVariableArray(t *types.ArrayType) any {
	if !e.live() {
		return nil
	}
	return e.Builder.ZeroVariableArray(t)
}

func (e *Emitter) ZeroFixedArray(t *types.ArrayType, elems []any) any {
	if !e.live() {
		return nil
	}
	return e.Builder.ZeroFixedArray(t, elems)
}

func (e *Emitter) BuildAggregate(t *types.NamedType, fields []any) any {
	if !e.live() {
		return nil
	}
	return e.Builder.BuildAggregate(t, fields)
}

// --- scope.Destroyer ---

func (e *Emitter) FreeUnique(handle any, pointee types.Type) {
	if e.live() {
		e.Builder.FreeUnique(handle, pointee)
	}
}

func (e *Emitter) DecrefShared(handle any, pointee types.Type) {
	if e.live() {
		e.Builder.DecrefShared(handle, pointee)
	}
}

func (e *Emitter) FreeVariableArrayData(handle any, elem types.Type) {
	if e.live() {
		e.Builder.FreeVariableArrayData(handle, elem)
	}
}

func (e *Emitter) FieldHandle(aggregate any, named *types.NamedType, index int) any {
	if !e.live() {
		return nil
	}
	return e.Builder.FieldHandle(aggregate, named, index)
}
