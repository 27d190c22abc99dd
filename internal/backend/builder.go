// Package backend declares the contract a code-generation backend must
// satisfy: the full set of IR-building primitives the semantic layers
// (scope, convert, expr, abi) need, gathered behind one interface so a
// single concrete backend can drive all of them through internal/ir's
// thin wrapper.
//
// Builder mirrors original_source's `ops::Context.ir` (an
// `llvm::IRBuilder<>`) hidden behind the teacher's own habit of never
// calling a concrete backend directly from semantic code — every
// operation here is a logical step (branch, load, build-aggregate), not
// an LLVM API call, so a test backend can record calls instead of
// generating real machine code.
package backend

import "github.com/cwbudde/emberc/internal/types"

// SwitchCase is one arm of a Builder.Switch dispatch.
type SwitchCase struct {
	Value any
	Block any
}

// Builder is the full backend surface. Every method returns or consumes
// an opaque `any` handle; concrete backends decide what a handle actually
// is (an SSA value, an instruction index, ...).
type Builder interface {
	// Control flow
	NewBlock(name string) any
	SetInsertPoint(block any)
	Branch(to any)
	Switch(on any, cases []SwitchCase, defaultCase any)

	// Storage slots
	Alloca(name string) any
	AllocaValue(t types.Type) any
	StoreByte(slot any, value byte)
	LoadByte(slot any) any
	Store(handle any, value any)
	Load(handle any, pointee types.Type) any

	// Constants
	ConstBool(v bool) any
	ConstInt(value uint64, t *types.PrimitiveType) any
	ConstFloat(value float64, t *types.PrimitiveType) any
	ConstString(value string) any
	ConstNull(t types.Type) any

	// Pointer arithmetic and casts
	GEPFirstElement(handle any, arr *types.ArrayType) any
	FieldGEP(handle any, named *types.NamedType, index int) any
	GEPFixedIndex(handle any, arr *types.ArrayType, index any) any
	GEPUnboundedIndex(handle any, elem types.Type, index any) any
	LoadArrayDataPointer(handle any) any
	OffsetBytes(handle any, bytes int) any
	BitCast(handle any, to types.Type) any
	IntToPtr(handle any, to types.Type) any
	PtrToInt(handle any, to types.Type) any
	NonNull(handle any) any

	// Numeric and representation conversions
	IntExtendOrTruncate(handle any, from, to *types.PrimitiveType) any
	FloatExtendOrTruncate(handle any, from, to *types.PrimitiveType) any
	IntToFloat(handle any, from, to *types.PrimitiveType) any
	FloatToInt(handle any, from, to *types.PrimitiveType) any
	MakeUniqueArrayToVariable(handle any, from, to *types.ArrayType) any
	MakeOptionalSome(handle any, t types.Type) any

	// Aggregate and array construction
	AllocFixedArray(t *types.ArrayType) any
	StoreElement(arrHandle any, index int, value any)
	AllocHeap(t types.Type) any
	CopyInitialize(handle any, t types.Type, args []any)
	ZeroPrimitive(t *types.PrimitiveType) any
	NullReference(t *types.ReferenceType) any
	NullOptional(t *types.OptionalType) any
	ZeroVariableArray(t *types.ArrayType) any
	ZeroFixedArray(t *types.ArrayType, elems []any) any
	BuildAggregate(t *types.NamedType, fields []any) any

	// Destruction
	FreeUnique(handle any, pointee types.Type)
	DecrefShared(handle any, pointee types.Type)
	FreeVariableArrayData(handle any, elem types.Type)
	FieldHandle(aggregate any, named *types.NamedType, index int) any

	// Calls
	Call(target any, args []any) any
	ReturnValues(values []any)
}
