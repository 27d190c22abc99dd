// Package mock implements backend.Builder by recording every call instead
// of generating real machine code, so the semantic layers are unit
// testable without a real backend. Every call is appended to a flat
// record log exactly like bytecode.Chunk.WriteInstruction: the record's
// index in the log becomes its handle, so later calls can reference
// earlier ones (a block, an alloca, a loaded value, ...) just by the
// integer they were handed back.
package mock

import (
	"fmt"

	"github.com/cwbudde/emberc/internal/backend"
	"github.com/cwbudde/emberc/internal/types"
)

// Record is one logged call: Op names the Builder method, Args holds its
// arguments verbatim (handles included) for test assertions.
type Record struct {
	Op   string
	Args []any
}

// Handle is what every recording method hands back: the index of the
// Record it produced in Builder.Log (for NewBlock, the block's index among
// the blocks created so far), formatted the way a real backend's debug
// dump would reference an SSA value (`%3`) or block (`bb3`).
type Handle struct {
	Index int
	Label string
}

func (h Handle) String() string { return fmt.Sprintf("%s%d", h.Label, h.Index) }

// Builder records every backend.Builder call into Log and hands back a
// Handle referencing it. Inspect Log/Ops/Returns in tests to assert on
// what a statement/expression lowering actually emitted.
type Builder struct {
	Log      []Record
	blocks   []string
	insertAt string
	slots    map[string]any // name -> current stored value, for StoreByte/LoadByte and Store/Load
	returns  [][]any
}

// New returns an empty recording Builder.
func New() *Builder {
	return &Builder{slots: make(map[string]any)}
}

func (b *Builder) record(op string, args ...any) Handle {
	h := Handle{Index: len(b.Log), Label: "%"}
	b.Log = append(b.Log, Record{Op: op, Args: args})
	return h
}

// --- control flow ---

func (b *Builder) NewBlock(name string) any {
	h := Handle{Index: len(b.blocks), Label: "bb"}
	b.blocks = append(b.blocks, name)
	b.Log = append(b.Log, Record{Op: "NewBlock", Args: []any{name}})
	return h
}

func (b *Builder) SetInsertPoint(block any) {
	b.insertAt = fmt.Sprint(block)
	b.Log = append(b.Log, Record{Op: "SetInsertPoint", Args: []any{block}})
}

func (b *Builder) Branch(to any) {
	b.Log = append(b.Log, Record{Op: "Branch", Args: []any{to}})
}

func (b *Builder) Switch(on any, cases []backend.SwitchCase, defaultCase any) {
	b.Log = append(b.Log, Record{Op: "Switch", Args: []any{on, cases, defaultCase}})
}

// --- storage slots ---

func (b *Builder) Alloca(name string) any {
	h := b.record("Alloca", name)
	b.slots[h.String()] = nil
	return h
}

func (b *Builder) AllocaValue(t types.Type) any {
	return b.record("AllocaValue", t)
}

func (b *Builder) StoreByte(slot any, value byte) {
	b.slots[fmt.Sprint(slot)] = value
	b.Log = append(b.Log, Record{Op: "StoreByte", Args: []any{slot, value}})
}

func (b *Builder) LoadByte(slot any) any {
	return b.record("LoadByte", slot, b.slots[fmt.Sprint(slot)])
}

func (b *Builder) Store(handle any, value any) {
	b.slots[fmt.Sprint(handle)] = value
	b.Log = append(b.Log, Record{Op: "Store", Args: []any{handle, value}})
}

func (b *Builder) Load(handle any, pointee types.Type) any {
	return b.record("Load", handle, pointee)
}

// --- constants ---

func (b *Builder) ConstBool(v bool) any {
	return b.record("ConstBool", v)
}
func (b *Builder) ConstInt(value uint64, t *types.PrimitiveType) any {
	return b.record("ConstInt", value, t)
}
func (b *Builder) ConstFloat(value float64, t *types.PrimitiveType) any {
	return b.record("ConstFloat", value, t)
}
func (b *Builder) ConstString(value string) any {
	return b.record("ConstString", value)
}
func (b *Builder) ConstNull(t types.Type) any {
	return b.record("ConstNull", t)
}

// --- pointer arithmetic and casts ---

func (b *Builder) GEPFirstElement(handle any, arr *types.ArrayType) any {
	return b.record("GEPFirstElement", handle, arr)
}
func (b *Builder) FieldGEP(handle any, named *types.NamedType, index int) any {
	return b.record("FieldGEP", handle, named, index)
}
func (b *Builder) GEPFixedIndex(handle any, arr *types.ArrayType, index any) any {
	return b.record("GEPFixedIndex", handle, arr, index)
}
func (b *Builder) GEPUnboundedIndex(handle any, elem types.Type, index any) any {
	return b.record("GEPUnboundedIndex", handle, elem, index)
}
func (b *Builder) LoadArrayDataPointer(handle any) any {
	return b.record("LoadArrayDataPointer", handle)
}
func (b *Builder) OffsetBytes(handle any, bytes int) any {
	return b.record("OffsetBytes", handle, bytes)
}
func (b *Builder) BitCast(handle any, to types.Type) any {
	return b.record("BitCast", handle, to)
}
func (b *Builder) IntToPtr(handle any, to types.Type) any {
	return b.record("IntToPtr", handle, to)
}
func (b *Builder) PtrToInt(handle any, to types.Type) any {
	return b.record("PtrToInt", handle, to)
}
func (b *Builder) NonNull(handle any) any {
	return b.record("NonNull", handle)
}

// --- numeric and representation conversions ---

func (b *Builder) IntExtendOrTruncate(handle any, from, to *types.PrimitiveType) any {
	return b.record("IntExtendOrTruncate", handle, from, to)
}
func (b *Builder) FloatExtendOrTruncate(handle any, from, to *types.PrimitiveType) any {
	return b.record("FloatExtendOrTruncate", handle, from, to)
}
func (b *Builder) IntToFloat(handle any, from, to *types.PrimitiveType) any {
	return b.record("IntToFloat", handle, from, to)
}
func (b *Builder) FloatToInt(handle any, from, to *types.PrimitiveType) any {
	return b.record("FloatToInt", handle, from, to)
}
func (b *Builder) MakeUniqueArrayToVariable(handle any, from, to *types.ArrayType) any {
	return b.record("MakeUniqueArrayToVariable", handle, from, to)
}
func (b *Builder) MakeOptionalSome(handle any, t types.Type) any {
	return b.record("MakeOptionalSome", handle, t)
}

// --- aggregate and array construction ---

func (b *Builder) AllocFixedArray(t *types.ArrayType) any {
	return b.record("AllocFixedArray", t)
}
func (b *Builder) StoreElement(arrHandle any, index int, value any) {
	b.Log = append(b.Log, Record{Op: "StoreElement", Args: []any{arrHandle, index, value}})
}
func (b *Builder) AllocHeap(t types.Type) any {
	return b.record("AllocHeap", t)
}
func (b *Builder) CopyInitialize(handle any, t types.Type, args []any) {
	b.Log = append(b.Log, Record{Op: "CopyInitialize", Args: []any{handle, t, args}})
}
func (b *Builder) ZeroPrimitive(t *types.PrimitiveType) any {
	return b.record("ZeroPrimitive", t)
}
func (b *Builder) NullReference(t *types.ReferenceType) any {
	return b.record("NullReference", t)
}
func (b *Builder) NullOptional(t *types.OptionalType) any {
	return b.record("NullOptional", t)
}
func (b *Builder) ZeroVariableArray(t *types.ArrayType) any {
	return b.record("ZeroVariableArray", t)
}
func (b *Builder) ZeroFixedArray(t *types.ArrayType, elems []any) any {
	return b.record("ZeroFixedArray", t, elems)
}
func (b *Builder) BuildAggregate(t *types.NamedType, fields []any) any {
	return b.record("BuildAggregate", t, fields)
}

// --- destruction ---

func (b *Builder) FreeUnique(handle any, pointee types.Type) {
	b.Log = append(b.Log, Record{Op: "FreeUnique", Args: []any{handle, pointee}})
}
func (b *Builder) DecrefShared(handle any, pointee types.Type) {
	b.Log = append(b.Log, Record{Op: "DecrefShared", Args: []any{handle, pointee}})
}
func (b *Builder) FreeVariableArrayData(handle any, elem types.Type) {
	b.Log = append(b.Log, Record{Op: "FreeVariableArrayData", Args: []any{handle, elem}})
}
func (b *Builder) FieldHandle(aggregate any, named *types.NamedType, index int) any {
	return b.record("FieldHandle", aggregate, named, index)
}

// --- calls ---

func (b *Builder) Call(target any, args []any) any {
	return b.record("Call", target, args)
}
func (b *Builder) ReturnValues(values []any) {
	b.returns = append(b.returns, values)
	b.Log = append(b.Log, Record{Op: "ReturnValues", Args: []any{values}})
}

// Returns reports every value slice passed to ReturnValues, in call order.
func (b *Builder) Returns() [][]any { return b.returns }

// Ops returns the Op name of every recorded call, in order — the
// cheapest way for a test to assert on emission shape without matching
// exact handle values.
func (b *Builder) Ops() []string {
	ops := make([]string, len(b.Log))
	for i, r := range b.Log {
		ops[i] = r.Op
	}
	return ops
}
