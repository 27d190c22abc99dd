// Package convert implements the conversion lattice (§4.4): an ordered
// handler chain that turns a Value of one type into a Value of a requested
// target type, plus the two-operand negotiation used by binary operators.
package convert

import "github.com/cwbudde/emberc/internal/types"

// Flag is one bit of the Expression Engine's result flag set (§3).
type Flag uint8

const (
	// Reference means Handle points at storage holding the value.
	Reference Flag = 1 << iota
	// Mutable authorizes writes through a Reference-flagged Handle.
	Mutable
	// Temporary marks an unnamed value the surrounding statement may need
	// to destroy.
	Temporary
	// Explicit suppresses the implicit auto-call of a zero-parameter
	// function value.
	Explicit
)

// Value is a value flowing through conversion: a backend handle (nil in
// analyze-only mode), its type, and its flag set.
type Value struct {
	Handle any
	Type   types.Type
	Flags  Flag
}

// Is reports whether every bit of f is set.
func (v Value) Is(f Flag) bool { return v.Flags&f == f }

// Is reports whether every bit of o is set in f.
func (f Flag) Is(o Flag) bool { return f&o == o }

// With returns a copy of v with f set.
func (v Value) With(f Flag) Value { v.Flags |= f; return v }

// Without returns a copy of v with f cleared.
func (v Value) Without(f Flag) Value { v.Flags &^= f; return v }

// Emitter is the narrow slice of backend operations the conversion lattice
// needs. A nil Emitter keeps Convert usable in analyze-only mode: every rule
// checks for it before touching Handle, so type-only checking never needs a
// live backend.
type Emitter interface {
	Load(handle any, pointee types.Type) any
	GEPFirstElement(handle any, arr *types.ArrayType) any
	BitCast(handle any, to types.Type) any
	IntToPtr(handle any, to types.Type) any
	PtrToInt(handle any, to types.Type) any
	ConstNull(t types.Type) any
	NonNull(handle any) any
	Bool(b bool) any
	IntExtendOrTruncate(handle any, from, to *types.PrimitiveType) any
	FloatExtendOrTruncate(handle any, from, to *types.PrimitiveType) any
	IntToFloat(handle any, from, to *types.PrimitiveType) any
	FloatToInt(handle any, from, to *types.PrimitiveType) any
	MakeUniqueArrayToVariable(handle any, from, to *types.ArrayType) any
	MakeOptionalSome(handle any, t types.Type) any
}

// rule is one handler in the chain: given a value and a target type, either
// it applies (ok=true, converted result) or it doesn't (ok=false).
type rule func(e Emitter, v Value, target types.Type, force bool) (Value, bool)

// chain is the ordered list of main conversion rules, tried first-match-wins
// after the bridge pre-pass has run to a fixpoint. Numbered per §4.4.
var chain = []rule{
	ruleEqual,                 // 2
	ruleForcedRefToRef,        // 3a
	ruleForcedRefToULong,      // 3b
	ruleForcedULongToRef,      // 3c
	ruleForcedIntToBool,       // 3d
	ruleForcedFuncPtrToFuncPtr, // 3e
	ruleOwningToRegularRef,    // 4
	ruleUniqueArrayToVariable, // 5
	ruleAnyRefErasure,         // 6
	ruleRefArrayToUnboundedRef, // 7
	ruleFixedRefToUnboundedRef, // 8
	ruleNullToAnyRef,          // 9
	ruleValueToOptional,       // Open Question: makeConvertTypeToOptional
	ruleRefToBool,             // 10
	ruleOptionalToBool,        // open question #1, between 10 and 11
	ruleIntFloat,              // 11
	rulePrimitiveExtendTruncate, // 12
}

// Convert applies the bridge pre-pass then the main chain, returning the
// converted value and true on success. force unlocks the Forced rules
// (reference bitcasts, pointer-integer casts, int-bool casts).
func Convert(e Emitter, v Value, target types.Type, force bool) (Value, bool) {
	v = runBridge(e, v, target, force)

	for _, r := range chain {
		if out, ok := r(e, v, target, force); ok {
			return out, true
		}
	}
	return Value{}, false
}

// ConvertDouble converts a and b to their negotiated common type, run
// through independent emitters (so two different statement contexts can be
// threaded through, mirroring the teacher's makeConvertDouble/Explicit).
func ConvertDouble(eA Emitter, a Value, eB Emitter, b Value) (Value, Value, bool) {
	mediator, ok := Negotiate(a.Type, b.Type)
	if !ok {
		return Value{}, Value{}, false
	}
	left, ok := Convert(eA, a, mediator, false)
	if !ok {
		return Value{}, Value{}, false
	}
	right, ok := Convert(eB, b, mediator, false)
	if !ok {
		return Value{}, Value{}, false
	}
	return left, right, true
}
