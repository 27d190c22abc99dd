package convert

import "github.com/cwbudde/emberc/internal/types"

// bridgeRule is one of the pre-pass handlers: auto-reference, auto-dereference,
// or the optional-wrap bridge. Unlike the main chain, bridge rules are
// re-applied until none of them applies before the main chain sees the
// value.
type bridgeRule func(e Emitter, v Value, target types.Type) (Value, bool)

var bridgeRules = []bridgeRule{
	bridgeImplicitReference,
	bridgeImplicitDereference,
	bridgeTypeToOptional,
}

// runBridge repeatedly applies the bridge rules until none apply, per §4.4
// rule 1 ("run before main rules as a pre-pass, repeatedly, idempotent").
func runBridge(e Emitter, v Value, target types.Type, force bool) Value {
	for {
		progressed := false
		for _, r := range bridgeRules {
			if out, ok := r(e, v, target); ok {
				v = out
				progressed = true
				break
			}
		}
		if !progressed {
			return v
		}
	}
}

// bridgeImplicitReference auto-references an addressable value when the
// target is a compatible Regular reference to its type. Mutability of the
// bridge-up requires the source not be mutability-downgraded: a non-mutable
// source cannot bridge to a `var &T`.
func bridgeImplicitReference(_ Emitter, v Value, target types.Type) (Value, bool) {
	ref, ok := target.(*types.ReferenceType)
	if !ok || ref.Kind_ != types.Regular {
		return Value{}, false
	}
	if _, isRef := v.Type.(*types.ReferenceType); isRef {
		return Value{}, false
	}
	if !v.Is(Reference) {
		return Value{}, false
	}
	if !v.Type.Equals(ref.Inner) {
		return Value{}, false
	}
	if ref.Mutable && !v.Is(Mutable) {
		return Value{}, false
	}
	return Value{Handle: v.Handle, Type: ref, Flags: v.Flags &^ Reference}, true
}

// bridgeImplicitDereference auto-dereferences a Reference-typed value when
// the target equals the pointee.
func bridgeImplicitDereference(e Emitter, v Value, target types.Type) (Value, bool) {
	ref, ok := v.Type.(*types.ReferenceType)
	if !ok {
		return Value{}, false
	}
	if !ref.Inner.Equals(target) {
		return Value{}, false
	}
	handle := v.Handle
	if e != nil && handle != nil {
		handle = e.Load(handle, ref.Inner)
	}
	flags := Reference
	if ref.Mutable {
		flags |= Mutable
	}
	return Value{Handle: handle, Type: ref.Inner, Flags: flags}, true
}

// bridgeTypeToOptional wraps a plain value into a "has value" Optional when
// the target is `?T` (or `!T`) and the source type equals T. This implements
// Open Question decision #2: treated as a pre-pass bridge so it composes
// with the Null->any-reference rule for the `null` literal case.
func bridgeTypeToOptional(e Emitter, v Value, target types.Type) (Value, bool) {
	opt, ok := target.(*types.OptionalType)
	if !ok {
		return Value{}, false
	}
	if _, isOpt := v.Type.(*types.OptionalType); isOpt {
		return Value{}, false
	}
	if !v.Type.Equals(opt.Inner) {
		return Value{}, false
	}
	handle := v.Handle
	if e != nil && handle != nil {
		handle = e.MakeOptionalSome(handle, opt)
	}
	return Value{Handle: handle, Type: opt, Flags: v.Flags &^ Reference}, true
}
