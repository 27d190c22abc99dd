package convert

import "github.com/cwbudde/emberc/internal/types"

func isReference(t types.Type) bool {
	_, ok := t.(*types.ReferenceType)
	return ok
}

// ruleEqual is rule 2: identical types convert with no work at all.
func ruleEqual(_ Emitter, v Value, target types.Type, _ bool) (Value, bool) {
	if !v.Type.Equals(target) {
		return Value{}, false
	}
	return v, true
}

// ruleForcedRefToRef is rule 3a: reference<->reference bitcast, only with
// force=true (e.g. an explicit `as` cast between unrelated pointer types).
func ruleForcedRefToRef(e Emitter, v Value, target types.Type, force bool) (Value, bool) {
	if !force {
		return Value{}, false
	}
	if !isReference(v.Type) || !isReference(target) {
		return Value{}, false
	}
	handle := v.Handle
	if e != nil && handle != nil {
		handle = e.BitCast(handle, target)
	}
	return Value{Handle: handle, Type: target, Flags: v.Flags}, true
}

// ruleForcedRefToULong is rule 3b: reference -> ULong (pointer-to-integer).
func ruleForcedRefToULong(e Emitter, v Value, target types.Type, force bool) (Value, bool) {
	if !force || !isReference(v.Type) {
		return Value{}, false
	}
	p, ok := target.(*types.PrimitiveType)
	if !ok || p.Kind_ != types.ULONG.Kind_ {
		return Value{}, false
	}
	handle := v.Handle
	if e != nil && handle != nil {
		handle = e.PtrToInt(handle, target)
	}
	return Value{Handle: handle, Type: target, Flags: v.Flags &^ Reference}, true
}

// ruleForcedULongToRef is rule 3c: ULong -> reference (integer-to-pointer).
func ruleForcedULongToRef(e Emitter, v Value, target types.Type, force bool) (Value, bool) {
	if !force || !isReference(target) {
		return Value{}, false
	}
	p, ok := v.Type.(*types.PrimitiveType)
	if !ok || p.Kind_ != types.ULONG.Kind_ {
		return Value{}, false
	}
	handle := v.Handle
	if e != nil && handle != nil {
		handle = e.IntToPtr(handle, target)
	}
	return Value{Handle: handle, Type: target, Flags: v.Flags &^ Reference}, true
}

// ruleForcedIntToBool is rule 3d: any integer primitive forced to Bool
// (nonzero test), distinct from the implicit Reference->Bool rule.
func ruleForcedIntToBool(e Emitter, v Value, target types.Type, force bool) (Value, bool) {
	if !force {
		return Value{}, false
	}
	src, ok := v.Type.(*types.PrimitiveType)
	if !ok || !src.IsInteger() {
		return Value{}, false
	}
	dst, ok := target.(*types.PrimitiveType)
	if !ok || dst.Kind_ != types.BOOL.Kind_ {
		return Value{}, false
	}
	handle := v.Handle
	if e != nil && handle != nil {
		handle = e.NonNull(handle)
	}
	return Value{Handle: handle, Type: target, Flags: v.Flags &^ Reference}, true
}

// ruleForcedFuncPtrToFuncPtr is rule 3e: function-pointer -> function-pointer
// bitcast, ignoring parameter names as Function equality already does.
func ruleForcedFuncPtrToFuncPtr(e Emitter, v Value, target types.Type, force bool) (Value, bool) {
	if !force {
		return Value{}, false
	}
	if v.Type.Kind() != types.KindFunction || target.Kind() != types.KindFunction {
		return Value{}, false
	}
	handle := v.Handle
	if e != nil && handle != nil {
		handle = e.BitCast(handle, target)
	}
	return Value{Handle: handle, Type: target, Flags: v.Flags}, true
}

// ruleOwningToRegularRef is rule 4: Unique/Shared -> Regular reference, if
// the pointee matches and mutability is not upgraded.
func ruleOwningToRegularRef(_ Emitter, v Value, target types.Type, _ bool) (Value, bool) {
	src, ok := v.Type.(*types.ReferenceType)
	if !ok || !src.IsOwning() {
		return Value{}, false
	}
	dst, ok := target.(*types.ReferenceType)
	if !ok || dst.Kind_ != types.Regular {
		return Value{}, false
	}
	if !src.Inner.Equals(dst.Inner) {
		return Value{}, false
	}
	if dst.Mutable && !src.Mutable {
		return Value{}, false
	}
	return Value{Handle: v.Handle, Type: target, Flags: v.Flags}, true
}

// ruleUniqueArrayToVariable is rule 5: a Unique-owned array converts to a
// VariableSize array by constructing the (size, capacity, data*) triple.
func ruleUniqueArrayToVariable(e Emitter, v Value, target types.Type, _ bool) (Value, bool) {
	src, ok := v.Type.(*types.ReferenceType)
	if !ok || src.Kind_ != types.Unique {
		return Value{}, false
	}
	srcArr, ok := src.Inner.(*types.ArrayType)
	if !ok || srcArr.Kind_ != types.FixedSize {
		return Value{}, false
	}
	dstArr, ok := target.(*types.ArrayType)
	if !ok || dstArr.Kind_ != types.VariableSize {
		return Value{}, false
	}
	if !srcArr.Inner.Equals(dstArr.Inner) {
		return Value{}, false
	}
	handle := v.Handle
	if e != nil && handle != nil {
		handle = e.MakeUniqueArrayToVariable(handle, srcArr, dstArr)
	}
	return Value{Handle: handle, Type: target, Flags: v.Flags &^ Reference}, true
}

// ruleAnyRefErasure is rule 6: any reference converts to `&any` (pointer
// erasure), as long as mutability allows.
func ruleAnyRefErasure(e Emitter, v Value, target types.Type, _ bool) (Value, bool) {
	if !isReference(v.Type) {
		return Value{}, false
	}
	dst, ok := target.(*types.ReferenceType)
	if !ok || dst.Kind_ != types.Regular {
		return Value{}, false
	}
	dstPrim, ok := dst.Inner.(*types.PrimitiveType)
	if !ok || dstPrim.Kind_ != types.ANY.Kind_ {
		return Value{}, false
	}
	src := v.Type.(*types.ReferenceType)
	if dst.Mutable && !src.Mutable {
		return Value{}, false
	}
	handle := v.Handle
	if e != nil && handle != nil {
		handle = e.BitCast(handle, target)
	}
	return Value{Handle: handle, Type: target, Flags: v.Flags}, true
}

// ruleRefArrayToUnboundedRef is rule 7: a reference to VariableSize,
// UnboundedSized or Iterable array converts to a reference to an Unbounded
// array of the same element type. FixedSize is handled separately by rule 8
// since it additionally needs a GEP to skip the aggregate header.
func ruleRefArrayToUnboundedRef(e Emitter, v Value, target types.Type, _ bool) (Value, bool) {
	src, ok := v.Type.(*types.ReferenceType)
	if !ok {
		return Value{}, false
	}
	srcArr, ok := src.Inner.(*types.ArrayType)
	if !ok || srcArr.Kind_ == types.Unbounded || srcArr.Kind_ == types.FixedSize {
		return Value{}, false
	}
	dst, ok := target.(*types.ReferenceType)
	if !ok {
		return Value{}, false
	}
	dstArr, ok := dst.Inner.(*types.ArrayType)
	if !ok || dstArr.Kind_ != types.Unbounded {
		return Value{}, false
	}
	if !srcArr.Inner.Equals(dstArr.Inner) {
		return Value{}, false
	}
	handle := v.Handle
	if e != nil && handle != nil {
		handle = e.BitCast(handle, target)
	}
	return Value{Handle: handle, Type: target, Flags: v.Flags}, true
}

// ruleFixedRefToUnboundedRef is rule 8: reference-to-FixedSize decays to
// reference-to-Unbounded via GEP element zero.
func ruleFixedRefToUnboundedRef(e Emitter, v Value, target types.Type, _ bool) (Value, bool) {
	src, ok := v.Type.(*types.ReferenceType)
	if !ok {
		return Value{}, false
	}
	srcArr, ok := src.Inner.(*types.ArrayType)
	if !ok || srcArr.Kind_ != types.FixedSize {
		return Value{}, false
	}
	dst, ok := target.(*types.ReferenceType)
	if !ok {
		return Value{}, false
	}
	dstArr, ok := dst.Inner.(*types.ArrayType)
	if !ok || dstArr.Kind_ != types.Unbounded {
		return Value{}, false
	}
	if !srcArr.Inner.Equals(dstArr.Inner) {
		return Value{}, false
	}
	handle := v.Handle
	if e != nil && handle != nil {
		handle = e.GEPFirstElement(handle, srcArr)
	}
	return Value{Handle: handle, Type: target, Flags: v.Flags}, true
}

// ruleNullToAnyRef is rule 9: the `null` literal converts to any reference
// type via a pointer cast of the constant null.
func ruleNullToAnyRef(e Emitter, v Value, target types.Type, _ bool) (Value, bool) {
	p, ok := v.Type.(*types.PrimitiveType)
	if !ok || p.Kind_ != types.NULL.Kind_ {
		return Value{}, false
	}
	if !isReference(target) {
		return Value{}, false
	}
	handle := v.Handle
	if e != nil {
		handle = e.ConstNull(target)
	}
	return Value{Handle: handle, Type: target, Flags: 0}, true
}

// ruleValueToOptional implements the Open Question's makeConvertTypeToOptional
// decision (b): a value of type T converts into ?T by wrapping it as
// present. The null literal is the one exception, converting into ?T as
// the absent case instead of calling MakeOptionalSome.
func ruleValueToOptional(e Emitter, v Value, target types.Type, _ bool) (Value, bool) {
	opt, ok := target.(*types.OptionalType)
	if !ok {
		return Value{}, false
	}
	if p, ok := v.Type.(*types.PrimitiveType); ok && p.Kind_ == types.NULL.Kind_ {
		handle := v.Handle
		if e != nil {
			handle = e.ConstNull(target)
		}
		return Value{Handle: handle, Type: target, Flags: 0}, true
	}
	if !v.Type.Equals(opt.Inner) {
		return Value{}, false
	}
	handle := v.Handle
	if e != nil {
		handle = e.MakeOptionalSome(handle, opt.Inner)
	}
	return Value{Handle: handle, Type: target, Flags: v.Flags}, true
}

// ruleRefToBool is rule 10: a reference converts to Bool via a non-null test.
func ruleRefToBool(e Emitter, v Value, target types.Type, _ bool) (Value, bool) {
	if !isReference(v.Type) {
		return Value{}, false
	}
	dst, ok := target.(*types.PrimitiveType)
	if !ok || dst.Kind_ != types.BOOL.Kind_ {
		return Value{}, false
	}
	handle := v.Handle
	if e != nil && handle != nil {
		handle = e.NonNull(handle)
	}
	return Value{Handle: handle, Type: target, Flags: v.Flags &^ Reference}, true
}

// ruleOptionalToBool implements Open Question decision #1: an Optional
// tests truthy iff it holds a value, inserted between rules 10 and 11 since
// neither the reference->bool rule nor the int<->float rule apply to it.
func ruleOptionalToBool(e Emitter, v Value, target types.Type, _ bool) (Value, bool) {
	_, ok := v.Type.(*types.OptionalType)
	if !ok {
		return Value{}, false
	}
	dst, ok := target.(*types.PrimitiveType)
	if !ok || dst.Kind_ != types.BOOL.Kind_ {
		return Value{}, false
	}
	handle := v.Handle
	if e != nil && handle != nil {
		handle = e.NonNull(handle)
	}
	return Value{Handle: handle, Type: target, Flags: v.Flags &^ Reference}, true
}

// ruleIntFloat is rule 11: sign-aware int<->float conversion.
func ruleIntFloat(e Emitter, v Value, target types.Type, _ bool) (Value, bool) {
	src, ok := v.Type.(*types.PrimitiveType)
	if !ok {
		return Value{}, false
	}
	dst, ok := target.(*types.PrimitiveType)
	if !ok {
		return Value{}, false
	}

	switch {
	case src.IsInteger() && dst.IsFloat():
		handle := v.Handle
		if e != nil && handle != nil {
			handle = e.IntToFloat(handle, src, dst)
		}
		return Value{Handle: handle, Type: target, Flags: v.Flags}, true
	case src.IsFloat() && dst.IsInteger():
		handle := v.Handle
		if e != nil && handle != nil {
			handle = e.FloatToInt(handle, src, dst)
		}
		return Value{Handle: handle, Type: target, Flags: v.Flags}, true
	default:
		return Value{}, false
	}
}

// rulePrimitiveExtendTruncate is rule 12: selects sext/zext/trunc for
// integers and fpext/fptrunc for floats based on relative Priority().
func rulePrimitiveExtendTruncate(e Emitter, v Value, target types.Type, _ bool) (Value, bool) {
	src, ok := v.Type.(*types.PrimitiveType)
	if !ok {
		return Value{}, false
	}
	dst, ok := target.(*types.PrimitiveType)
	if !ok {
		return Value{}, false
	}

	switch {
	case src.IsInteger() && dst.IsInteger():
		handle := v.Handle
		if e != nil && handle != nil {
			handle = e.IntExtendOrTruncate(handle, src, dst)
		}
		return Value{Handle: handle, Type: target, Flags: v.Flags}, true
	case src.IsFloat() && dst.IsFloat():
		handle := v.Handle
		if e != nil && handle != nil {
			handle = e.FloatExtendOrTruncate(handle, src, dst)
		}
		return Value{Handle: handle, Type: target, Flags: v.Flags}, true
	default:
		return Value{}, false
	}
}
