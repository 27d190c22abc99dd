package convert

import "github.com/cwbudde/emberc/internal/types"

// negotiateRule mirrors the chain used by the teacher's own `negotiate`:
// equal types pass through, then primitive numeric promotion, then
// reference-with-null.
type negotiateRule func(left, right types.Type) (types.Type, bool)

var negotiateChain = []negotiateRule{
	negotiateEqual,
	negotiatePrimitive,
	negotiateReferenceAndNull,
}

// Negotiate picks a common type for two operands per §4.4: equal types pass
// through; otherwise both primitive numbers negotiate to the smallest
// primitive that accommodates both signedness, integrality, and size;
// reference-with-null negotiates to the reference.
func Negotiate(left, right types.Type) (types.Type, bool) {
	for _, r := range negotiateChain {
		if t, ok := r(left, right); ok {
			return t, true
		}
	}
	return nil, false
}

func negotiateEqual(left, right types.Type) (types.Type, bool) {
	if left.Equals(right) {
		return left, true
	}
	return nil, false
}

// negotiatePrimitive picks the higher-priority primitive of the two, except
// that mixing a float with an integer always yields a float (so integral
// precision is not silently lost by favoring, say, ULong's priority over
// Float's).
func negotiatePrimitive(left, right types.Type) (types.Type, bool) {
	l, ok := left.(*types.PrimitiveType)
	if !ok {
		return nil, false
	}
	r, ok := right.(*types.PrimitiveType)
	if !ok {
		return nil, false
	}
	if !l.IsInteger() && !l.IsFloat() {
		return nil, false
	}
	if !r.IsInteger() && !r.IsFloat() {
		return nil, false
	}

	if l.IsFloat() != r.IsFloat() {
		if l.IsFloat() {
			return l, true
		}
		return r, true
	}

	if l.Priority() >= r.Priority() {
		return l, true
	}
	return r, true
}

// negotiateReferenceAndNull negotiates a reference type with `null` to the
// reference type itself.
func negotiateReferenceAndNull(left, right types.Type) (types.Type, bool) {
	lp, lIsNull := left.(*types.PrimitiveType)
	rp, rIsNull := right.(*types.PrimitiveType)

	switch {
	case lIsNull && lp.Kind_ == types.NULL.Kind_ && isReference(right):
		return right, true
	case rIsNull && rp.Kind_ == types.NULL.Kind_ && isReference(left):
		return left, true
	default:
		return nil, false
	}
}
