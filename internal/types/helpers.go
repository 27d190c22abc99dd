package types

// IsReference reports whether t is a Reference type.
func IsReference(t Type) (*ReferenceType, bool) {
	r, ok := t.(*ReferenceType)
	return r, ok
}

// IsPrimitive reports whether t is a Primitive type.
func IsPrimitive(t Type) (*PrimitiveType, bool) {
	p, ok := t.(*PrimitiveType)
	return p, ok
}

// Dereference strips exactly one layer of Reference, returning the pointee
// and true, or (t, false) if t is not a Reference.
func Dereference(t Type) (Type, bool) {
	if r, ok := t.(*ReferenceType); ok {
		return r.Inner, true
	}
	return t, false
}

// DereferenceAll strips every layer of Reference, used by dot-field
// resolution which must look through any number of reference layers.
func DereferenceAll(t Type) Type {
	for {
		r, ok := t.(*ReferenceType)
		if !ok {
			return t
		}
		t = r.Inner
	}
}
