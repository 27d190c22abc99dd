package types

// Field is one ordered member of a Named aggregate.
type Field struct {
	Name    string
	Type    Type
	Mutable bool
}

// NamedType is a reference to a user-defined aggregate. Equality is by
// declaring-node identity (Decl), never structural — two separately
// declared types with identical fields are distinct types.
//
// Decl anchors identity to the declaration that produced this type. It is
// kept as `any` (rather than a dependency on package ast) so the type
// algebra has no import cycle with the AST; callers compare it with `==`.
type NamedType struct {
	Decl   any
	Name   string
	Fields []Field
}

func (n *NamedType) Kind() Kind { return KindNamed }

func (n *NamedType) String() string { return n.Name }

func (n *NamedType) Equals(other Type) bool {
	o, ok := other.(*NamedType)
	if !ok {
		return false
	}
	if n.Decl != nil || o.Decl != nil {
		return n.Decl == o.Decl
	}
	return n == o
}

// FieldIndex returns the ordinal of the named field, or -1 if absent.
func (n *NamedType) FieldIndex(name string) int {
	for i, f := range n.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Field looks up a field by name.
func (n *NamedType) Field(name string) (Field, bool) {
	i := n.FieldIndex(name)
	if i < 0 {
		return Field{}, false
	}
	return n.Fields[i], true
}
