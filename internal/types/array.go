package types

import "fmt"

// ArrayKind distinguishes the five array representations.
type ArrayKind int

const (
	// FixedSize arrays live in-place: `[T:n]`.
	FixedSize ArrayKind = iota
	// VariableSize arrays are a heap-backed growable triple (size, capacity, data*).
	VariableSize
	// Unbounded is an unchecked pointer-like view: `[T:]`.
	Unbounded
	// UnboundedSized carries a runtime length expression evaluated at allocation time.
	UnboundedSized
	// Iterable is an opaque iterator view.
	Iterable
)

func (k ArrayKind) String() string {
	switch k {
	case FixedSize:
		return "FixedSize"
	case VariableSize:
		return "VariableSize"
	case Unbounded:
		return "Unbounded"
	case UnboundedSized:
		return "UnboundedSized"
	case Iterable:
		return "Iterable"
	default:
		return "?"
	}
}

// ArrayType is the Array variant of the type algebra.
//
// Size is only meaningful for FixedSize. SizeExpr is only meaningful for
// UnboundedSized, and per §4.1 equality compares the *expression-node
// identity* of SizeExpr, never its runtime value — so it is kept as `any`
// (an AST node pointer) rather than an evaluated int, mirroring NamedType's
// Decl identity anchor.
type ArrayType struct {
	Inner    Type
	Kind_    ArrayKind
	Size     int
	SizeExpr any
}

func (a *ArrayType) Kind() Kind { return KindArray }

func (a *ArrayType) String() string {
	switch a.Kind_ {
	case FixedSize:
		return fmt.Sprintf("[%s:%d]", a.Inner.String(), a.Size)
	case VariableSize:
		return fmt.Sprintf("[%s]", a.Inner.String())
	case Unbounded:
		return fmt.Sprintf("[%s:]", a.Inner.String())
	case UnboundedSized:
		return fmt.Sprintf("[%s:*]", a.Inner.String())
	case Iterable:
		return fmt.Sprintf("iter[%s]", a.Inner.String())
	default:
		return "<invalid array>"
	}
}

func (a *ArrayType) Equals(other Type) bool {
	o, ok := other.(*ArrayType)
	if !ok || o.Kind_ != a.Kind_ || !a.Inner.Equals(o.Inner) {
		return false
	}
	switch a.Kind_ {
	case FixedSize:
		return a.Size == o.Size
	case UnboundedSized:
		return a.SizeExpr == o.SizeExpr
	default:
		return true
	}
}
