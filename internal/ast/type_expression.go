package ast

// TypeExpression is the tagged sum of unresolved type syntax as written by
// the programmer; internal/symbols resolves these into internal/types.Type.
type TypeExpression interface {
	Node
	typeExpressionNode()
}

// NameType is both a primitive and a named-type reference: `int`, `Point`.
// Resolution (by internal/symbols) decides which it is by name lookup.
type NameType struct {
	Pos_ Pos
	Name string
}

func (n *NameType) Position() Pos       { return n.Pos_ }
func (*NameType) typeExpressionNode()   {}

// RefKind mirrors types.RefKind at the syntax level (`&`, `*`, `~`).
type RefKind int

const (
	RegularRef RefKind = iota
	UniqueRef
	SharedRef
)

// ReferenceType is `&T`, `*T`, `~T`, optionally `var`-qualified for mutability.
type ReferenceType struct {
	Pos_    Pos
	Inner   TypeExpression
	Mutable bool
	Kind    RefKind
}

func (r *ReferenceType) Position() Pos     { return r.Pos_ }
func (*ReferenceType) typeExpressionNode() {}

// OptionalType is `?T` or the error-propagating `!T`.
type OptionalType struct {
	Pos_    Pos
	Inner   TypeExpression
	Bubbles bool
}

func (o *OptionalType) Position() Pos     { return o.Pos_ }
func (*OptionalType) typeExpressionNode() {}

// ArrayKind mirrors types.ArrayKind at the syntax level.
type ArrayKind int

const (
	FixedSizeArray ArrayKind = iota
	VariableSizeArray
	UnboundedArray
	UnboundedSizedArray
	IterableArray
)

// ArrayType is `[T:n]`, `[T]`, `[T:]`, `[T:expr]`.
type ArrayType struct {
	Pos_     Pos
	Inner    TypeExpression
	Kind     ArrayKind
	Size     int
	SizeExpr Expr // only set for UnboundedSizedArray
}

func (a *ArrayType) Position() Pos     { return a.Pos_ }
func (*ArrayType) typeExpressionNode() {}

// String renders a stable textual form, used by getTypeExpressionName-style
// helpers in the symbol builder when a type name must be reported in an
// error message before resolution has produced a types.Type.
func (a *ArrayType) String() string { return "<array type>" }
func (r *ReferenceType) String() string { return "<reference type>" }

// FuncKind mirrors types.FuncKind at the syntax level.
type FuncKind int

const (
	PointerFunc FuncKind = iota
	RegularFunc
)

// ParamSpec is one (name, type) parameter slot in a function type or decl.
type ParamSpec struct {
	Name string
	Type TypeExpression
}

// FunctionPointerType is `(T, U) R` or `func(T, U) R`.
type FunctionPointerType struct {
	Pos_       Pos
	Return     TypeExpression
	Parameters []ParamSpec
	Kind       FuncKind
}

func (f *FunctionPointerType) Position() Pos       { return f.Pos_ }
func (*FunctionPointerType) typeExpressionNode()   {}
func (f *FunctionPointerType) String() string      { return "<function type>" }
