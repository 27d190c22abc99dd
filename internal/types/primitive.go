package types

// PrimitiveKind enumerates the fourteen built-in scalar types.
type PrimitiveKind int

const (
	Any PrimitiveKind = iota
	Null
	Nothing
	Bool
	Byte
	Short
	Int
	Long
	UByte
	UShort
	UInt
	ULong
	Float
	Double
)

var primitiveNames = map[PrimitiveKind]string{
	Any:     "any",
	Null:    "null",
	Nothing: "nothing",
	Bool:    "bool",
	Byte:    "byte",
	Short:   "short",
	Int:     "int",
	Long:    "long",
	UByte:   "ubyte",
	UShort:  "ushort",
	UInt:    "uint",
	ULong:   "ulong",
	Float:   "float",
	Double:  "double",
}

var primitiveSizes = map[PrimitiveKind]int{
	Any:     8, // pointer-sized erased value
	Null:    8,
	Nothing: 0,
	Bool:    1,
	Byte:    1,
	Short:   2,
	Int:     4,
	Long:    8,
	UByte:   1,
	UShort:  2,
	UInt:    4,
	ULong:   8,
	Float:   4,
	Double:  8,
}

// priorityOrder lists primitives from highest to lowest priority, used
// exclusively to pick the larger operand during numeric negotiation.
var priorityOrder = []PrimitiveKind{Double, ULong, Long, Float, UInt, Int, UShort, Short, UByte, Byte}

var priorityOf = func() map[PrimitiveKind]int {
	m := make(map[PrimitiveKind]int, len(priorityOrder))
	for i, p := range priorityOrder {
		m[p] = len(priorityOrder) - i
	}
	return m
}()

// PrimitiveType is a leaf Type for one of the fourteen scalar kinds.
type PrimitiveType struct {
	Kind_ PrimitiveKind
}

// NewPrimitive returns the Type for the given primitive kind.
func NewPrimitive(kind PrimitiveKind) *PrimitiveType {
	return &PrimitiveType{Kind_: kind}
}

func (p *PrimitiveType) Kind() Kind { return KindPrimitive }

func (p *PrimitiveType) String() string {
	if name, ok := primitiveNames[p.Kind_]; ok {
		return name
	}
	return "<invalid primitive>"
}

func (p *PrimitiveType) Equals(other Type) bool {
	o, ok := other.(*PrimitiveType)
	return ok && o.Kind_ == p.Kind_
}

// Size returns the type's size in bytes.
func (p *PrimitiveType) Size() int { return primitiveSizes[p.Kind_] }

// Priority returns the primitive's position in the numeric promotion order;
// higher means it is preferred as the target of a negotiation.
func (p *PrimitiveType) Priority() int { return priorityOf[p.Kind_] }

// IsSigned reports whether the primitive is a signed integer type.
func (p *PrimitiveType) IsSigned() bool {
	switch p.Kind_ {
	case Byte, Short, Int, Long:
		return true
	default:
		return false
	}
}

// IsUnsigned reports whether the primitive is an unsigned integer type.
func (p *PrimitiveType) IsUnsigned() bool {
	switch p.Kind_ {
	case UByte, UShort, UInt, ULong:
		return true
	default:
		return false
	}
}

// IsInteger reports whether the primitive is any signed or unsigned integer.
func (p *PrimitiveType) IsInteger() bool {
	return p.IsSigned() || p.IsUnsigned()
}

// IsFloat reports whether the primitive is Float or Double.
func (p *PrimitiveType) IsFloat() bool {
	return p.Kind_ == Float || p.Kind_ == Double
}

// Convenience singletons; every call site shares the same pointer so
// equality-by-identity shortcuts (e.g. in maps keyed by Type) also work.
var (
	ANY     = NewPrimitive(Any)
	NULL    = NewPrimitive(Null)
	NOTHING = NewPrimitive(Nothing)
	BOOL    = NewPrimitive(Bool)
	BYTE    = NewPrimitive(Byte)
	SHORT   = NewPrimitive(Short)
	INT     = NewPrimitive(Int)
	LONG    = NewPrimitive(Long)
	UBYTE   = NewPrimitive(UByte)
	USHORT  = NewPrimitive(UShort)
	UINT    = NewPrimitive(UInt)
	ULONG   = NewPrimitive(ULong)
	FLOAT   = NewPrimitive(Float)
	DOUBLE  = NewPrimitive(Double)
)
