package types

import "strings"

// FuncKind distinguishes an ordinary function value from a function pointer.
type FuncKind int

const (
	Pointer FuncKind = iota
	FunctionRegular
)

// Parameter is one ordered (name, type) pair of a function signature.
type Parameter struct {
	Name string
	Type Type
}

// FunctionType is the Function variant of the type algebra.
type FunctionType struct {
	ReturnType Type
	Parameters []Parameter
	Kind_      FuncKind
	Locked     bool
}

func (f *FunctionType) Kind() Kind { return KindFunction }

func (f *FunctionType) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, p := range f.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Type.String())
	}
	sb.WriteString(") ")
	if f.ReturnType != nil {
		sb.WriteString(f.ReturnType.String())
	} else {
		sb.WriteString("nothing")
	}
	return sb.String()
}

// Equals ignores parameter *names*, per §4.1, but not their types or order.
func (f *FunctionType) Equals(other Type) bool {
	o, ok := other.(*FunctionType)
	if !ok || f.Kind_ != o.Kind_ || len(f.Parameters) != len(o.Parameters) {
		return false
	}
	if (f.ReturnType == nil) != (o.ReturnType == nil) {
		return false
	}
	if f.ReturnType != nil && !f.ReturnType.Equals(o.ReturnType) {
		return false
	}
	for i := range f.Parameters {
		if !f.Parameters[i].Type.Equals(o.Parameters[i].Type) {
			return false
		}
	}
	return true
}
