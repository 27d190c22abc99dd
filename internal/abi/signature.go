package abi

import "github.com/cwbudde/emberc/internal/types"

// Convention describes how one parameter or a return value crosses the
// call boundary once the Platform has classified it.
type Convention int

const (
	// Registers means the value travels packed into Param.Reg /
	// Signature.ReturnReg (one entry for a scalar, up to two for a
	// classified small aggregate).
	Registers Convention = iota
	// Indirect means the value travels by address: a byval pointer for a
	// parameter, or a hidden leading pointer argument for a return value.
	Indirect
)

// Param is one ABI-lowered parameter: Type is the logical type as declared
// in source; Reg carries the register-sized types it packs into when
// Convention is Registers.
type Param struct {
	Name       string
	Type       types.Type
	Convention Convention
	Reg        []types.Type
}

// Signature is a logical function signature rewritten into ABI form by
// Platform.FormatArguments (§4.8).
type Signature struct {
	ReturnType       types.Type
	ReturnConvention Convention
	ReturnReg        []types.Type
	Parameters       []Param
}

// Logical is the pre-ABI signature a caller builds from a declaration.
type Logical struct {
	ReturnType types.Type
	Parameters []types.Parameter
}
