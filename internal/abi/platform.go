// Package abi implements the Platform ABI collaborator (§4.8): rewriting a
// logical function signature into its target-triple calling convention,
// then tying logical argument/return values to that convention at call
// sites. The base Platform is a pass-through used by targets whose C ABI
// the compiler does not specially classify; SysVPlatform implements the
// System V AMD64 classifier.
package abi

import (
	"runtime"

	"github.com/cwbudde/emberc/internal/types"
)

// Platform exposes the four operations the Statement/Expression Engines
// consult when lowering a call or a function signature.
type Platform interface {
	// FormatArguments rewrites a Logical signature into its ABI Signature:
	// per-parameter and return conventions, plus sret/byval bookkeeping.
	FormatArguments(sig Logical) Signature

	// InvokeFunction emits the call itself once arguments have been tied.
	InvokeFunction(e Emitter, target any, args []any) any

	// TieArguments packs a logical argument list into the handles the ABI
	// signature expects: unchanged for Registers-convention scalars,
	// split across Param.Reg for classified aggregates, or materialized
	// behind a fresh alloca for Indirect parameters.
	TieArguments(e Emitter, sig Signature, args []any) []any

	// TieReturn is the inverse of TieArguments for the return value: it
	// packs a logical return handle into sig's ReturnReg registers, or
	// emits a bare `ret void` when the return travels through a hidden
	// sret pointer that the caller has already populated.
	TieReturn(e Emitter, sig Signature, value any)
}

// ByNative returns the Platform for the host's GOOS, mirroring
// Platform::byNative's use of the default target triple.
func ByNative() Platform {
	return ByTriple(runtime.GOOS)
}

// sysVGOOS are the runtime.GOOS values System V AMD64 governs. Windows and
// exotic targets (js, wasip1, plan9, ...) fall back to the generic
// Platform, matching the original's triple switch default.
var sysVGOOS = map[string]bool{
	"linux":   true,
	"darwin":  true,
	"ios":     true,
	"freebsd": true,
	"netbsd":  true,
	"openbsd": true,
	"solaris": true,
	"illumos": true,
}

// ByTriple selects a Platform by target identifier (a runtime.GOOS-style
// name, not a full LLVM triple — the classifier only needs the OS family).
func ByTriple(goos string) Platform {
	if sysVGOOS[goos] {
		return NewSysVPlatform()
	}
	return NewBasePlatform()
}

// basePlatform is the identity ABI: every value travels by its logical
// type, unchanged.
type basePlatform struct{}

// NewBasePlatform returns the pass-through Platform.
func NewBasePlatform() Platform { return basePlatform{} }

func (basePlatform) FormatArguments(sig Logical) Signature {
	params := make([]Param, len(sig.Parameters))
	for i, p := range sig.Parameters {
		params[i] = Param{Name: p.Name, Type: p.Type, Convention: Registers, Reg: []types.Type{p.Type}}
	}
	var retReg []types.Type
	if sig.ReturnType != nil && !sig.ReturnType.Equals(types.NOTHING) {
		retReg = []types.Type{sig.ReturnType}
	}
	return Signature{
		ReturnType:       sig.ReturnType,
		ReturnConvention: Registers,
		ReturnReg:        retReg,
		Parameters:       params,
	}
}

func (basePlatform) InvokeFunction(e Emitter, target any, args []any) any {
	if e == nil {
		return nil
	}
	return e.Call(target, args)
}

func (basePlatform) TieArguments(e Emitter, sig Signature, args []any) []any {
	return args
}

func (basePlatform) TieReturn(e Emitter, sig Signature, value any) {
	if e == nil {
		return
	}
	if value == nil {
		e.ReturnValues(nil)
		return
	}
	e.ReturnValues([]any{value})
}
