package abi

import "github.com/cwbudde/emberc/internal/types"

// sysVPlatform is the System V AMD64 classifier (§4.8): aggregates
// classify by recursive flattening into at most two eightbyte registers
// (with all-float/all-double fast paths); anything larger than sixteen
// bytes, or containing an unclassifiable element, is passed and returned
// indirectly instead.
//
// original_source's SysVPlatform only ever implemented formatArguments;
// invokeFunction/tieArguments/tieReturn were left as unreachable stubs.
// Here they're completed from the classification formatArguments already
// computes, since a working compiler needs all four operations, not just
// signature rewriting.
type sysVPlatform struct {
	basePlatform
}

// NewSysVPlatform returns the System V AMD64 Platform.
func NewSysVPlatform() Platform { return sysVPlatform{} }

func (sysVPlatform) FormatArguments(sig Logical) Signature {
	out := Signature{ReturnType: sig.ReturnType}

	if sig.ReturnType == nil || sig.ReturnType.Equals(types.NOTHING) {
		out.ReturnConvention = Registers
	} else if reg, ok := classify(sig.ReturnType); ok {
		out.ReturnConvention = Registers
		out.ReturnReg = reg
	} else {
		out.ReturnConvention = Indirect
		out.Parameters = append(out.Parameters, Param{
			Name:       "sret",
			Type:       sig.ReturnType,
			Convention: Indirect,
		})
	}

	for _, p := range sig.Parameters {
		if reg, ok := classify(p.Type); ok {
			out.Parameters = append(out.Parameters, Param{
				Name: p.Name, Type: p.Type, Convention: Registers, Reg: reg,
			})
		} else {
			out.Parameters = append(out.Parameters, Param{
				Name: p.Name, Type: p.Type, Convention: Indirect,
			})
		}
	}
	return out
}

func (sysVPlatform) TieArguments(e Emitter, sig Signature, args []any) []any {
	var result []any
	for i, param := range sig.Parameters {
		arg := args[i]
		switch {
		case param.Convention == Indirect:
			result = append(result, materializePointer(e, param.Type, arg))
		case len(param.Reg) <= 1:
			result = append(result, arg)
		default:
			result = append(result, splitIntoRegisters(e, param.Type, arg, param.Reg)...)
		}
	}
	return result
}

func (sysVPlatform) TieReturn(e Emitter, sig Signature, value any) {
	switch {
	case sig.ReturnConvention == Indirect:
		// The hidden sret pointer (sig.Parameters[0]) is populated by the
		// caller building the return statement; this only closes out the
		// function with a bare return.
		if e != nil {
			e.ReturnValues(nil)
		}
	case len(sig.ReturnReg) <= 1:
		if e == nil {
			return
		}
		if value == nil {
			e.ReturnValues(nil)
			return
		}
		e.ReturnValues([]any{value})
	default:
		if e == nil {
			return
		}
		e.ReturnValues(splitIntoRegisters(e, sig.ReturnType, value, sig.ReturnReg))
	}
}

// materializePointer spills a logical value behind a fresh alloca so it
// can be passed byval.
func materializePointer(e Emitter, t types.Type, value any) any {
	if e == nil {
		return value
	}
	slot := e.AllocaValue(t)
	e.Store(slot, value)
	return slot
}

// splitIntoRegisters packs a logical value into its classified register
// sequence: spill to a temporary, then bitcast+load each eightbyte in turn.
func splitIntoRegisters(e Emitter, t types.Type, value any, registers []types.Type) []any {
	if e == nil {
		regs := make([]any, len(registers))
		for i := range regs {
			regs[i] = value
		}
		return regs
	}

	slot := e.AllocaValue(t)
	e.Store(slot, value)

	result := make([]any, len(registers))
	offset := 0
	for i, reg := range registers {
		ptr := slot
		if offset > 0 {
			ptr = e.OffsetBytes(slot, offset)
		}
		typed := e.BitCast(ptr, reg)
		result[i] = e.Load(typed, reg)
		offset += reg.(*types.PrimitiveType).Size()
	}
	return result
}
