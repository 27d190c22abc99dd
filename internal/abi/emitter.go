package abi

import "github.com/cwbudde/emberc/internal/types"

// Emitter is the narrow slice of backend operations Platform needs to tie
// logical values to their ABI-lowered form. A nil Emitter keeps every
// Platform method usable in analyze-only mode: each checks for it before
// touching a handle, the same discipline convert.Emitter and expr.Emitter
// follow.
type Emitter interface {
	// AllocaValue reserves a spill slot sized for t. Named distinctly from
	// scope.Emitter's Alloca(name string), which allocates the fixed
	// one-byte exit-chain slot by name rather than by type.
	AllocaValue(t types.Type) any
	Store(handle any, value any)
	Load(handle any, t types.Type) any
	BitCast(handle any, to types.Type) any
	OffsetBytes(handle any, bytes int) any
	Call(target any, args []any) any
	ReturnValues(values []any)
}
