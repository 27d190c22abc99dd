package scope

// Emitter is the backend hook the exit-chain protocol lowers to: creating
// blocks, branching between them, and reading/writing the one-byte
// exit-chain slot.
type Emitter interface {
	NewBlock(name string) any
	SetInsertPoint(block any)
	Branch(to any)
	Alloca(name string) any
	StoreExitCode(slot any, code ExitCode)
	LoadExitCode(slot any) any
	Switch(on any, cases map[ExitCode]any, defaultCase any)
}

// Scope is one entry in the exit-chain protocol (§4.6): an entry block, a
// one-byte exit-chain-type slot, an exit-chain-begin destructor block, and
// an exit-chain-end dispatch switch that routes each ExitCode to the
// Destination its StatementKind and Targets resolve to.
//
// Scope is nil-Emitter-safe: with e == nil, Open/Exit/Close only thread
// state (Locals, Exprs, Accumulator) and compute destinations, performing
// no backend calls — the same pattern internal/convert.Emitter uses, so
// the destination tables and accumulator bookkeeping are unit-testable
// without a real backend.
type Scope struct {
	Outer *Scope

	Entry      any
	ExitSlot   any
	ExitBegin  any
	ExitEnd    any

	Destinations map[ExitCode]Destination

	Locals      *Cache
	Exprs       *ExprCache
	Accumulator *Accumulator
}

// Open starts a new scope nested inside outer (nil for the root scope),
// building its entry block, exit-chain slot and exit-chain-begin block,
// and resolving its destination table from kind and targets.
func Open(e Emitter, outer *Scope, kind StatementKind, targets Targets) *Scope {
	var outerLocals *Cache
	if outer != nil {
		outerLocals = outer.Locals
	}

	s := &Scope{
		Outer:        outer,
		Destinations: Destinations(kind, targets),
		Locals:       NewCache(outerLocals),
		Exprs:        NewExprCache(),
		Accumulator:  NewAccumulator(),
	}

	if e != nil {
		s.Entry = e.NewBlock("entry")
		s.ExitSlot = e.Alloca("exit_code")
		s.ExitBegin = e.NewBlock("exit_begin")
		s.ExitEnd = e.NewBlock("exit_end")
		e.SetInsertPoint(s.Entry)
	}

	return s
}

// Exit records that this scope is leaving with the given code: it stores
// code into the exit slot and branches to this scope's exit-chain-begin,
// where Close's destructor sequence and final dispatch take over.
func (s *Scope) Exit(e Emitter, code ExitCode) {
	if e == nil {
		return
	}
	e.StoreExitCode(s.ExitSlot, code)
	e.Branch(s.ExitBegin)
}

// Close finishes the scope. It first commits the Accumulator, calling
// destroy for every temporary not marked by Pass, in push (FIFO) order;
// these calls happen before the exit-chain-begin block becomes the insert
// point. It then emits the exit-chain-begin block, which branches straight
// to exit-chain-end, and the exit-chain-end dispatch switch over the
// resolved Destinations table. Close does not destroy the variables bound
// in Locals. A Destination with Kind == Propagate branches to the outer
// scope's exit-chain-begin instead of a local block, chaining the exit code
// outward until some scope's table resolves it to ToBlock.
func (s *Scope) Close(e Emitter, destroy func(Temporary)) {
	s.Accumulator.Commit(destroy)

	if e == nil {
		return
	}

	e.SetInsertPoint(s.ExitBegin)
	e.Branch(s.ExitEnd)

	e.SetInsertPoint(s.ExitEnd)
	code := e.LoadExitCode(s.ExitSlot)

	cases := make(map[ExitCode]any, len(s.Destinations))
	for ec, dest := range s.Destinations {
		switch dest.Kind {
		case ToBlock:
			cases[ec] = dest.Block
		case Propagate:
			if s.Outer != nil {
				cases[ec] = s.Outer.ExitBegin
			}
		case Invalid:
			// unreachable per an earlier analysis pass; omitted from the
			// switch so the backend's own default trap handles it.
		}
	}

	e.Switch(code, cases, nil)
}
