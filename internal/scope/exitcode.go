// Package scope implements the Scope/Statement Engine's exit-chain protocol
// (§4.6) and destructor/initialization dispatch (§4.7): every scope owns an
// entry block, a one-byte exit-chain-type slot, an exit-chain-begin
// destructor block, and an exit-chain-end dispatch switch that routes each
// possible exit code to a caller-supplied destination.
package scope

// ExitCode is the one-byte tag a scope's exit-chain slot holds, selecting
// which destination its exit-chain-end dispatch branches to.
type ExitCode uint8

const (
	Regular ExitCode = iota
	Return
	Break
	Continue
)

func (c ExitCode) String() string {
	switch c {
	case Regular:
		return "Regular"
	case Return:
		return "Return"
	case Break:
		return "Break"
	case Continue:
		return "Continue"
	default:
		return "?"
	}
}

// DestinationKind tags what a Destination means to the dispatch switch.
type DestinationKind int

const (
	// ToBlock branches directly to Destination.Block.
	ToBlock DestinationKind = iota
	// Propagate forwards the exit code unchanged to the enclosing scope's
	// exit-chain-begin, so its own destructors run before the code is
	// dispatched again one level up.
	Propagate
	// Invalid means this exit code cannot legally occur for this statement
	// kind (e.g. Break with no enclosing loop); reaching it is a bug in an
	// earlier analysis pass, not a runtime case to dispatch.
	Invalid
)

// Destination tells a scope's exit-chain-end where to route one ExitCode.
type Destination struct {
	Kind  DestinationKind
	Block any
}

// StatementKind selects which destination table shape a scope uses, per
// the table in §4.6.
type StatementKind int

const (
	PlainBlock StatementKind = iota
	IfBlock
	ForInfinite
	ForConditional
	ExitBlockRegular
	ExitBlockExit
)

// Targets carries the caller-supplied blocks a destination table is built
// from; which fields are used depends on StatementKind.
type Targets struct {
	Next            any // the statement following this one
	LoopHead        any // ForInfinite: branch target for Regular/Continue
	Condition       any // ForConditional: branch target for Regular/Continue
	LoopExit        any // for loops: branch target for Break
	CallerExitBegin any // ExitBlockExit: the caller's exit-chain-begin
}

// Destinations builds the exit-code -> Destination table for one statement
// kind, exactly per the table in §4.6.
func Destinations(kind StatementKind, t Targets) map[ExitCode]Destination {
	switch kind {
	case PlainBlock, IfBlock:
		return map[ExitCode]Destination{
			Regular:  {Kind: ToBlock, Block: t.Next},
			Break:    {Kind: Propagate},
			Continue: {Kind: Propagate},
			Return:   {Kind: Propagate},
		}
	case ForInfinite:
		return map[ExitCode]Destination{
			Regular:  {Kind: ToBlock, Block: t.LoopHead},
			Break:    {Kind: ToBlock, Block: t.LoopExit},
			Continue: {Kind: ToBlock, Block: t.LoopHead},
			Return:   {Kind: Propagate},
		}
	case ForConditional:
		return map[ExitCode]Destination{
			Regular:  {Kind: ToBlock, Block: t.Condition},
			Break:    {Kind: ToBlock, Block: t.LoopExit},
			Continue: {Kind: ToBlock, Block: t.Condition},
			Return:   {Kind: Propagate},
		}
	case ExitBlockRegular:
		return map[ExitCode]Destination{
			Regular:  {Kind: ToBlock, Block: t.Next},
			Break:    {Kind: Invalid},
			Continue: {Kind: Invalid},
			Return:   {Kind: Propagate},
		}
	case ExitBlockExit:
		return map[ExitCode]Destination{
			Regular:  {Kind: ToBlock, Block: t.CallerExitBegin},
			Break:    {Kind: Invalid},
			Continue: {Kind: Invalid},
			Return:   {Kind: Invalid},
		}
	default:
		return nil
	}
}
