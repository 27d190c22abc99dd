package scope

import "testing"

func TestDestinationsPlainBlockPropagatesNonRegular(t *testing.T) {
	next := "next-block"
	table := Destinations(PlainBlock, Targets{Next: next})

	if table[Regular].Kind != ToBlock || table[Regular].Block != next {
		t.Errorf("Regular should branch to Next, got %+v", table[Regular])
	}
	for _, code := range []ExitCode{Break, Continue, Return} {
		if table[code].Kind != Propagate {
			t.Errorf("%s should propagate for a plain block, got %+v", code, table[code])
		}
	}
}

func TestDestinationsForInfinite(t *testing.T) {
	head, exit := "loop-head", "loop-exit"
	table := Destinations(ForInfinite, Targets{LoopHead: head, LoopExit: exit})

	if table[Regular].Block != head || table[Continue].Block != head {
		t.Errorf("Regular and Continue should both branch to the loop head, got %+v / %+v",
			table[Regular], table[Continue])
	}
	if table[Break].Block != exit {
		t.Errorf("Break should branch to the loop exit, got %+v", table[Break])
	}
	if table[Return].Kind != Propagate {
		t.Errorf("Return should propagate, got %+v", table[Return])
	}
}

func TestDestinationsForConditional(t *testing.T) {
	cond, exit := "condition", "loop-exit"
	table := Destinations(ForConditional, Targets{Condition: cond, LoopExit: exit})

	if table[Regular].Block != cond || table[Continue].Block != cond {
		t.Errorf("Regular and Continue should both branch to the condition, got %+v / %+v",
			table[Regular], table[Continue])
	}
	if table[Break].Block != exit {
		t.Errorf("Break should branch to the loop exit, got %+v", table[Break])
	}
}

func TestDestinationsExitBlockRegularRejectsLoopCodes(t *testing.T) {
	table := Destinations(ExitBlockRegular, Targets{Next: "next"})

	if table[Break].Kind != Invalid || table[Continue].Kind != Invalid {
		t.Errorf("a regular (non-loop, non-function) exit block must reject Break/Continue, got %+v", table)
	}
	if table[Return].Kind != Propagate {
		t.Errorf("Return should still propagate from a regular exit block, got %+v", table[Return])
	}
}

func TestDestinationsExitBlockExitOnlyAcceptsRegular(t *testing.T) {
	caller := "caller-exit-begin"
	table := Destinations(ExitBlockExit, Targets{CallerExitBegin: caller})

	if table[Regular].Kind != ToBlock || table[Regular].Block != caller {
		t.Errorf("Regular should branch to the caller's exit-chain-begin, got %+v", table[Regular])
	}
	for _, code := range []ExitCode{Break, Continue, Return} {
		if table[code].Kind != Invalid {
			t.Errorf("%s should be invalid at a function's outermost exit block, got %+v", code, table[code])
		}
	}
}
