package scope

import "testing"

func TestAccumulatorPushAssignsMonotonicUIDs(t *testing.T) {
	a := NewAccumulator()
	u1 := a.Push("a")
	u2 := a.Push("b")
	if u2 <= u1 {
		t.Errorf("expected monotonically increasing UIDs, got %d then %d", u1, u2)
	}
}

func TestAccumulatorCommitDestroysInFIFOOrder(t *testing.T) {
	a := NewAccumulator()
	a.Push("first")
	a.Push("second")
	a.Push("third")

	var destroyed []string
	a.Commit(func(tmp Temporary) { destroyed = append(destroyed, tmp.Value.(string)) })

	want := []string{"first", "second", "third"}
	if len(destroyed) != len(want) {
		t.Fatalf("destroyed %v, want %v", destroyed, want)
	}
	for i := range want {
		if destroyed[i] != want[i] {
			t.Errorf("destroy order[%d] = %q, want %q", i, destroyed[i], want[i])
		}
	}
}

func TestAccumulatorPassSkipsDestruction(t *testing.T) {
	a := NewAccumulator()
	u1 := a.Push("kept")
	a.Push("discarded")
	a.Pass(u1)

	var destroyed []string
	a.Commit(func(tmp Temporary) { destroyed = append(destroyed, tmp.Value.(string)) })

	if len(destroyed) != 1 || destroyed[0] != "discarded" {
		t.Errorf("expected only the un-passed temporary to be destroyed, got %v", destroyed)
	}
}

func TestAccumulatorCommitResetsState(t *testing.T) {
	a := NewAccumulator()
	u := a.Push("x")
	a.Pass(u)
	a.Commit(func(Temporary) {})

	if len(a.Pending()) != 0 {
		t.Errorf("expected queue to be empty after Commit, got %v", a.Pending())
	}

	a.Push("y")
	var destroyed []string
	a.Commit(func(tmp Temporary) { destroyed = append(destroyed, tmp.Value.(string)) })
	if len(destroyed) != 1 || destroyed[0] != "y" {
		t.Errorf("expected the avoid set to reset between commits, got %v", destroyed)
	}
}

func TestAccumulatorPendingReportsQueuedTemporaries(t *testing.T) {
	a := NewAccumulator()
	a.Push("a")
	a.Push("b")

	pending := a.Pending()
	if len(pending) != 2 || pending[0].Value != "a" || pending[1].Value != "b" {
		t.Errorf("Pending() = %+v, want [a, b] in push order", pending)
	}
}
