package expr

import (
	"strings"
	"testing"

	"github.com/cwbudde/emberc/internal/ast"
	"github.com/cwbudde/emberc/internal/convert"
	"github.com/cwbudde/emberc/internal/diag"
	"github.com/cwbudde/emberc/internal/types"
)

func TestBlameRecoversPanicAsUnreachableDiagnostic(t *testing.T) {
	node := &ast.RefExpr{Pos_: 7, Name: "x"}

	_, err := blame(node, "widget assembly", func() (Wrapped, error) {
		panic("impossible state")
	})

	if err == nil {
		t.Fatal("expected an error from a panicking fn")
	}
	de, ok := err.(*diag.Error)
	if !ok {
		t.Fatalf("got %T, want *diag.Error", err)
	}
	if de.Kind != diag.Unreachable {
		t.Errorf("got Kind %v, want Unreachable", de.Kind)
	}
	if de.Pos != node.Pos_ {
		t.Errorf("got Pos %d, want %d", de.Pos, node.Pos_)
	}
	if !strings.Contains(de.Message, "widget assembly") || !strings.Contains(de.Message, "impossible state") {
		t.Errorf("got message %q, want it to mention both the op and panic value", de.Message)
	}
}

func TestBlamePassesThroughWhenFnSucceeds(t *testing.T) {
	node := &ast.RefExpr{Pos_: 0, Name: "x"}
	want := ResultOf(convert.Value{Type: types.INT})

	got, err := blame(node, "noop", func() (Wrapped, error) {
		return want, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.IsResolved() != want.IsResolved() {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
