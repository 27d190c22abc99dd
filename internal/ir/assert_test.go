package ir

import (
	"testing"

	"github.com/cwbudde/emberc/internal/abi"
	"github.com/cwbudde/emberc/internal/convert"
	"github.com/cwbudde/emberc/internal/expr"
	"github.com/cwbudde/emberc/internal/scope"
)

func TestEmitterSatisfiesEverySemanticInterface(t *testing.T) {
	// Compile-time checks, not runtime assertions: if *Emitter drifts out
	// of sync with any of these interfaces, the package fails to build.
}

var (
	_ scope.Emitter     = (*Emitter)(nil)
	_ scope.Destroyer   = (*Emitter)(nil)
	_ scope.Initializer = (*Emitter)(nil)
	_ convert.Emitter   = (*Emitter)(nil)
	_ expr.Emitter      = (*Emitter)(nil)
	_ abi.Emitter       = (*Emitter)(nil)
)
