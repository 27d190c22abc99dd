package diag

import (
	"strings"
	"testing"

	"github.com/cwbudde/emberc/internal/ast"
)

func TestAppendToReportGrowsDiagnosticsArray(t *testing.T) {
	report := []byte(`{"diagnostics":[]}`)

	e := Verifyf(ast.Pos(3), "type mismatch").WithSource("main.ember", "")
	patched, err := AppendToReport(report, e)
	if err != nil {
		t.Fatalf("AppendToReport: %v", err)
	}
	if CountInReport(patched) != 1 {
		t.Fatalf("got %d diagnostics, want 1", CountInReport(patched))
	}
	if !strings.Contains(string(patched), "type mismatch") {
		t.Fatalf("patched report missing message: %s", patched)
	}

	patched, err = AppendToReport(patched, Syntaxf(0, "unexpected token"))
	if err != nil {
		t.Fatalf("AppendToReport: %v", err)
	}
	if CountInReport(patched) != 2 {
		t.Fatalf("got %d diagnostics, want 2", CountInReport(patched))
	}
}

func TestCountInReportIsZeroForEmptyDocument(t *testing.T) {
	if got := CountInReport([]byte(`{}`)); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}
