// Package diag implements the compiler's diagnostic taxonomy: every error
// surfaced to a user is one of four kinds (Syntax, Verify, IO, Unreachable),
// carries the byte-offset Pos of the offending node, and knows how to render
// itself as a one-line message plus a source snippet with a caret.
package diag

import (
	"fmt"

	"github.com/cwbudde/emberc/internal/ast"
)

// Kind classifies a diagnostic into one of four buckets.
type Kind int

const (
	// Syntax is a lexer/parser error: malformed source text.
	Syntax Kind = iota
	// Verify is a semantic rule violation: a well-formed program that
	// breaks a type, ownership, or scoping invariant.
	Verify
	// IO is a failure reading/writing a file or package outside the
	// program text itself (missing import, unreadable project file, ...).
	IO
	// Unreachable marks an internal invariant failure: a state the
	// compiler believes can never occur. Recovered panics land here.
	Unreachable
)

func (k Kind) String() string {
	switch k {
	case Syntax:
		return "syntax error"
	case Verify:
		return "error"
	case IO:
		return "io error"
	case Unreachable:
		return "internal error"
	default:
		return "error"
	}
}

// Error is one diagnostic. Source and File are only populated when the
// diagnostic is formatted for display; callers that just want to propagate
// failure can construct one with Pos and Message alone.
type Error struct {
	Kind    Kind
	Message string
	Pos     ast.Pos
	File    string
	Source  string
}

func (e *Error) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s: %s", e.File, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Syntaxf builds a Syntax diagnostic.
func Syntaxf(pos ast.Pos, format string, args ...any) *Error {
	return &Error{Kind: Syntax, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// Verifyf builds a Verify diagnostic.
func Verifyf(pos ast.Pos, format string, args ...any) *Error {
	return &Error{Kind: Verify, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// IOf builds an IO diagnostic. Pos is frequently zero for these, since the
// failure is often outside any single source file (a missing package, an
// unreadable project file).
func IOf(pos ast.Pos, format string, args ...any) *Error {
	return &Error{Kind: IO, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// Unreachablef builds an Unreachable diagnostic.
func Unreachablef(pos ast.Pos, format string, args ...any) *Error {
	return &Error{Kind: Unreachable, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// WithSource attaches the file name and full source text used to render a
// snippet, returning the same *Error for chaining at the call site.
func (e *Error) WithSource(file, source string) *Error {
	e.File = file
	e.Source = source
	return e
}
