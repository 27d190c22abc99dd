package diag

import (
	"fmt"
	"strings"

	"golang.org/x/text/width"
)

// Format renders the diagnostic as a one-line header, the offending source
// line, and a caret under the byte offset. If color is true, ANSI codes
// highlight the caret and message the way a terminal reporter would.
func (e *Error) Format(color bool) string {
	var sb strings.Builder

	line, col := locate(e.Source, int(e.Pos))

	if e.File != "" {
		fmt.Fprintf(&sb, "%s: %s:%d:%d\n", e.Kind, e.File, line, col)
	} else {
		fmt.Fprintf(&sb, "%s: line %d:%d\n", e.Kind, line, col)
	}

	if snippet := sourceLine(e.Source, line); snippet != "" {
		prefix := fmt.Sprintf("%4d | ", line)
		sb.WriteString(prefix)
		sb.WriteString(snippet)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(prefix)+caretOffset(snippet, col)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// locate converts a byte offset into a 1-indexed line and column. Column is
// a rune count, not a byte count, since multi-byte identifiers are legal
// source text.
func locate(source string, pos int) (line, col int) {
	line, col = 1, 1
	if pos > len(source) {
		pos = len(source)
	}
	for _, r := range source[:pos] {
		if r == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

func sourceLine(source string, lineNum int) string {
	if source == "" {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// caretOffset measures the display-column offset of the rune at the given
// 1-indexed column within line, widening East-Asian wide/fullwidth runes to
// two columns so the caret still lands under the right character.
func caretOffset(line string, col int) int {
	offset := 0
	runeIndex := 1
	for _, r := range line {
		if runeIndex >= col {
			break
		}
		offset += runeWidth(r)
		runeIndex++
	}
	return offset
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
