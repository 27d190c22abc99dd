package diag

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// asJSON is the wire shape one diagnostic takes inside an expose report.
type asJSON struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Pos     int    `json:"pos"`
	File    string `json:"file,omitempty"`
}

func (e *Error) asJSON() asJSON {
	return asJSON{Kind: e.Kind.String(), Message: e.Message, Pos: int(e.Pos), File: e.File}
}

// AppendToReport patches a single diagnostic onto the "diagnostics" array of
// an existing report document without re-marshaling the rest of the tree,
// the way a long-running `expose` session accumulates diagnostics as they
// are produced.
func AppendToReport(report []byte, e *Error) ([]byte, error) {
	path := fmt.Sprintf("diagnostics.-1")
	patched, err := sjson.SetBytes(report, path, e.asJSON())
	if err != nil {
		return nil, fmt.Errorf("patching diagnostic into report: %w", err)
	}
	return patched, nil
}

// CountInReport reports how many diagnostics a report document currently
// holds, read directly off the raw bytes rather than unmarshaling the
// document into a Go struct.
func CountInReport(report []byte) int {
	result := gjson.GetBytes(report, "diagnostics.#")
	return int(result.Int())
}
