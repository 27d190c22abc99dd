package match

import (
	"fmt"
	"strings"

	"github.com/cwbudde/emberc/internal/convert"
)

// Candidate is one function overload or type constructor being considered
// for a call. External marks an unmangled (extern "C"-like) declaration,
// which is allowed to tie with other externals without being an ambiguity
// error.
type Candidate struct {
	Name       string
	Parameters []Parameter
	External   bool
}

// Outcome pairs a winning Candidate with its Result.
type Outcome struct {
	Candidate Candidate
	Result    Result
}

// checked pairs one candidate with its Match outcome while Call ranks them.
type checked struct {
	candidate Candidate
	result    Result
}

// Call evaluates Match for every candidate, discards failures, and picks
// the candidate with the minimum implicit-conversion count (§4.5). A tie is
// an error unless every tied candidate is External, in which case the first
// is selected (externals may legally repeat a signature).
func Call(e convert.Emitter, candidates []Candidate, input Input) (Outcome, error) {
	if len(candidates) == 0 {
		return Outcome{}, fmt.Errorf("no candidates provided")
	}

	checks := make([]checked, len(candidates))
	for i, c := range candidates {
		checks[i] = checked{candidate: c, result: Match(e, c.Parameters, input)}
	}

	best := -1
	var picks []checked
	for _, c := range checks {
		if c.result.Failed != "" {
			continue
		}
		switch {
		case best == -1 || c.result.Implicit < best:
			best = c.result.Implicit
			picks = []checked{c}
		case c.result.Implicit == best:
			picks = append(picks, c)
		}
	}

	if len(picks) == 0 {
		var problems []string
		for _, c := range checks {
			problems = append(problems, fmt.Sprintf("%s: %s", c.candidate.Name, c.result.Failed))
		}
		return Outcome{}, fmt.Errorf("no candidate matches the given arguments:\n%s", strings.Join(problems, "\n"))
	}

	if len(picks) > 1 && !allExternal(picks) {
		names := make([]string, len(picks))
		for i, p := range picks {
			names[i] = p.candidate.Name
		}
		return Outcome{}, fmt.Errorf("multiple candidates match the most accurate conversion level %d: %s",
			best, strings.Join(names, ", "))
	}

	return Outcome{Candidate: picks[0].candidate, Result: picks[0].result}, nil
}

func allExternal(picks []checked) bool {
	for _, p := range picks {
		if !p.candidate.External {
			return false
		}
	}
	return true
}
