// Package match implements parameter binding and overload/call resolution
// (§4.5): binding a call's named and positional arguments against a
// candidate's parameter list, then picking the candidate with the minimum
// implicit-conversion count across a set of candidates.
package match

import (
	"fmt"

	"github.com/cwbudde/emberc/internal/convert"
	"github.com/cwbudde/emberc/internal/types"
)

// Arg is one call-site argument; Name is empty for a positional argument.
type Arg struct {
	Name  string
	Value convert.Value
}

// Parameter is one formal parameter slot of a candidate being matched against.
type Parameter struct {
	Name string
	Type types.Type
}

// Input is the MatchInput: the full ordered argument list for one call site.
type Input struct {
	Args []Arg
}

// Result is the outcome of binding one candidate's parameters against an
// Input. Failed is non-empty exactly when binding did not succeed.
type Result struct {
	Bound    []convert.Value
	Implicit int
	Failed   string
}

// Match binds input's arguments to parameters by name then by position, per
// §4.5: (1) assign named parameters to their named formal, (2) fill
// remaining formals left-to-right with remaining positionals, (3) for each
// bound pair, convert.Convert must succeed; a non-identity conversion
// increments the implicit count.
func Match(e convert.Emitter, parameters []Parameter, input Input) Result {
	if len(parameters) != len(input.Args) {
		return Result{Failed: fmt.Sprintf("expected %d parameters but got %d", len(parameters), len(input.Args))}
	}

	bound := make([]*convert.Value, len(parameters))
	implicit := 0
	taken := make([]bool, len(input.Args))

	tryBind := func(argIndex, paramIndex int) string {
		param := parameters[paramIndex]
		arg := input.Args[argIndex]

		if bound[paramIndex] != nil {
			return fmt.Sprintf("parameter at index %d with name %q is passed twice", paramIndex, param.Name)
		}

		if !arg.Value.Is(convert.Temporary) {
			nonRegularRef := false
			if ref, ok := param.Type.(*types.ReferenceType); ok && ref.Kind_ != types.Regular {
				nonRegularRef = true
			}
			variableArray := false
			if arr, ok := param.Type.(*types.ArrayType); ok && arr.Kind_ == types.VariableSize {
				variableArray = true
			}
			if nonRegularRef || variableArray {
				return fmt.Sprintf("passing non-temporary of type %s is prohibited", param.Type)
			}
		}

		converted, ok := convert.Convert(e, arg.Value, param.Type, false)
		if !ok {
			return fmt.Sprintf("cannot convert argument %d of type %s to parameter type %s",
				argIndex, arg.Value.Type, param.Type)
		}
		if !arg.Value.Type.Equals(param.Type) {
			implicit++
		}

		taken[argIndex] = true
		bound[paramIndex] = &converted
		return ""
	}

	for i, arg := range input.Args {
		if arg.Name == "" {
			continue
		}
		paramIndex := indexOfParam(parameters, arg.Name)
		if paramIndex < 0 {
			return Result{Failed: fmt.Sprintf("expected parameter named %q, but none found", arg.Name)}
		}
		if msg := tryBind(i, paramIndex); msg != "" {
			return Result{Failed: msg}
		}
	}

	argIndex, paramIndex := 0, 0
	for argIndex < len(taken) && paramIndex < len(bound) {
		for argIndex < len(taken) && taken[argIndex] {
			argIndex++
		}
		for paramIndex < len(bound) && bound[paramIndex] != nil {
			paramIndex++
		}
		if argIndex >= len(taken) || paramIndex >= len(bound) {
			break
		}
		if msg := tryBind(argIndex, paramIndex); msg != "" {
			return Result{Failed: msg}
		}
	}

	values := make([]convert.Value, len(bound))
	for i, b := range bound {
		if b == nil {
			return Result{Failed: fmt.Sprintf("parameter at index %d left unbound", i)}
		}
		values[i] = *b
	}

	return Result{Bound: values, Implicit: implicit}
}

func indexOfParam(parameters []Parameter, name string) int {
	for i, p := range parameters {
		if p.Name == name {
			return i
		}
	}
	return -1
}
