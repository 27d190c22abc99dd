// Command emberc is the Ember compiler driver: project lifecycle
// (install/remove/clean), analysis and code generation (compile/build/run),
// and structured diagnostic reporting (expose).
package main

import (
	"os"

	"github.com/cwbudde/emberc/cmd/emberc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
