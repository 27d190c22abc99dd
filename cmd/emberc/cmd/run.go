package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var runProjectFile string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build and execute a project's executable target",
	Long: `Run a project: this compiles and builds the target (see "emberc
build"), then executes the resulting binary.

Execution needs a linked native binary, which this command does not
produce by itself since no backend.Builder implementation ships in this
build (internal/backend/mock only records IR for tests). A successful
"run" therefore still only takes a project through analysis and reports
that the remaining build/link/execute steps require a concrete backend.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runProjectFile, "project", "p", "project.yaml", "path to the project file")
}

func runRun(_ *cobra.Command, _ []string) error {
	if err := compileProject(runProjectFile); err != nil {
		return err
	}
	return fmt.Errorf("cannot run: no backend.Builder implementation is configured to link and execute the target")
}
