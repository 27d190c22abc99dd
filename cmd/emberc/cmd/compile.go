package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var compileProjectFile string

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Resolve a project's sources and check it for semantic errors",
	Long: `Load a project file, resolve every source file's transitive import
closure, and run the global symbol builder over the result, printing any
diagnostic it raises.

This is the analysis half of the pipeline; "emberc build" runs the same
analysis and can print a mock backend's instruction log, but no code
generation backend ships in this build.`,
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVarP(&compileProjectFile, "project", "p", "project.yaml", "path to the project file")
}

func runCompile(_ *cobra.Command, _ []string) error {
	return compileProject(compileProjectFile)
}

// compileProject runs the analysis pipeline and prints its diagnostics,
// returning an error if any diagnostic was produced.
func compileProject(projectFile string) error {
	diags, err := analyzeProject(projectFile)
	if err != nil {
		return err
	}
	for _, d := range diags {
		fmt.Fprint(os.Stderr, d.Format(true))
	}
	if len(diags) > 0 {
		return fmt.Errorf("compilation failed with %d diagnostic(s)", len(diags))
	}
	if verbose {
		fmt.Println("compiled cleanly")
	}
	return nil
}
