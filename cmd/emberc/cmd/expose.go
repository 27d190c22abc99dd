package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/emberc/internal/diag"
)

var exposeReportFile string

var exposeCmd = &cobra.Command{
	Use:   "expose <project>",
	Short: "Analyze a project and append its diagnostics to a JSON report",
	Long: `Run the same analysis "emberc compile" does and patch every
diagnostic it raises onto the "diagnostics" array of an existing JSON
report document (--report), creating the document if it doesn't exist.

Each diagnostic is patched in individually with tidwall/sjson rather than
re-marshaling the whole report; the patched report is written back once,
after every diagnostic has been appended.`,
	Args: cobra.ExactArgs(1),
	RunE: runExpose,
}

func init() {
	rootCmd.AddCommand(exposeCmd)
	exposeCmd.Flags().StringVarP(&exposeReportFile, "report", "r", "report.json", "path to the JSON report document")
}

func runExpose(_ *cobra.Command, args []string) error {
	projectFile := args[0]

	diags, err := analyzeProject(projectFile)
	if err != nil {
		return err
	}

	report, err := os.ReadFile(exposeReportFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("reading report %s: %w", exposeReportFile, err)
		}
		report = []byte("{}")
	}

	for _, d := range diags {
		report, err = diag.AppendToReport(report, d)
		if err != nil {
			return err
		}
	}

	if err := os.WriteFile(exposeReportFile, report, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", exposeReportFile, err)
	}

	fmt.Printf("%d diagnostic(s) in %s\n", diag.CountInReport(report), exposeReportFile)
	return nil
}
