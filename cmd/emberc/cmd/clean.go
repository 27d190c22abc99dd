package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cwbudde/emberc/internal/project"
)

var cleanProjectFile string

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove a project's output directory",
	RunE:  runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().StringVarP(&cleanProjectFile, "project", "p", "project.yaml", "path to the project file")
}

func runClean(_ *cobra.Command, _ []string) error {
	proj, err := project.LoadProjectFile(cleanProjectFile)
	if err != nil {
		return err
	}

	root := filepath.Dir(cleanProjectFile)
	outputDir := filepath.Join(root, proj.OutputDir())

	if err := os.RemoveAll(outputDir); err != nil {
		return fmt.Errorf("cleaning %s: %w", outputDir, err)
	}

	if verbose {
		fmt.Printf("cleaned %s\n", outputDir)
	}
	return nil
}
