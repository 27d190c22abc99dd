package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cwbudde/emberc/internal/project"
)

var removeProjectFile string

var removeCmd = &cobra.Command{
	Use:   "remove <package>",
	Short: "Remove a previously installed package",
	Long: `Delete every file package-lock.yaml recorded for the named package
and drop its entry from the lock, so a later build no longer sees it.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().StringVarP(&removeProjectFile, "project", "p", "project.yaml", "path to the project file")
}

func runRemove(_ *cobra.Command, args []string) error {
	name := args[0]

	proj, err := project.LoadProjectFile(removeProjectFile)
	if err != nil {
		return err
	}

	root := filepath.Dir(removeProjectFile)
	packagesDir := filepath.Join(root, proj.PackagesDir())

	lock, err := project.LoadPackageLock(packagesDir)
	if err != nil {
		return err
	}

	files, ok := lock.PackagesInstalled[name]
	if !ok {
		return fmt.Errorf("package %q is not installed", name)
	}

	for _, f := range files {
		if err := os.RemoveAll(f); err != nil {
			return fmt.Errorf("removing %s: %w", f, err)
		}
	}
	delete(lock.PackagesInstalled, name)

	if verbose {
		fmt.Printf("removed %s (%d file(s))\n", name, len(files))
	}

	return lock.Save(packagesDir)
}
