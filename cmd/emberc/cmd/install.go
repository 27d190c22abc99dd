package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"

	"github.com/cwbudde/emberc/internal/project"
)

var installProjectFile string

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Resolve and fetch a project's imports into its packages directory",
	Long: `Read a project file's import list and materialize each entry under
its packages directory: a file import is already local and is recorded as
is; a url import is fetched with git; a cmake import is recorded for an
external CMake build this command does not itself invoke.

The resulting file manifest is written to package-lock.yaml so a later
"emberc remove" knows exactly what to delete.`,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
	installCmd.Flags().StringVarP(&installProjectFile, "project", "p", "project.yaml", "path to the project file")
}

func runInstall(_ *cobra.Command, _ []string) error {
	proj, err := project.LoadProjectFile(installProjectFile)
	if err != nil {
		return err
	}

	root := filepath.Dir(installProjectFile)
	packagesDir := filepath.Join(root, proj.PackagesDir())
	if err := os.MkdirAll(packagesDir, 0o755); err != nil {
		return fmt.Errorf("creating packages directory %s: %w", packagesDir, err)
	}

	lock, err := project.LoadPackageLock(packagesDir)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(proj.Import))
	for _, imp := range proj.Import {
		name, files, err := installImport(packagesDir, imp)
		if err != nil {
			return fmt.Errorf("installing %s: %w", imp.Path, err)
		}
		lock.PackagesInstalled[name] = files
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool { return natural.Less(names[i], names[j]) })
	for _, name := range names {
		if verbose {
			fmt.Printf("installed %s (%d file(s))\n", name, len(lock.PackagesInstalled[name]))
		}
	}

	return lock.Save(packagesDir)
}

// installImport materializes one import entry and returns its resolved
// package name plus the files that now exist on disk under it.
func installImport(packagesDir string, imp project.Import) (string, []string, error) {
	name := filepath.Base(imp.Path)

	switch imp.Kind {
	case project.ImportFile:
		return name, []string{imp.Path}, nil

	case project.ImportURL:
		dest := filepath.Join(packagesDir, name)
		if err := os.RemoveAll(dest); err != nil {
			return "", nil, err
		}
		cmd := exec.Command("git", "clone", imp.Path, dest)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return "", nil, fmt.Errorf("git clone %s: %w", imp.Path, err)
		}
		return name, []string{dest}, nil

	case project.ImportCMake:
		// Building a CMake package is out of this compiler's scope: it
		// links against native libraries (internal/project.LibraryDocument)
		// rather than driving their build systems itself.
		return name, nil, nil

	default:
		return "", nil, fmt.Errorf("unknown import kind %q", imp.Kind)
	}
}
