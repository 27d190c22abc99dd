package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/emberc/internal/project"
)

func writeProjectFile(t *testing.T, dir string, p *project.ProjectFile) string {
	t.Helper()
	path := filepath.Join(dir, "project.yaml")
	if err := p.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return path
}

func TestRunInstallRecordsFileImportsInPackageLock(t *testing.T) {
	dir := t.TempDir()
	p := &project.ProjectFile{
		Name: "widget",
		Import: []project.Import{
			{Kind: project.ImportFile, Path: "vendor/zeta.ember"},
			{Kind: project.ImportFile, Path: "vendor/alpha.ember"},
		},
	}
	path := writeProjectFile(t, dir, p)

	installProjectFile = path
	t.Cleanup(func() { installProjectFile = "" })

	if err := runInstall(nil, nil); err != nil {
		t.Fatalf("runInstall: %v", err)
	}

	lock, err := project.LoadPackageLock(filepath.Join(dir, p.PackagesDir()))
	if err != nil {
		t.Fatalf("LoadPackageLock: %v", err)
	}
	if len(lock.PackagesInstalled) != 2 {
		t.Fatalf("PackagesInstalled = %v, want 2 entries", lock.PackagesInstalled)
	}
	if _, ok := lock.PackagesInstalled["zeta.ember"]; !ok {
		t.Error("expected zeta.ember to be recorded")
	}
}

func TestRunRemoveDeletesFilesAndLockEntry(t *testing.T) {
	dir := t.TempDir()
	p := &project.ProjectFile{Name: "widget"}
	path := writeProjectFile(t, dir, p)

	packagesDir := filepath.Join(dir, p.PackagesDir())
	installed := filepath.Join(packagesDir, "leftover.txt")
	if err := os.MkdirAll(packagesDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(installed, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	lock := &project.PackageLock{PackagesInstalled: map[string][]string{"leftover": {installed}}}
	if err := lock.Save(packagesDir); err != nil {
		t.Fatal(err)
	}

	removeProjectFile = path
	t.Cleanup(func() { removeProjectFile = "" })

	if err := runRemove(nil, []string{"leftover"}); err != nil {
		t.Fatalf("runRemove: %v", err)
	}

	if _, err := os.Stat(installed); !os.IsNotExist(err) {
		t.Error("expected the installed file to be removed")
	}

	reloaded, err := project.LoadPackageLock(packagesDir)
	if err != nil {
		t.Fatalf("LoadPackageLock: %v", err)
	}
	if _, ok := reloaded.PackagesInstalled["leftover"]; ok {
		t.Error("expected the package-lock entry to be dropped")
	}
}

func TestRunRemoveUnknownPackageIsError(t *testing.T) {
	dir := t.TempDir()
	path := writeProjectFile(t, dir, &project.ProjectFile{Name: "widget"})

	removeProjectFile = path
	t.Cleanup(func() { removeProjectFile = "" })

	if err := runRemove(nil, []string{"nope"}); err == nil {
		t.Fatal("expected an error removing a package that was never installed")
	}
}

func TestRunCleanRemovesOutputDirectory(t *testing.T) {
	dir := t.TempDir()
	p := &project.ProjectFile{Name: "widget", OutputDirectory: "out"}
	path := writeProjectFile(t, dir, p)

	outDir := filepath.Join(dir, "out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatal(err)
	}

	cleanProjectFile = path
	t.Cleanup(func() { cleanProjectFile = "" })

	if err := runClean(nil, nil); err != nil {
		t.Fatalf("runClean: %v", err)
	}
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Error("expected the output directory to be removed")
	}
}

func TestAnalyzeProjectWithoutFrontEndReportsOneDiagnostic(t *testing.T) {
	dir := t.TempDir()
	path := writeProjectFile(t, dir, &project.ProjectFile{Name: "widget"})

	diags, err := analyzeProject(path)
	if err != nil {
		t.Fatalf("analyzeProject: %v", err)
	}
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1 (no front end registered)", len(diags))
	}
}
