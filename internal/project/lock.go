package project

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/cwbudde/emberc/internal/diag"
)

// PackageLock records, for every resolved package name, the list of files
// that installation produced — so a later `remove` knows exactly what to
// delete without re-resolving the package.
type PackageLock struct {
	PackagesInstalled map[string][]string `yaml:"packages-installed,omitempty"`
}

// PackageLockFileName is the conventional file name for a PackageLock
// within a project's packages directory.
const PackageLockFileName = "package-lock.yaml"

// LoadPackageLock reads the package lock at dir/package-lock.yaml. A
// missing file is not an error: it returns an empty lock, matching a
// project that has never installed a package.
func LoadPackageLock(dir string) (*PackageLock, error) {
	path := filepath.Join(dir, PackageLockFileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &PackageLock{PackagesInstalled: map[string][]string{}}, nil
	}
	if err != nil {
		return nil, diag.IOf(0, "reading package lock %s: %v", path, err)
	}
	var lock PackageLock
	if err := yaml.Unmarshal(data, &lock); err != nil {
		return nil, diag.IOf(0, "parsing package lock %s: %v", path, err)
	}
	if lock.PackagesInstalled == nil {
		lock.PackagesInstalled = map[string][]string{}
	}
	return &lock, nil
}

// Save writes l to dir/package-lock.yaml, creating dir if necessary.
func (l *PackageLock) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return diag.IOf(0, "creating %s: %v", dir, err)
	}
	data, err := yaml.Marshal(l)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, PackageLockFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return diag.IOf(0, "writing package lock %s: %v", path, err)
	}
	return nil
}

// BuildLock records key/value parameters that must stay stable across an
// incremental build (a resolved platform triple, an allocator override)
// so a later build can detect a parameter change and force a clean
// rebuild rather than silently mixing object files built under different
// assumptions.
type BuildLock struct {
	Parameters map[string]string `yaml:"parameters,omitempty"`
}

// BuildLockFileName is the conventional file name for a BuildLock within
// a project's output directory.
const BuildLockFileName = "build-lock.yaml"

// LoadBuildLock reads the build lock at dir/build-lock.yaml. A missing
// file returns an empty lock, matching a project's first build.
func LoadBuildLock(dir string) (*BuildLock, error) {
	path := filepath.Join(dir, BuildLockFileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &BuildLock{Parameters: map[string]string{}}, nil
	}
	if err != nil {
		return nil, diag.IOf(0, "reading build lock %s: %v", path, err)
	}
	var lock BuildLock
	if err := yaml.Unmarshal(data, &lock); err != nil {
		return nil, diag.IOf(0, "parsing build lock %s: %v", path, err)
	}
	if lock.Parameters == nil {
		lock.Parameters = map[string]string{}
	}
	return &lock, nil
}

// Save writes l to dir/build-lock.yaml, creating dir if necessary.
func (l *BuildLock) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return diag.IOf(0, "creating %s: %v", dir, err)
	}
	data, err := yaml.Marshal(l)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, BuildLockFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return diag.IOf(0, "writing build lock %s: %v", path, err)
	}
	return nil
}

// Changed reports the parameter keys whose value in other differs from
// (or is absent from) l, the signal a build uses to decide whether it
// must discard its incremental state.
func (l *BuildLock) Changed(other *BuildLock) []string {
	var changed []string
	for k, v := range other.Parameters {
		if l.Parameters[k] != v {
			changed = append(changed, k)
		}
	}
	return changed
}
