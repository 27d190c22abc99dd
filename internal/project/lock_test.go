package project

import (
	"path/filepath"
	"testing"
)

func TestPackageLockMissingFileReturnsEmptyLock(t *testing.T) {
	lock, err := LoadPackageLock(t.TempDir())
	if err != nil {
		t.Fatalf("LoadPackageLock: %v", err)
	}
	if len(lock.PackagesInstalled) != 0 {
		t.Fatalf("got %v, want an empty lock", lock.PackagesInstalled)
	}
}

func TestPackageLockSaveThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	lock := &PackageLock{PackagesInstalled: map[string][]string{
		"json-utils": {"json-utils/project.yaml", "json-utils/src/parse.ember"},
	}}
	if err := lock.Save(dir); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadPackageLock(dir)
	if err != nil {
		t.Fatalf("LoadPackageLock: %v", err)
	}
	files := loaded.PackagesInstalled["json-utils"]
	if len(files) != 2 {
		t.Fatalf("got %v, want 2 files", files)
	}
	if _, err := filepath.Rel(dir, filepath.Join(dir, PackageLockFileName)); err != nil {
		t.Fatalf("unexpected path error: %v", err)
	}
}

func TestBuildLockChangedReportsDivergentKeys(t *testing.T) {
	previous := &BuildLock{Parameters: map[string]string{
		"triple": "x86_64-linux-gnu",
		"malloc": "malloc",
	}}
	current := &BuildLock{Parameters: map[string]string{
		"triple": "aarch64-linux-gnu",
		"malloc": "malloc",
		"free":   "free",
	}}

	changed := previous.Changed(current)
	if len(changed) != 2 {
		t.Fatalf("got %v, want 2 changed keys (triple, free)", changed)
	}
}

func TestBuildLockMissingFileReturnsEmptyLock(t *testing.T) {
	lock, err := LoadBuildLock(t.TempDir())
	if err != nil {
		t.Fatalf("LoadBuildLock: %v", err)
	}
	if len(lock.Parameters) != 0 {
		t.Fatalf("got %v, want an empty lock", lock.Parameters)
	}
}
