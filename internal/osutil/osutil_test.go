package osutil

import (
	"os"
	"path/filepath"
	"testing"
)

type stubProvider struct {
	dir string
}

func (p stubProvider) UserConfigDir() (string, error) {
	return p.dir, nil
}

func (p stubProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func TestDefaultPathProvider_UserConfigDir(t *testing.T) {
	dir, err := DefaultPathProvider{}.UserConfigDir()
	if err != nil {
		t.Fatalf("UserConfigDir returned error: %v", err)
	}
	if dir == "" {
		t.Error("UserConfigDir returned empty string")
	}
}

func TestDefaultPathProvider_MkdirAll(t *testing.T) {
	testDir := filepath.Join(t.TempDir(), "test", "nested", "dir")

	if err := (DefaultPathProvider{}).MkdirAll(testDir, 0755); err != nil {
		t.Fatalf("MkdirAll returned error: %v", err)
	}

	info, err := os.Stat(testDir)
	if err != nil {
		t.Fatalf("Failed to stat created directory: %v", err)
	}
	if !info.IsDir() {
		t.Error("MkdirAll did not create a directory")
	}
}

func TestSetAndResetProvider(t *testing.T) {
	defer ResetProvider()

	stub := stubProvider{dir: "/stub/config"}
	SetProvider(stub)

	dir, err := Provider.UserConfigDir()
	if err != nil || dir != "/stub/config" {
		t.Errorf("UserConfigDir = %q, %v; expected the stub", dir, err)
	}

	ResetProvider()
	if _, ok := Provider.(DefaultPathProvider); !ok {
		t.Error("ResetProvider did not restore the default provider")
	}
}
