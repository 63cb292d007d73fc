package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/fixgen/internal/adapters/cas"
	"go.trai.ch/fixgen/internal/adapters/fs"
)

func TestConfigFinder_FindConfigFile(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "src/test"), 0o750); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "src/test/pytest.ini"), []byte("[pytest]\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	store := cas.NewStore()
	finder := fs.NewConfigFinder(root, store)

	d, err := finder.FindConfigFile(context.Background(), []string{"src", "src/test"}, []string{"pytest.ini", "tox.ini"})
	if err != nil {
		t.Fatalf("FindConfigFile failed: %v", err)
	}
	if len(d.Files) != 1 || d.Files[0] != "src/test/pytest.ini" {
		t.Errorf("unexpected digest files: %v", d.Files)
	}
}

func TestConfigFinder_NoConfigYieldsEmptyDigest(t *testing.T) {
	finder := fs.NewConfigFinder(t.TempDir(), cas.NewStore())

	d, err := finder.FindConfigFile(context.Background(), []string{"a", "b"}, []string{"pytest.ini"})
	if err != nil {
		t.Fatalf("FindConfigFile failed: %v", err)
	}
	if len(d.Files) != 0 {
		t.Errorf("expected empty digest, got %v", d.Files)
	}
}
