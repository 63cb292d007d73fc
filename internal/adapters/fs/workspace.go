package fs

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/fixgen/internal/core/domain"
	"go.trai.ch/fixgen/internal/core/ports"
	"go.trai.ch/zerr"
)

// Workspace implements ports.Workspace over a real project directory.
//
// WriteDigest stages the full tree in a temporary directory inside the
// workspace root before any destination path is touched, so a failure
// while producing content leaves the workspace untouched. The commit
// itself renames file by file; each rename is atomic, but a rename
// failure mid-commit leaves the files renamed so far in place.
type Workspace struct {
	root  string
	store ports.ContentStore
}

// NewWorkspace creates a Workspace rooted at the given directory.
func NewWorkspace(root string, store ports.ContentStore) *Workspace {
	return &Workspace{root: filepath.Clean(root), store: store}
}

// Root returns the workspace root directory.
func (w *Workspace) Root() string { return w.root }

// WriteDigest materializes every file of the digest into the workspace.
func (w *Workspace) WriteDigest(ctx context.Context, d domain.Digest) error {
	files, err := w.store.Contents(ctx, d)
	if err != nil {
		return zerr.Wrap(err, "failed to read digest for workspace write")
	}
	if len(files) == 0 {
		return nil
	}
	for _, f := range files {
		if !filepath.IsLocal(filepath.FromSlash(f.Path)) {
			return zerr.With(zerr.New("digest path escapes the workspace root"), "path", f.Path)
		}
	}

	stage, err := os.MkdirTemp(w.root, ".fixgen-stage-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create staging directory")
	}
	defer os.RemoveAll(stage) //nolint:errcheck // Best effort cleanup

	// Stage everything first; nothing in the workspace proper is touched
	// until every file has been written successfully.
	for _, f := range files {
		if err := writeFile(filepath.Join(stage, f.Path), f); err != nil {
			return err
		}
	}

	for _, f := range files {
		dest := filepath.Join(w.root, f.Path)
		if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", dest)
		}
		if err := os.Rename(filepath.Join(stage, f.Path), dest); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to commit staged file"), "path", dest)
		}
	}

	return nil
}

func writeFile(path string, f domain.FileContent) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create staging subdirectory"), "path", path)
	}
	mode := os.FileMode(0o644)
	if f.IsExecutable {
		mode = 0o755
	}
	//nolint:gosec // Path is derived from a digest tree under our staging root
	if err := os.WriteFile(path, f.Content, mode); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stage file"), "path", path)
	}
	return nil
}
