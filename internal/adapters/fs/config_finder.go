package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/fixgen/internal/core/domain"
	"go.trai.ch/fixgen/internal/core/ports"
	"go.trai.ch/zerr"
)

// ConfigFinder implements ports.ConfigFinder by probing the given
// directories for well-known tool config file names.
type ConfigFinder struct {
	root  string
	store ports.ContentStore
}

// NewConfigFinder creates a ConfigFinder rooted at the given directory.
func NewConfigFinder(root string, store ports.ContentStore) *ConfigFinder {
	return &ConfigFinder{root: filepath.Clean(root), store: store}
}

// FindConfigFile returns a digest holding the first config file found.
// Directories are probed in the order given, names in the order given;
// no config file anywhere yields the empty digest.
func (f *ConfigFinder) FindConfigFile(ctx context.Context, dirs []string, names []string) (domain.Digest, error) {
	for _, dir := range dirs {
		for _, name := range names {
			rel := filepath.Join(dir, name)
			//nolint:gosec // Probed paths stay under the configured root
			data, err := os.ReadFile(filepath.Join(f.root, rel))
			if err != nil {
				if errors.Is(err, iofs.ErrNotExist) {
					continue
				}
				return domain.Digest{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", rel)
			}
			return f.store.CreateDigest(ctx, []domain.FileContent{
				{Path: filepath.ToSlash(rel), Content: data},
			})
		}
	}
	return f.store.CreateDigest(ctx, nil)
}
