// Package cas implements the in-memory content-addressable store the
// pipeline builds its artifact trees in.
package cas

import (
	"context"
	"path"
	"strings"
	"sync"

	"go.trai.ch/fixgen/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ContentStore. It is append-only: digests are
// immutable once created, and storing the same tree twice is a no-op
// that converges to the same hash, so concurrent writers never conflict.
type Store struct {
	mu    sync.RWMutex
	trees map[string]map[string]domain.FileContent
}

// NewStore creates an empty content store.
func NewStore() *Store {
	return &Store{
		trees: make(map[string]map[string]domain.FileContent),
	}
}

// CreateDigest stores a file tree and returns its digest. The tree is
// assembled and validated in full before anything becomes visible, so a
// failure never produces a half-written digest.
func (s *Store) CreateDigest(_ context.Context, files []domain.FileContent) (domain.Digest, error) {
	tree := make(map[string]domain.FileContent, len(files))
	for _, f := range files {
		if err := validateTreePath(f.Path); err != nil {
			return domain.Digest{}, err
		}
		if existing, ok := tree[f.Path]; ok {
			if !sameContent(existing, f) {
				return domain.Digest{}, zerr.With(domain.ErrDigestConflict, "path", f.Path)
			}
			continue
		}
		tree[f.Path] = cloneFile(f)
	}
	return s.put(tree), nil
}

// MergeDigests unions the given trees into one digest. A path declared by
// more than one tree with differing content is a conflict error.
func (s *Store) MergeDigests(ctx context.Context, digests ...domain.Digest) (domain.Digest, error) {
	merged := make(map[string]domain.FileContent)
	for _, d := range digests {
		files, err := s.Contents(ctx, d)
		if err != nil {
			return domain.Digest{}, err
		}
		for _, f := range files {
			if existing, ok := merged[f.Path]; ok {
				if !sameContent(existing, f) {
					return domain.Digest{}, zerr.With(zerr.With(domain.ErrDigestConflict, "path", f.Path), "digest", d.Hash)
				}
				continue
			}
			merged[f.Path] = f
		}
	}
	return s.put(merged), nil
}

// Contents reads back the file tree a digest denotes, sorted by path.
// The zero digest denotes the empty tree.
func (s *Store) Contents(_ context.Context, d domain.Digest) ([]domain.FileContent, error) {
	if d.IsZero() {
		return nil, nil
	}

	s.mu.RLock()
	tree, ok := s.trees[d.Hash]
	s.mu.RUnlock()
	if !ok {
		return nil, zerr.With(domain.ErrUnknownDigest, "digest", d.Hash)
	}

	files := make([]domain.FileContent, 0, len(tree))
	for _, f := range tree {
		files = append(files, cloneFile(f))
	}
	domain.SortFileContents(files)
	return files, nil
}

func (s *Store) put(tree map[string]domain.FileContent) domain.Digest {
	files := make([]domain.FileContent, 0, len(tree))
	for _, f := range tree {
		files = append(files, f)
	}
	domain.SortFileContents(files)

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	hash := domain.HashFileContents(files)

	s.mu.Lock()
	if _, exists := s.trees[hash]; !exists {
		s.trees[hash] = tree
	}
	s.mu.Unlock()

	return domain.Digest{Hash: hash, Files: paths}
}

// validateTreePath rejects paths that would land outside a tree root
// when the digest is materialized. Tree paths are clean, relative,
// slash-separated paths that never climb above their root.
func validateTreePath(p string) error {
	if p == "" {
		return zerr.New("file content with empty path")
	}
	if path.IsAbs(p) || p != path.Clean(p) || p == ".." || strings.HasPrefix(p, "../") {
		return zerr.With(zerr.New("file path escapes the tree root"), "path", p)
	}
	return nil
}

func sameContent(a, b domain.FileContent) bool {
	return a.IsExecutable == b.IsExecutable && string(a.Content) == string(b.Content)
}

func cloneFile(f domain.FileContent) domain.FileContent {
	content := make([]byte, len(f.Content))
	copy(content, f.Content)
	return domain.FileContent{Path: f.Path, Content: content, IsExecutable: f.IsExecutable}
}
