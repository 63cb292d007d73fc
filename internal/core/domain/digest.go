package domain

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Digest identifies an immutable tree of files by a content hash.
// Two digests with the same hash denote identical content.
type Digest struct {
	Hash string
	// Files is the sorted listing of paths the tree declares.
	Files []string
}

// IsZero reports whether the digest is the zero value, which denotes the
// empty tree.
func (d Digest) IsZero() bool {
	return d.Hash == "" && len(d.Files) == 0
}

// FileContent is a single file inside a digest tree.
type FileContent struct {
	Path         string
	Content      []byte
	IsExecutable bool
}

// HashFileContents computes the content hash of a file tree. The input
// must already be sorted by path; the hash covers path, executable bit,
// and content of every file with NUL framing.
func HashFileContents(files []FileContent) string {
	h := xxhash.New()
	for _, f := range files {
		_, _ = h.WriteString(f.Path)
		_, _ = h.Write([]byte{0})
		if f.IsExecutable {
			_, _ = h.Write([]byte{1})
		} else {
			_, _ = h.Write([]byte{0})
		}
		_, _ = h.Write(f.Content)
		_, _ = h.Write([]byte{0})
	}
	return hexHash(h.Sum64())
}

// SortFileContents orders files by path in place.
func SortFileContents(files []FileContent) {
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
}

func hexHash(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
