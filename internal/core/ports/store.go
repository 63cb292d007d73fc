package ports

import (
	"context"

	"go.trai.ch/fixgen/internal/core/domain"
)

// ContentStore is the immutable, hash-addressed blob/tree storage the
// pipeline builds its artifacts in. It is append-only: two writers
// producing the same content converge to the same digest.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ContentStore interface {
	// CreateDigest stores a file tree and returns its digest. The call is
	// all-or-nothing: a failure never leaves a partial tree behind.
	CreateDigest(ctx context.Context, files []domain.FileContent) (domain.Digest, error)

	// MergeDigests unions the given trees into one digest. Paths declared
	// by more than one tree must carry identical content; differing
	// content is a conflict error.
	MergeDigests(ctx context.Context, digests ...domain.Digest) (domain.Digest, error)

	// Contents reads back the full file tree a digest denotes, sorted by
	// path.
	Contents(ctx context.Context, d domain.Digest) ([]domain.FileContent, error)
}
