package ports

import (
	"context"

	"go.trai.ch/fixgen/internal/core/domain"
)

// Workspace is the real, mutable project directory final outputs are
// written to.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// WriteDigest materializes every file of the digest into the
	// workspace. Content production is all-or-nothing: no destination
	// path is touched until every file has been produced. The final
	// commit is atomic per file, not across the whole set. Digest paths
	// that resolve outside the workspace root are rejected.
	WriteDigest(ctx context.Context, d domain.Digest) error
}
