package ports

import (
	"context"

	"go.trai.ch/fixgen/internal/core/domain"
)

// LockfileResolver turns a set of artifact coordinate requirements into a
// serialized, pinned lockfile. Implementations must be deterministic for
// a fixed requirement set and must collapse concurrent resolutions of the
// same set into a single flight.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type LockfileResolver interface {
	Resolve(ctx context.Context, requirements []domain.Coordinate) ([]byte, error)
}
