package ports

import (
	"context"

	"go.trai.ch/fixgen/internal/core/domain"
)

// SandboxBuilder constructs isolated, dependency-complete executable
// bundles from requirement specs and an interpreter constraint.
//
//go:generate go run go.uber.org/mock/mockgen -source=sandbox.go -destination=mocks/mock_sandbox.go -package=mocks
type SandboxBuilder interface {
	BuildSandbox(ctx context.Context, req domain.SandboxRequest) (domain.Sandbox, error)
}
