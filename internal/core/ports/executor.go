package ports

import (
	"context"

	"go.trai.ch/fixgen/internal/core/domain"
)

// ProcessExecutor runs a sandbox as an isolated OS process: the input
// digest is materialized into a private execution root, the process runs
// there, and the declared output files are re-captured into a digest.
//
// A nonzero exit is reported via ExecResult, not as an error; errors are
// reserved for failures to execute at all.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type ProcessExecutor interface {
	Execute(ctx context.Context, spec domain.ProcessSpec) (*domain.ExecResult, error)
}
