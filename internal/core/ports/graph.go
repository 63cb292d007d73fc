package ports

import (
	"context"

	"go.trai.ch/fixgen/internal/core/domain"
)

// TargetGraph is the external build-graph collaborator: it expands target
// selection specs into targets and targets into their full transitive
// dependency closure.
//
//go:generate go run go.uber.org/mock/mockgen -source=graph.go -destination=mocks/mock_graph.go -package=mocks
type TargetGraph interface {
	// Targets expands CLI target-selection specs. An empty spec list
	// yields an empty target list, not an error.
	Targets(ctx context.Context, specs []string) ([]domain.Target, error)

	// TransitiveClosure returns the given targets plus everything they
	// depend on, deduplicated, in deterministic order.
	TransitiveClosure(ctx context.Context, targets []domain.Target) ([]domain.Target, error)
}

// SourcePreparer materializes target sources into a content digest ready
// for sandbox execution.
type SourcePreparer interface {
	// PrepareSources builds the source tree for the given targets.
	// includeResources additionally pulls in non-code resource files.
	PrepareSources(ctx context.Context, targets []domain.Target, includeResources bool) (*domain.PreparedSources, error)
}

// ConfigFinder locates a tool configuration file in the given directories.
type ConfigFinder interface {
	// FindConfigFile returns a digest holding the first config file found,
	// or the empty digest when none of the names exist in any directory.
	FindConfigFile(ctx context.Context, dirs []string, names []string) (domain.Digest, error)
}
