package fixtures

import (
	"bytes"
	"context"
	"fmt"

	"go.trai.ch/fixgen/internal/build"
	"go.trai.ch/fixgen/internal/core/domain"
	"go.trai.ch/fixgen/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Gatherer runs the resolution stage: every discovered fixture
// configuration is resolved to a pinned lockfile and stamped with a
// metadata header.
type Gatherer struct {
	resolver ports.LockfileResolver
	settings domain.Settings
}

// NewGatherer creates a Gatherer.
func NewGatherer(resolver ports.LockfileResolver, settings domain.Settings) *Gatherer {
	return &Gatherer{resolver: resolver, settings: settings}
}

// Gather resolves all configurations concurrently, bounded by the
// configured parallelism. Results keep the input order regardless of
// completion order. Two distinct configurations mapping to the same
// output path with differing content are a fatal collision.
func (g *Gatherer) Gather(ctx context.Context, configs *domain.CollectedFixtureConfigs) (*domain.RenderedFixtures, error) {
	items := configs.Items()
	results := make([]domain.RenderedFixture, len(items))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.settings.EffectiveParallelism())
	for i, config := range items {
		eg.Go(func() error {
			rendered, err := g.render(egCtx, config)
			if err != nil {
				return zerr.With(err, "test_file", config.TestFilePath)
			}
			results[i] = rendered
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	fixtures := domain.NewDeduplicatedCollection[domain.RenderedFixture]()
	byPath := make(map[string][]byte, len(results))
	for _, fixture := range results {
		if prev, ok := byPath[fixture.Path]; ok && !bytes.Equal(prev, fixture.Content) {
			return nil, zerr.With(domain.ErrFixturePathCollision, "path", fixture.Path)
		}
		byPath[fixture.Path] = fixture.Content
		fixtures.Add(fixture)
	}
	return fixtures, nil
}

func (g *Gatherer) render(ctx context.Context, config domain.FixtureConfig) (domain.RenderedFixture, error) {
	body, err := g.resolver.Resolve(ctx, config.Definition.Requirements)
	if err != nil {
		return domain.RenderedFixture{}, err
	}

	meta := domain.NewLockfileMetadata(config.Definition.Requirements)
	content, err := meta.AddHeader(body, regenerateCommand(), g.settings.HeaderDelimiter)
	if err != nil {
		return domain.RenderedFixture{}, err
	}

	return domain.RenderedFixture{Content: content, Path: config.OutputPath()}, nil
}

// regenerateCommand is the invocation stamped into every lockfile header.
func regenerateCommand() string {
	return fmt.Sprintf("%s %s ::", build.BinName, domain.GoalName)
}
