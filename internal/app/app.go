// Package app implements the application layer for fixgen.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/fixgen/internal/core/domain"
	"go.trai.ch/fixgen/internal/core/ports"
	"go.trai.ch/zerr"
)

// Discoverer is the discovery stage of the pipeline.
type Discoverer interface {
	Discover(ctx context.Context, targets []domain.Target) (*domain.CollectedFixtureConfigs, error)
}

// Gatherer is the resolution stage of the pipeline.
type Gatherer interface {
	Gather(ctx context.Context, configs *domain.CollectedFixtureConfigs) (*domain.RenderedFixtures, error)
}

// Renderer is the output stage of the pipeline.
type Renderer interface {
	Render(ctx context.Context, fixtures *domain.RenderedFixtures) error
}

// App drives the generate-test-lockfile-fixtures goal across its three
// stages: discover, resolve, render.
type App struct {
	graph      ports.TargetGraph
	discoverer Discoverer
	gatherer   Gatherer
	renderer   Renderer
	tracer     ports.Tracer
	logger     ports.Logger
}

// New creates a new App instance.
func New(
	graph ports.TargetGraph,
	discoverer Discoverer,
	gatherer Gatherer,
	renderer Renderer,
	tracer ports.Tracer,
	logger ports.Logger,
) *App {
	return &App{
		graph:      graph,
		discoverer: discoverer,
		gatherer:   gatherer,
		renderer:   renderer,
		tracer:     tracer,
		logger:     logger,
	}
}

// Generate runs the full pipeline for the given target specs. An empty
// spec list is a successful run that writes nothing.
func (a *App) Generate(ctx context.Context, targetSpecs []string) error {
	ctx, span := a.tracer.Start(ctx, domain.GoalName)
	defer span.End()

	if err := a.generate(ctx, span, targetSpecs); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (a *App) generate(ctx context.Context, span ports.Span, targetSpecs []string) error {
	targets, err := a.graph.Targets(ctx, targetSpecs)
	if err != nil {
		return zerr.Wrap(err, "failed to expand target specs")
	}
	span.SetAttribute("targets", len(targets))

	configs, err := a.discover(ctx, targets)
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("discovered %d fixture configuration(s)", configs.Len()))

	rendered, err := a.gather(ctx, configs)
	if err != nil {
		return err
	}

	// The full write set is announced before anything lands on disk.
	paths := make([]string, 0, rendered.Len())
	for fixture := range rendered.All() {
		paths = append(paths, fixture.Path)
	}
	a.tracer.EmitPlan(ctx, paths)

	return a.render(ctx, rendered)
}

func (a *App) discover(ctx context.Context, targets []domain.Target) (*domain.CollectedFixtureConfigs, error) {
	ctx, span := a.tracer.Start(ctx, "discover")
	defer span.End()

	configs, err := a.discoverer.Discover(ctx, targets)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "discovery stage failed")
	}
	return configs, nil
}

func (a *App) gather(ctx context.Context, configs *domain.CollectedFixtureConfigs) (*domain.RenderedFixtures, error) {
	ctx, span := a.tracer.Start(ctx, "resolve")
	defer span.End()

	rendered, err := a.gatherer.Gather(ctx, configs)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "resolution stage failed")
	}
	return rendered, nil
}

func (a *App) render(ctx context.Context, fixtures *domain.RenderedFixtures) error {
	ctx, span := a.tracer.Start(ctx, "render")
	defer span.End()

	if err := a.renderer.Render(ctx, fixtures); err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, "render stage failed")
	}
	return nil
}
