package fixtures_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fixgen/internal/core/domain"
	"go.trai.ch/fixgen/internal/core/ports/mocks"
	"go.trai.ch/fixgen/internal/engine/fixtures"
	"go.uber.org/mock/gomock"
)

func fixtureConfig(t *testing.T, testFile, relPath string, reqs ...string) domain.FixtureConfig {
	t.Helper()
	coords, err := domain.ParseCoordinates(reqs)
	require.NoError(t, err)
	return domain.FixtureConfig{
		Definition:   domain.FixtureDefinition{Requirements: coords, LockfileRelPath: relPath},
		TestFilePath: testFile,
	}
}

// echoResolver resolves every requirement set to a body derived from its
// coordinates, mimicking a deterministic external resolver.
func echoResolver(t *testing.T, ctrl *gomock.Controller) *mocks.MockLockfileResolver {
	t.Helper()
	resolver := mocks.NewMockLockfileResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reqs []domain.Coordinate) ([]byte, error) {
			body := "lock:\n"
			for _, req := range reqs {
				body += "  - " + req.String() + "\n"
			}
			return []byte(body), nil
		}).AnyTimes()
	return resolver
}

func TestGatherer_StampsHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := fixtures.NewGatherer(echoResolver(t, ctrl), domain.DefaultSettings())

	config := fixtureConfig(t, "tests/app/test_example.py", "example.lock", "org.example:lib:1.0")
	rendered, err := g.Gather(context.Background(), domain.NewDeduplicatedCollection(config))
	require.NoError(t, err)
	require.Equal(t, 1, rendered.Len())

	fixture := rendered.Items()[0]
	assert.Equal(t, "tests/app/example.lock", fixture.Path)

	meta, ok := domain.ParseLockfileMetadata(fixture.Content, domain.DefaultHeaderDelimiter)
	require.True(t, ok)
	assert.Equal(t, 1, meta.Version)
	assert.True(t, domain.ValidFor(fixture.Content, config.Definition.Requirements, domain.DefaultHeaderDelimiter))

	body := domain.StripLockfileHeader(fixture.Content, domain.DefaultHeaderDelimiter)
	assert.Equal(t, "lock:\n  - org.example:lib:1.0\n", string(body))
}

func TestGatherer_PreservesInputOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := fixtures.NewGatherer(echoResolver(t, ctrl), domain.DefaultSettings())

	configs := domain.NewDeduplicatedCollection(
		fixtureConfig(t, "tests/a/test_a.py", "a.lock", "g:a:1"),
		fixtureConfig(t, "tests/b/test_b.py", "b.lock", "g:b:2"),
		fixtureConfig(t, "tests/c/test_c.py", "c.lock", "g:c:3"),
	)

	rendered, err := g.Gather(context.Background(), configs)
	require.NoError(t, err)
	require.Equal(t, 3, rendered.Len())

	paths := make([]string, 0, 3)
	for fixture := range rendered.All() {
		paths = append(paths, fixture.Path)
	}
	assert.Equal(t, []string{"tests/a/a.lock", "tests/b/b.lock", "tests/c/c.lock"}, paths)
}

func TestGatherer_IdenticalFixturesCollapse(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := fixtures.NewGatherer(echoResolver(t, ctrl), domain.DefaultSettings())

	// Two test files in the same directory declaring the same fixture
	// produce one lockfile, not two writes.
	configs := domain.NewDeduplicatedCollection(
		fixtureConfig(t, "tests/app/test_one.py", "shared.lock", "g:a:1"),
		fixtureConfig(t, "tests/app/test_two.py", "shared.lock", "g:a:1"),
	)

	rendered, err := g.Gather(context.Background(), configs)
	require.NoError(t, err)
	assert.Equal(t, 1, rendered.Len())
}

func TestGatherer_PathCollisionIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := fixtures.NewGatherer(echoResolver(t, ctrl), domain.DefaultSettings())

	configs := domain.NewDeduplicatedCollection(
		fixtureConfig(t, "tests/app/test_one.py", "shared.lock", "g:a:1"),
		fixtureConfig(t, "tests/app/test_two.py", "shared.lock", "g:b:2"),
	)

	_, err := g.Gather(context.Background(), configs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFixturePathCollision))
}

func TestGatherer_ResolverFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockLockfileResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrResolutionFailed).AnyTimes()
	g := fixtures.NewGatherer(resolver, domain.DefaultSettings())

	configs := domain.NewDeduplicatedCollection(
		fixtureConfig(t, "tests/app/test_one.py", "a.lock", "g:a:1"),
	)

	_, err := g.Gather(context.Background(), configs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrResolutionFailed))
}

func TestGatherer_EmptyInput(t *testing.T) {
	g := fixtures.NewGatherer(nil, domain.DefaultSettings())

	rendered, err := g.Gather(context.Background(), domain.NewDeduplicatedCollection[domain.FixtureConfig]())
	require.NoError(t, err)
	assert.Equal(t, 0, rendered.Len())
}

func TestGatherer_SingleJVMFixture(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := fixtures.NewGatherer(echoResolver(t, ctrl), domain.DefaultSettings())

	config := fixtureConfig(t, "src/test/Foo.java", "hamcrest.lock", "org.hamcrest:hamcrest-core:1.3")
	rendered, err := g.Gather(context.Background(), domain.NewDeduplicatedCollection(config))
	require.NoError(t, err)
	require.Equal(t, 1, rendered.Len())

	fixture := rendered.Items()[0]
	assert.Equal(t, "src/test/hamcrest.lock", fixture.Path)
	assert.True(t, strings.HasPrefix(string(fixture.Content), "#"))
}

func TestGatherer_SharedRequirementsDistinctPaths(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := fixtures.NewGatherer(echoResolver(t, ctrl), domain.DefaultSettings())

	// The same requirement set under two lockfile paths stays two
	// fixtures.
	configs := domain.NewDeduplicatedCollection(
		fixtureConfig(t, "tests/a/test_a.py", "a.lock", "g:a:1"),
		fixtureConfig(t, "tests/b/test_b.py", "b.lock", "g:a:1"),
	)

	rendered, err := g.Gather(context.Background(), configs)
	require.NoError(t, err)
	assert.Equal(t, 2, rendered.Len())
}
