package fixtures_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fixgen/internal/adapters/cas"
	"go.trai.ch/fixgen/internal/core/domain"
	"go.trai.ch/fixgen/internal/core/ports/mocks"
	"go.trai.ch/fixgen/internal/engine/fixtures"
	"go.uber.org/mock/gomock"
)

// discoveryHarness wires a Discoverer against a real content store and
// mocked collaborators; only the executor varies per test.
type discoveryHarness struct {
	store    *cas.Store
	executor *mocks.MockProcessExecutor
	target   domain.Target
	d        *fixtures.Discoverer

	mu       sync.Mutex
	requests []domain.SandboxRequest
}

// sandboxRequest returns the captured build request with the given name.
func (h *discoveryHarness) sandboxRequest(t *testing.T, name string) domain.SandboxRequest {
	t.Helper()
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, req := range h.requests {
		if req.Name == name {
			return req
		}
	}
	t.Fatalf("no sandbox request named %q", name)
	return domain.SandboxRequest{}
}

func newDiscoveryHarness(t *testing.T) *discoveryHarness {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := cas.NewStore()
	ctx := context.Background()

	target := domain.Target{
		Address:          "tests/app",
		SourceFiles:      []string{"tests/app/test_example.py"},
		RequirementSpecs: []string{"org.hamcrest:hamcrest-core:1.3"},
	}

	graph := mocks.NewMockTargetGraph(ctrl)
	graph.EXPECT().TransitiveClosure(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, targets []domain.Target) ([]domain.Target, error) {
			return targets, nil
		}).AnyTimes()

	srcDigest, err := store.CreateDigest(ctx, []domain.FileContent{
		{Path: "tests/app/test_example.py", Content: []byte("def test_ok():\n    pass\n")},
	})
	require.NoError(t, err)
	prepared := &domain.PreparedSources{
		Digest:      srcDigest,
		SourceRoots: []string{"tests/app"},
		Files:       []string{"tests/app/test_example.py"},
	}
	sources := mocks.NewMockSourcePreparer(ctrl)
	sources.EXPECT().PrepareSources(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(prepared, nil).AnyTimes()

	emptyDigest, err := store.CreateDigest(ctx, nil)
	require.NoError(t, err)
	finder := mocks.NewMockConfigFinder(ctrl)
	finder.EXPECT().FindConfigFile(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(emptyDigest, nil).AnyTimes()

	executor := mocks.NewMockProcessExecutor(ctrl)

	h := &discoveryHarness{
		store:    store,
		executor: executor,
		target:   target,
	}

	builder := mocks.NewMockSandboxBuilder(ctrl)
	builder.EXPECT().BuildSandbox(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req domain.SandboxRequest) (domain.Sandbox, error) {
			h.mu.Lock()
			h.requests = append(h.requests, req)
			h.mu.Unlock()
			d, err := store.CreateDigest(ctx, nil)
			return domain.Sandbox{Name: req.Name, Digest: d, EntryPoint: req.EntryPoint}, err
		}).AnyTimes()

	h.d = fixtures.NewDiscoverer(graph, sources, finder, builder, executor, store, domain.DefaultSettings())
	return h
}

func (h *discoveryHarness) outputDigest(t *testing.T, files ...domain.FileContent) domain.Digest {
	t.Helper()
	d, err := h.store.CreateDigest(context.Background(), files)
	require.NoError(t, err)
	return d
}

func TestDiscoverer_NoTargets(t *testing.T) {
	d := fixtures.NewDiscoverer(nil, nil, nil, nil, nil, nil, domain.DefaultSettings())

	configs, err := d.Discover(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, configs.Len())
}

func TestDiscoverer_CollectsFixtureConfigs(t *testing.T) {
	h := newDiscoveryHarness(t)

	testsJSON := `[
		{"lockfile": "example.lock", "requirements": ["org.hamcrest:hamcrest-core:1.3"], "test_file_path": "tests/app/test_example.py"},
		{"lockfile": "example.lock", "requirements": ["org.hamcrest:hamcrest-core:1.3"], "test_file_path": "tests/app/test_example.py"}
	]`
	output := h.outputDigest(t, domain.FileContent{Path: "tests.json", Content: []byte(testsJSON)})

	h.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, spec domain.ProcessSpec) (*domain.ExecResult, error) {
			assert.Equal(t, "collect_fixtures.py", spec.Argv[0])
			assert.Contains(t, spec.Argv, "tests/app/test_example.py")
			assert.Equal(t, "tests/app", spec.Env["PYTHONPATH"])
			assert.Equal(t, []string{"tests.json"}, spec.OutputFiles)
			assert.Equal(t, domain.ProcessCachePerSession, spec.CacheScope)
			return &domain.ExecResult{ExitCode: 0, Output: output}, nil
		})

	configs, err := h.d.Discover(context.Background(), []domain.Target{h.target})
	require.NoError(t, err)

	// The collection script rides into the combined sandbox as an
	// executable file.
	script := h.sandboxRequest(t, "fixture-discovery")
	files, err := h.store.Contents(context.Background(), script.Sources)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "collect_fixtures.py", files[0].Path)
	assert.True(t, files[0].IsExecutable)

	// The duplicate declaration collapses to one config.
	require.Equal(t, 1, configs.Len())
	config := configs.Items()[0]
	assert.Equal(t, "tests/app/test_example.py", config.TestFilePath)
	assert.Equal(t, "example.lock", config.Definition.LockfileRelPath)
	require.Len(t, config.Definition.Requirements, 1)
	assert.Equal(t, "org.hamcrest:hamcrest-core:1.3", config.Definition.Requirements[0].String())
}

func TestDiscoverer_NonzeroExitFailsDiscovery(t *testing.T) {
	h := newDiscoveryHarness(t)

	h.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).
		Return(&domain.ExecResult{ExitCode: 2, Stderr: []byte("collection crashed")}, nil)

	_, err := h.d.Discover(context.Background(), []domain.Target{h.target})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDiscoveryFailed))
	assert.Contains(t, err.Error(), "collection crashed")
}

func TestDiscoverer_UnexpectedOutputFiles(t *testing.T) {
	h := newDiscoveryHarness(t)

	output := h.outputDigest(t,
		domain.FileContent{Path: "tests.json", Content: []byte("[]")},
		domain.FileContent{Path: "report.xml", Content: []byte("<x/>")},
	)
	h.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).
		Return(&domain.ExecResult{ExitCode: 0, Output: output}, nil)

	_, err := h.d.Discover(context.Background(), []domain.Target{h.target})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnexpectedProcessOutput))
}

func TestDiscoverer_MissingOutputFile(t *testing.T) {
	h := newDiscoveryHarness(t)

	output := h.outputDigest(t)
	h.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).
		Return(&domain.ExecResult{ExitCode: 0, Output: output}, nil)

	_, err := h.d.Discover(context.Background(), []domain.Target{h.target})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnexpectedProcessOutput))
}

func TestDiscoverer_InvalidCoordinateRejected(t *testing.T) {
	h := newDiscoveryHarness(t)

	testsJSON := `[{"lockfile": "x.lock", "requirements": ["not-a-coordinate"], "test_file_path": "tests/app/test_example.py"}]`
	output := h.outputDigest(t, domain.FileContent{Path: "tests.json", Content: []byte(testsJSON)})
	h.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).
		Return(&domain.ExecResult{ExitCode: 0, Output: output}, nil)

	_, err := h.d.Discover(context.Background(), []domain.Target{h.target})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidCoordinate))
}

func TestDiscoverer_EmptyRequirementSetRejected(t *testing.T) {
	h := newDiscoveryHarness(t)

	testsJSON := `[{"lockfile": "x.lock", "requirements": [], "test_file_path": "tests/app/test_example.py"}]`
	output := h.outputDigest(t, domain.FileContent{Path: "tests.json", Content: []byte(testsJSON)})
	h.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).
		Return(&domain.ExecResult{ExitCode: 0, Output: output}, nil)

	_, err := h.d.Discover(context.Background(), []domain.Target{h.target})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidFixtureDefinition))
}
