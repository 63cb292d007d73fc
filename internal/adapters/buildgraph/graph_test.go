package buildgraph_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fixgen/internal/adapters/buildgraph"
	"go.trai.ch/fixgen/internal/adapters/cas"
	"go.trai.ch/fixgen/internal/adapters/fs"
	"go.trai.ch/fixgen/internal/core/domain"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func newGraph(t *testing.T, root string) *buildgraph.Graph {
	t.Helper()
	return buildgraph.NewGraph(root, fs.NewWalker(), cas.NewStore(), domain.DefaultSettings())
}

func TestGraph_TargetsExpandsDirectorySpec(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"tests/app/test_b.py": "",
		"tests/app/test_a.py": "",
		"tests/app/fixture-targets.yaml": "requirements:\n" +
			"  - org.example:lib:1.0\n" +
			"interpreter_constraints:\n" +
			"  - \">=3.8,<4\"\n",
	})

	targets, err := newGraph(t, root).Targets(context.Background(), []string{"tests/app"})
	require.NoError(t, err)
	require.Len(t, targets, 1)

	tgt := targets[0]
	assert.Equal(t, "tests/app", tgt.Address)
	assert.Equal(t, []string{"tests/app/test_a.py", "tests/app/test_b.py"}, tgt.SourceFiles)
	assert.Equal(t, []string{"org.example:lib:1.0"}, tgt.RequirementSpecs)
	assert.Equal(t, []string{">=3.8,<4"}, tgt.InterpreterConstraints)
}

func TestGraph_TargetsRecursiveSpec(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"tests/app/test_a.py": "",
		"tests/lib/test_b.py": "",
		"tests/empty/readme":  "",
	})

	targets, err := newGraph(t, root).Targets(context.Background(), []string{"tests::"})
	require.NoError(t, err)

	addresses := make([]string, 0, len(targets))
	for _, tgt := range targets {
		addresses = append(addresses, tgt.Address)
	}
	assert.Contains(t, addresses, "tests/app")
	assert.Contains(t, addresses, "tests/lib")
	// A directory without test sources or metadata is not a target.
	assert.NotContains(t, addresses, "tests/empty")
}

func TestGraph_TargetsEmptySpecList(t *testing.T) {
	targets, err := newGraph(t, t.TempDir()).Targets(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, targets)
}

func TestGraph_TargetsUnknownSpecFails(t *testing.T) {
	_, err := newGraph(t, t.TempDir()).Targets(context.Background(), []string{"no/such/dir"})
	assert.Error(t, err)
}

func TestGraph_TransitiveClosure(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"tests/app/test_a.py": "",
		"tests/app/fixture-targets.yaml": "dependencies:\n" +
			"  - lib/common\n",
		"lib/common/fixture-targets.yaml": "requirements:\n" +
			"  - org.example:util:2.0\n",
	})

	g := newGraph(t, root)
	targets, err := g.Targets(context.Background(), []string{"tests/app"})
	require.NoError(t, err)

	closure, err := g.TransitiveClosure(context.Background(), targets)
	require.NoError(t, err)
	require.Len(t, closure, 2)
	assert.Equal(t, "tests/app", closure[0].Address)
	assert.Equal(t, "lib/common", closure[1].Address)
}

func TestGraph_TransitiveClosureUnknownDependencyFails(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"tests/app/test_a.py": "",
		"tests/app/fixture-targets.yaml": "dependencies:\n" +
			"  - does/not/exist\n",
	})

	g := newGraph(t, root)
	targets, err := g.Targets(context.Background(), []string{"tests/app"})
	require.NoError(t, err)

	_, err = g.TransitiveClosure(context.Background(), targets)
	assert.Error(t, err)
}

func TestGraph_PrepareSources(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"tests/app/test_a.py":  "def test(): pass\n",
		"tests/app/data.json":  "{}",
		"tests/app/pytest.ini": "[pytest]\n",
	})

	g := newGraph(t, root)
	targets, err := g.Targets(context.Background(), []string{"tests/app"})
	require.NoError(t, err)

	withoutResources, err := g.PrepareSources(context.Background(), targets, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"tests/app"}, withoutResources.SourceRoots)
	assert.Equal(t, []string{"tests/app/test_a.py"}, withoutResources.Files)

	withResources, err := g.PrepareSources(context.Background(), targets, true)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"tests/app/data.json",
		"tests/app/pytest.ini",
		"tests/app/test_a.py",
	}, withResources.Files)
	assert.NotEqual(t, withoutResources.Digest.Hash, withResources.Digest.Hash)
}
