// Package buildgraph implements a filesystem-backed target graph: each
// directory holding test sources (and optionally a fixture-targets.yaml
// metadata file) forms one target.
package buildgraph

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/fixgen/internal/adapters/fs"
	"go.trai.ch/fixgen/internal/core/domain"
	"go.trai.ch/fixgen/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// MetadataFilename is the per-directory target metadata file.
const MetadataFilename = "fixture-targets.yaml"

// recursiveSuffix selects a directory and everything beneath it,
// e.g. "src/test::".
const recursiveSuffix = "::"

// Graph implements ports.TargetGraph and ports.SourcePreparer over a
// source tree rooted at a workspace directory.
type Graph struct {
	root     string
	walker   *fs.Walker
	store    ports.ContentStore
	settings domain.Settings
}

// targetMetadata is the schema of fixture-targets.yaml.
type targetMetadata struct {
	Requirements           []string `yaml:"requirements"`
	InterpreterConstraints []string `yaml:"interpreter_constraints"`
	Dependencies           []string `yaml:"dependencies"`
}

// NewGraph creates a Graph rooted at the given directory.
func NewGraph(root string, walker *fs.Walker, store ports.ContentStore, settings domain.Settings) *Graph {
	return &Graph{root: filepath.Clean(root), walker: walker, store: store, settings: settings}
}

// Targets expands target-selection specs. A spec is a directory path,
// optionally suffixed with "::" to select the whole subtree. An empty
// spec list yields an empty target list.
func (g *Graph) Targets(ctx context.Context, specs []string) ([]domain.Target, error) {
	var targets []domain.Target
	seen := make(map[string]struct{})

	for _, spec := range specs {
		dirs, err := g.expandSpec(spec)
		if err != nil {
			return nil, err
		}
		for _, dir := range dirs {
			if _, dup := seen[dir]; dup {
				continue
			}
			seen[dir] = struct{}{}

			tgt, ok, err := g.loadTarget(dir)
			if err != nil {
				return nil, err
			}
			if ok {
				targets = append(targets, tgt)
			}
		}
	}
	return targets, nil
}

// TransitiveClosure returns the given targets plus everything reachable
// through their declared dependencies, deduplicated, in breadth-first
// order.
func (g *Graph) TransitiveClosure(ctx context.Context, targets []domain.Target) ([]domain.Target, error) {
	closure := make([]domain.Target, 0, len(targets))
	seen := make(map[string]struct{})
	queue := append([]domain.Target(nil), targets...)

	for len(queue) > 0 {
		tgt := queue[0]
		queue = queue[1:]
		if _, dup := seen[tgt.Address]; dup {
			continue
		}
		seen[tgt.Address] = struct{}{}
		closure = append(closure, tgt)

		for _, dep := range tgt.Dependencies {
			if _, dup := seen[dep]; dup {
				continue
			}
			depTarget, ok, err := g.loadTarget(dep)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, zerr.With(zerr.With(zerr.New("dependency does not resolve to a target"), "address", dep), "dependee", tgt.Address)
			}
			queue = append(queue, depTarget)
		}
	}
	return closure, nil
}

// PrepareSources reads the targets' files into a content digest. With
// includeResources set, non-source files in the target directories are
// carried along as well.
func (g *Graph) PrepareSources(ctx context.Context, targets []domain.Target, includeResources bool) (*domain.PreparedSources, error) {
	var contents []domain.FileContent
	rootSet := make(map[string]struct{})
	seen := make(map[string]struct{})

	addFile := func(rel string) error {
		if _, dup := seen[rel]; dup {
			return nil
		}
		seen[rel] = struct{}{}
		//nolint:gosec // Paths come from walking the configured root
		data, err := os.ReadFile(filepath.Join(g.root, rel))
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read source file"), "path", rel)
		}
		contents = append(contents, domain.FileContent{Path: filepath.ToSlash(rel), Content: data})
		return nil
	}

	for _, tgt := range targets {
		rootSet[tgt.Address] = struct{}{}
		for _, src := range tgt.SourceFiles {
			if err := addFile(src); err != nil {
				return nil, err
			}
		}
		if includeResources {
			resources, err := g.resourceFiles(tgt.Address)
			if err != nil {
				return nil, err
			}
			for _, res := range resources {
				if err := addFile(res); err != nil {
					return nil, err
				}
			}
		}
	}

	digest, err := g.store.CreateDigest(ctx, contents)
	if err != nil {
		return nil, err
	}

	roots := make([]string, 0, len(rootSet))
	for dir := range rootSet {
		roots = append(roots, dir)
	}
	sort.Strings(roots)

	files := make([]string, 0, len(seen))
	for rel := range seen {
		files = append(files, filepath.ToSlash(rel))
	}
	sort.Strings(files)

	return &domain.PreparedSources{Digest: digest, SourceRoots: roots, Files: files}, nil
}

func (g *Graph) expandSpec(spec string) ([]string, error) {
	recursive := strings.HasSuffix(spec, recursiveSuffix)
	dir := filepath.ToSlash(filepath.Clean(strings.TrimSuffix(spec, recursiveSuffix)))
	if dir == "" {
		dir = "."
	}

	info, err := os.Stat(filepath.Join(g.root, dir))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "target spec does not match a directory"), "spec", spec)
	}
	if !info.IsDir() {
		return nil, zerr.With(zerr.New("target spec must name a directory"), "spec", spec)
	}
	if !recursive {
		return []string{dir}, nil
	}

	dirSet := map[string]struct{}{dir: {}}
	for path := range g.walker.WalkFiles(filepath.Join(g.root, dir), nil) {
		rel, err := filepath.Rel(g.root, filepath.Dir(path))
		if err != nil {
			return nil, zerr.Wrap(err, "failed to relativize walked path")
		}
		dirSet[filepath.ToSlash(rel)] = struct{}{}
	}

	dirs := make([]string, 0, len(dirSet))
	for d := range dirSet {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs, nil
}

// loadTarget reads one directory as a target. Directories with neither
// source files nor a metadata file are not targets.
func (g *Graph) loadTarget(dir string) (domain.Target, bool, error) {
	entries, err := os.ReadDir(filepath.Join(g.root, dir))
	if err != nil {
		return domain.Target{}, false, zerr.With(zerr.Wrap(err, "failed to read target directory"), "address", dir)
	}

	var sources []string
	hasMetadata := false
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch {
		case entry.Name() == MetadataFilename:
			hasMetadata = true
		case strings.HasSuffix(entry.Name(), g.settings.SourceExtension):
			sources = append(sources, filepath.ToSlash(filepath.Join(dir, entry.Name())))
		}
	}
	if len(sources) == 0 && !hasMetadata {
		return domain.Target{}, false, nil
	}
	sort.Strings(sources)

	meta := targetMetadata{}
	if hasMetadata {
		//nolint:gosec // Metadata path is derived from the configured root
		data, err := os.ReadFile(filepath.Join(g.root, dir, MetadataFilename))
		if err != nil {
			return domain.Target{}, false, zerr.With(zerr.Wrap(err, "failed to read target metadata"), "address", dir)
		}
		if err := yaml.Unmarshal(data, &meta); err != nil {
			return domain.Target{}, false, zerr.With(zerr.Wrap(err, "failed to parse target metadata"), "address", dir)
		}
	}

	return domain.Target{
		Address:                dir,
		SourceFiles:            sources,
		RequirementSpecs:       meta.Requirements,
		InterpreterConstraints: meta.InterpreterConstraints,
		Dependencies:           meta.Dependencies,
	}, true, nil
}

// resourceFiles lists the non-source, non-metadata files of a target
// directory.
func (g *Graph) resourceFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(g.root, dir))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read target directory"), "address", dir)
	}
	var resources []string
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == MetadataFilename {
			continue
		}
		if strings.HasSuffix(entry.Name(), g.settings.SourceExtension) {
			continue
		}
		resources = append(resources, filepath.ToSlash(filepath.Join(dir, entry.Name())))
	}
	sort.Strings(resources)
	return resources, nil
}
