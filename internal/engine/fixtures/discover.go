package fixtures

import (
	"context"
	"encoding/json"
	"os"
	"path"
	"sort"
	"strings"

	"go.trai.ch/fixgen/internal/core/domain"
	"go.trai.ch/fixgen/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// discoveryInterpreter runs the embedded collection script inside the
// discovery sandbox.
const discoveryInterpreter = "python3"

// Discoverer runs the discovery stage: it executes the collection script
// over the targets' test sources inside a sandbox and parses the fixture
// declarations it emits.
type Discoverer struct {
	graph    ports.TargetGraph
	sources  ports.SourcePreparer
	finder   ports.ConfigFinder
	builder  ports.SandboxBuilder
	executor ports.ProcessExecutor
	store    ports.ContentStore
	settings domain.Settings
}

// NewDiscoverer creates a Discoverer.
func NewDiscoverer(
	graph ports.TargetGraph,
	sources ports.SourcePreparer,
	finder ports.ConfigFinder,
	builder ports.SandboxBuilder,
	executor ports.ProcessExecutor,
	store ports.ContentStore,
	settings domain.Settings,
) *Discoverer {
	return &Discoverer{
		graph:    graph,
		sources:  sources,
		finder:   finder,
		builder:  builder,
		executor: executor,
		store:    store,
		settings: settings,
	}
}

// collectedEntry is the wire schema of one tests.json element.
type collectedEntry struct {
	Lockfile     string   `json:"lockfile"`
	Requirements []string `json:"requirements"`
	TestFilePath string   `json:"test_file_path"`
}

// Discover extracts the deduplicated fixture configurations declared by
// the given targets' tests. No targets means no fixtures, not an error.
func (d *Discoverer) Discover(ctx context.Context, targets []domain.Target) (*domain.CollectedFixtureConfigs, error) {
	if len(targets) == 0 {
		return domain.NewDeduplicatedCollection[domain.FixtureConfig](), nil
	}

	closure, err := d.graph.TransitiveClosure(ctx, targets)
	if err != nil {
		return nil, err
	}
	interpreter, err := domain.NarrowestConstraint(closure, d.settings.DefaultInterpreterConstraints)
	if err != nil {
		return nil, err
	}

	// The four sandbox inputs are independent of each other.
	var (
		toolSandbox domain.Sandbox
		reqSandbox  domain.Sandbox
		allSources  *domain.PreparedSources
		rootSources *domain.PreparedSources
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		toolSandbox, err = d.builder.BuildSandbox(egCtx, domain.SandboxRequest{
			Name:             "discovery-tool",
			RequirementSpecs: d.settings.ToolRequirements,
			Interpreter:      interpreter,
			InternalOnly:     true,
		})
		return err
	})
	eg.Go(func() error {
		var err error
		reqSandbox, err = d.builder.BuildSandbox(egCtx, domain.SandboxRequest{
			Name:             "closure-requirements",
			RequirementSpecs: closureRequirements(closure),
			Interpreter:      interpreter,
			InternalOnly:     true,
		})
		return err
	})
	eg.Go(func() error {
		var err error
		allSources, err = d.sources.PrepareSources(egCtx, closure, true)
		return err
	})
	eg.Go(func() error {
		var err error
		rootSources, err = d.sources.PrepareSources(egCtx, targets, false)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	scriptDigest, err := d.store.CreateDigest(ctx, []domain.FileContent{
		{Path: collectScriptName, Content: collectScript, IsExecutable: true},
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to store collection script")
	}

	// The combined sandbox and the config lookup only depend on what the
	// first fan-out produced.
	var (
		combined     domain.Sandbox
		configDigest domain.Digest
	)
	eg, egCtx = errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		combined, err = d.builder.BuildSandbox(egCtx, domain.SandboxRequest{
			Name:         "fixture-discovery",
			Interpreter:  interpreter,
			Sources:      scriptDigest,
			EntryPoint:   discoveryInterpreter,
			Path:         []domain.Sandbox{toolSandbox, reqSandbox},
			InternalOnly: true,
		})
		return err
	})
	eg.Go(func() error {
		var err error
		configDigest, err = d.finder.FindConfigFile(egCtx, sourceDirs(allSources.Files), d.settings.ToolConfigNames)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	input, err := d.store.MergeDigests(ctx, allSources.Digest, configDigest)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to assemble discovery input tree")
	}

	res, err := d.executor.Execute(ctx, domain.ProcessSpec{
		Sandbox:     combined,
		Argv:        append([]string{collectScriptName}, testFiles(rootSources.Files, d.settings.SourceExtension)...),
		Env:         d.discoveryEnv(allSources.SourceRoots),
		Input:       input,
		OutputFiles: []string{testsJSONName},
		Description: "Collect test lockfile requirements from all tests.",
		CacheScope:  domain.ProcessCachePerSession,
	})
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		return nil, zerr.With(zerr.With(
			zerr.Wrap(domain.ErrDiscoveryFailed, strings.TrimSpace(string(res.Stderr))),
			"exit_code", res.ExitCode),
			"stdout", string(res.Stdout))
	}
	if len(res.Output.Files) != 1 || res.Output.Files[0] != testsJSONName {
		return nil, zerr.With(domain.ErrUnexpectedProcessOutput, "files", res.Output.Files)
	}

	return d.parseCollected(ctx, res.Output)
}

func (d *Discoverer) parseCollected(ctx context.Context, output domain.Digest) (*domain.CollectedFixtureConfigs, error) {
	files, err := d.store.Contents(ctx, output)
	if err != nil {
		return nil, err
	}

	var entries []collectedEntry
	if err := json.Unmarshal(files[0].Content, &entries); err != nil {
		return nil, zerr.Wrap(err, "failed to parse discovery output")
	}

	configs := domain.NewDeduplicatedCollection[domain.FixtureConfig]()
	for _, entry := range entries {
		requirements, err := domain.ParseCoordinates(entry.Requirements)
		if err != nil {
			return nil, zerr.With(err, "test_file", entry.TestFilePath)
		}
		config := domain.FixtureConfig{
			Definition: domain.FixtureDefinition{
				Requirements:    requirements,
				LockfileRelPath: entry.Lockfile,
			},
			TestFilePath: entry.TestFilePath,
		}
		if err := config.Definition.Validate(); err != nil {
			return nil, zerr.With(err, "test_file", entry.TestFilePath)
		}
		configs.Add(config)
	}
	return configs, nil
}

func (d *Discoverer) discoveryEnv(sourceRoots []string) map[string]string {
	env := make(map[string]string, len(d.settings.ExtraTestEnv)+1)
	for k, v := range d.settings.ExtraTestEnv {
		env[k] = v
	}
	env[d.settings.ImportPathEnvVar] = strings.Join(sourceRoots, string(os.PathListSeparator))
	return env
}

// closureRequirements unions the closure's requirement specs, first
// occurrence wins.
func closureRequirements(closure []domain.Target) []string {
	var specs []string
	seen := make(map[string]struct{})
	for _, tgt := range closure {
		for _, spec := range tgt.RequirementSpecs {
			if _, dup := seen[spec]; dup {
				continue
			}
			seen[spec] = struct{}{}
			specs = append(specs, spec)
		}
	}
	return specs
}

// sourceDirs lists the distinct directories of the given files, sorted.
func sourceDirs(files []string) []string {
	set := make(map[string]struct{})
	for _, f := range files {
		set[path.Dir(f)] = struct{}{}
	}
	dirs := make([]string, 0, len(set))
	for d := range set {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}

// testFiles filters the root targets' files down to test sources.
func testFiles(files []string, extension string) []string {
	var out []string
	for _, f := range files {
		if strings.HasSuffix(f, extension) {
			out = append(out, f)
		}
	}
	return out
}
