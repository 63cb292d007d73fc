package sandbox

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.trai.ch/fixgen/internal/core/domain"
	"go.trai.ch/fixgen/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Executor implements ports.ProcessExecutor using os/exec. Results of
// per-session cacheable specs are memoized by cache key; concurrent
// executions of the same spec collapse into one process.
type Executor struct {
	store  ports.ContentStore
	logger ports.Logger
	tracer ports.Tracer

	group   singleflight.Group
	mu      sync.RWMutex
	session map[string]*domain.ExecResult
}

// NewExecutor creates a new Executor.
func NewExecutor(store ports.ContentStore, logger ports.Logger, tracer ports.Tracer) *Executor {
	return &Executor{
		store:   store,
		logger:  logger,
		tracer:  tracer,
		session: make(map[string]*domain.ExecResult),
	}
}

// Execute runs the spec in a private execution root.
func (e *Executor) Execute(ctx context.Context, spec domain.ProcessSpec) (*domain.ExecResult, error) {
	if spec.CacheScope != domain.ProcessCachePerSession {
		return e.run(ctx, spec)
	}

	key := spec.CacheKey()
	v, err, _ := e.group.Do(key, func() (any, error) {
		e.mu.RLock()
		cached, ok := e.session[key]
		e.mu.RUnlock()
		if ok {
			return cached, nil
		}

		res, err := e.run(ctx, spec)
		if err != nil {
			return nil, err
		}
		e.mu.Lock()
		e.session[key] = res
		e.mu.Unlock()
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.ExecResult), nil
}

// run wraps one process execution in a span. Cache hits never reach
// this path, so every span maps to a real process.
func (e *Executor) run(ctx context.Context, spec domain.ProcessSpec) (*domain.ExecResult, error) {
	if e.tracer == nil {
		return e.execute(ctx, spec)
	}
	ctx, span := e.tracer.Start(ctx, spanName(spec))
	defer span.End()

	res, err := e.execute(ctx, spec)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("exit_code", res.ExitCode)
	if len(res.Stdout) > 0 {
		_, _ = span.Write(res.Stdout)
	}
	return res, nil
}

func spanName(spec domain.ProcessSpec) string {
	if spec.Description != "" {
		return spec.Description
	}
	return spec.Sandbox.Name
}

func (e *Executor) execute(ctx context.Context, spec domain.ProcessSpec) (*domain.ExecResult, error) {
	if len(spec.Argv) == 0 && spec.Sandbox.EntryPoint == "" {
		return nil, zerr.New("process spec has neither argv nor an entry point")
	}

	tree, err := e.store.MergeDigests(ctx, spec.Sandbox.Digest, spec.Input)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to merge sandbox and input trees"), "sandbox", spec.Sandbox.Name)
	}
	files, err := e.store.Contents(ctx, tree)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read execution tree")
	}

	root, err := os.MkdirTemp("", "fixgen-exec-*")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create execution root")
	}
	defer os.RemoveAll(root) //nolint:errcheck // Best effort cleanup

	for _, f := range files {
		if err := materialize(root, f); err != nil {
			return nil, err
		}
	}

	name, args := command(root, spec)
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // Argv comes from pipeline-built specs
	cmd.Dir = root
	cmd.Env = mergedEnv(os.Environ(), spec.Env)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if e.logger != nil && spec.Description != "" {
		e.logger.Info(spec.Description)
	}

	result := &domain.ExecResult{}
	if err := cmd.Run(); err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return nil, zerr.With(zerr.Wrap(err, "failed to start sandboxed process"), "sandbox", spec.Sandbox.Name)
		}
		result.ExitCode = exitErr.ExitCode()
	}
	result.Stdout = stdout.Bytes()
	result.Stderr = stderr.Bytes()

	if result.ExitCode == 0 {
		output, err := e.captureOutputs(ctx, root, spec.OutputFiles)
		if err != nil {
			return nil, err
		}
		result.Output = output
	}
	return result, nil
}

// captureOutputs re-ingests the declared output files into the store.
// Outputs the process did not produce are omitted from the digest.
func (e *Executor) captureOutputs(ctx context.Context, root string, outputs []string) (domain.Digest, error) {
	var contents []domain.FileContent
	for _, rel := range outputs {
		path := filepath.Join(root, filepath.FromSlash(rel))
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return domain.Digest{}, zerr.With(zerr.Wrap(err, "failed to stat process output"), "path", rel)
		}
		data, err := os.ReadFile(path) //nolint:gosec // Output paths are declared by the spec
		if err != nil {
			return domain.Digest{}, zerr.With(zerr.Wrap(err, "failed to read process output"), "path", rel)
		}
		contents = append(contents, domain.FileContent{
			Path:         rel,
			Content:      data,
			IsExecutable: info.Mode()&0o111 != 0,
		})
	}
	return e.store.CreateDigest(ctx, contents)
}

// command resolves the program to run. An entry point that exists in the
// execution root is run from there; anything else is resolved via PATH.
func command(root string, spec domain.ProcessSpec) (string, []string) {
	if spec.Sandbox.EntryPoint == "" {
		return spec.Argv[0], spec.Argv[1:]
	}
	entry := spec.Sandbox.EntryPoint
	local := filepath.Join(root, filepath.FromSlash(entry))
	if _, err := os.Stat(local); err == nil {
		entry = local
	}
	return entry, spec.Argv
}

func materialize(root string, f domain.FileContent) error {
	dest := filepath.Join(root, filepath.FromSlash(f.Path))
	if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create sandbox directory"), "path", f.Path)
	}
	mode := os.FileMode(0o644)
	if f.IsExecutable {
		mode = 0o755
	}
	//nolint:gosec // Path is derived from a digest tree under the execution root
	if err := os.WriteFile(dest, f.Content, mode); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to materialize sandbox file"), "path", f.Path)
	}
	return nil
}

// mergedEnv layers the spec's environment over the process base
// environment, sorted for deterministic command construction.
func mergedEnv(base []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(base)+len(overrides))
	for _, entry := range base {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range overrides {
		envMap[k] = v
	}
	out := make([]string, 0, len(envMap))
	for k, v := range envMap {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
