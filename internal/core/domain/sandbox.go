package domain

import "github.com/cespare/xxhash/v2"

// Sandbox is an isolated, self-contained executable bundle materialized
// from a digest. It is immutable once built.
type Sandbox struct {
	Name       string
	Digest     Digest
	EntryPoint string
}

// SandboxRequest describes a sandbox bundle to construct: requirement
// specs resolved under an interpreter constraint, optional embedded
// sources, an optional entry point, and other sandboxes composed onto
// the importable path.
type SandboxRequest struct {
	Name             string
	RequirementSpecs []string
	Interpreter      InterpreterConstraint
	Sources          Digest
	EntryPoint       string
	Path             []Sandbox
	// InternalOnly marks bundles that exist purely to run pipeline
	// machinery, never user code.
	InternalOnly bool
}

// ProcessCacheScope controls how long a process execution result may be
// reused.
type ProcessCacheScope string

const (
	// ProcessCachePerSession reuses results within one executor session
	// only. Used when output depends on volatile local file content.
	ProcessCachePerSession ProcessCacheScope = "per_session"
	// ProcessCacheNever forces every invocation to execute.
	ProcessCacheNever ProcessCacheScope = "never"
)

// ProcessSpec describes one isolated process execution: the sandbox to
// run, its arguments and environment, the input tree to materialize, and
// the output files to re-capture into a digest after exit.
type ProcessSpec struct {
	Sandbox     Sandbox
	Argv        []string
	Env         map[string]string
	Input       Digest
	OutputFiles []string
	Description string
	CacheScope  ProcessCacheScope
}

// CacheKey derives the deterministic key under which a per-session result
// is memoized. Env is hashed in sorted order.
func (s ProcessSpec) CacheKey() string {
	h := xxhash.New()
	_, _ = h.WriteString(s.Sandbox.Digest.Hash)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(s.Sandbox.EntryPoint)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(s.Input.Hash)
	_, _ = h.Write([]byte{0})
	for _, arg := range s.Argv {
		_, _ = h.WriteString(arg)
		_, _ = h.Write([]byte{0})
	}
	for _, kv := range sortedEnv(s.Env) {
		_, _ = h.WriteString(kv)
		_, _ = h.Write([]byte{0})
	}
	for _, out := range s.OutputFiles {
		_, _ = h.WriteString(out)
		_, _ = h.Write([]byte{0})
	}
	return hexHash(h.Sum64())
}

// ExecResult is the outcome of one sandboxed process execution.
type ExecResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	// Output is the digest of the declared output files captured after
	// the process exited.
	Output Digest
}
