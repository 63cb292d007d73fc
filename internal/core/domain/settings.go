package domain

import (
	"runtime"
	"sort"
)

// Settings carries the run configuration for the fixture pipeline.
type Settings struct {
	// ToolRequirements are the requirement specs of the discovery tool
	// itself (the tool that collects fixture declarations from tests).
	ToolRequirements []string
	// ToolConfigNames are config file names searched in the directories
	// containing the closure's sources, e.g. "pytest.ini".
	ToolConfigNames []string
	// SourceExtension is the recognized test source file extension.
	SourceExtension string
	// ImportPathEnvVar is the environment variable injected into the
	// discovery sandbox pointing at the closure's source roots.
	ImportPathEnvVar string
	// ResolverCommand is the argv prefix of the external resolver.
	ResolverCommand []string
	// HeaderDelimiter is the comment character for lockfile headers.
	HeaderDelimiter string
	// ExtraTestEnv is passed through unmodified into the discovery
	// sandbox environment.
	ExtraTestEnv map[string]string
	// DefaultInterpreterConstraints apply to targets that declare none.
	DefaultInterpreterConstraints []string
	// Parallelism bounds concurrent resolver calls; 0 means NumCPU.
	Parallelism int
}

// DefaultSettings returns the settings used when no config file overrides
// them.
func DefaultSettings() Settings {
	return Settings{
		ToolRequirements: []string{"pytest>=7.0,<8", "pytest-json-report>=1.5"},
		ToolConfigNames:  []string{"pytest.ini", "tox.ini", "pyproject.toml"},
		SourceExtension:  ".py",
		ImportPathEnvVar: "PYTHONPATH",
		ResolverCommand:  []string{"coursier", "lock"},
		HeaderDelimiter:  DefaultHeaderDelimiter,
	}
}

// EffectiveParallelism resolves the configured parallelism bound.
func (s Settings) EffectiveParallelism() int {
	if s.Parallelism > 0 {
		return s.Parallelism
	}
	return runtime.NumCPU()
}

func sortedEnv(env map[string]string) []string {
	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
