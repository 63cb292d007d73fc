// Package domain contains the core value types for the lockfile fixture
// generation pipeline.
package domain

import (
	"path"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// GoalName is the name of the goal that drives the pipeline. It is used
// both as the CLI subcommand and in the regeneration command stamped into
// lockfile headers.
const GoalName = "generate-test-lockfile-fixtures"

// FixtureDefinition is one declared dependency-requirement set extracted
// from a test file, together with the relative path the resolved lockfile
// must be written to.
type FixtureDefinition struct {
	Requirements    []Coordinate
	LockfileRelPath string
}

// Validate checks the invariants discovery is required to establish:
// a non-empty requirement set and a relative lockfile path that stays
// below the test file's directory tree.
func (d FixtureDefinition) Validate() error {
	if len(d.Requirements) == 0 {
		return zerr.With(ErrInvalidFixtureDefinition, "reason", "empty requirement set")
	}
	if d.LockfileRelPath == "" {
		return zerr.With(ErrInvalidFixtureDefinition, "reason", "empty lockfile path")
	}
	clean := path.Clean(d.LockfileRelPath)
	if path.IsAbs(d.LockfileRelPath) || clean == ".." || strings.HasPrefix(clean, "../") {
		return zerr.With(ErrInvalidFixtureDefinition, "lockfile_path", d.LockfileRelPath)
	}
	return nil
}

// FixtureConfig is a FixtureDefinition plus the path of the originating
// test file. Identity is structural equality of both fields, so distinct
// test files declaring identical requirement sets remain distinct entries.
type FixtureConfig struct {
	Definition   FixtureDefinition
	TestFilePath string
}

// OutputPath computes the workspace path the rendered lockfile lands at:
// the test file's directory joined with the declared relative path.
func (c FixtureConfig) OutputPath() string {
	return path.Join(path.Dir(c.TestFilePath), c.Definition.LockfileRelPath)
}

// DedupKey implements Keyed over the full structural value.
func (c FixtureConfig) DedupKey() string {
	h := xxhash.New()
	_, _ = h.WriteString(c.TestFilePath)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(c.Definition.LockfileRelPath)
	_, _ = h.Write([]byte{0})
	for _, req := range c.Definition.Requirements {
		_, _ = h.WriteString(req.String())
		_, _ = h.Write([]byte{0})
	}
	return hexHash(h.Sum64())
}

// CollectedFixtureConfigs is the deduplicated, order-preserving result of
// the discovery stage.
type CollectedFixtureConfigs = DeduplicatedCollection[FixtureConfig]

// RenderedFixture is a resolved, header-stamped lockfile body plus the
// workspace path it must be written to.
type RenderedFixture struct {
	Content []byte
	Path    string
}

// DedupKey implements Keyed over path and content, so rendering the same
// fixture twice never writes it twice.
func (f RenderedFixture) DedupKey() string {
	h := xxhash.New()
	_, _ = h.WriteString(f.Path)
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(f.Content)
	return hexHash(h.Sum64())
}

// RenderedFixtures is the deduplicated, order-preserving result of the
// resolution stage.
type RenderedFixtures = DeduplicatedCollection[RenderedFixture]
