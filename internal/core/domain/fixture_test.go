package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fixgen/internal/core/domain"
)

func mustCoordinates(t *testing.T, specs ...string) []domain.Coordinate {
	t.Helper()
	coords, err := domain.ParseCoordinates(specs)
	require.NoError(t, err)
	return coords
}

func TestFixtureDefinition_Validate(t *testing.T) {
	valid := domain.FixtureDefinition{
		Requirements:    mustCoordinates(t, "g:a:1"),
		LockfileRelPath: "a.lock",
	}
	assert.NoError(t, valid.Validate())

	noReqs := domain.FixtureDefinition{LockfileRelPath: "a.lock"}
	assert.True(t, errors.Is(noReqs.Validate(), domain.ErrInvalidFixtureDefinition))

	noPath := domain.FixtureDefinition{Requirements: mustCoordinates(t, "g:a:1")}
	assert.True(t, errors.Is(noPath.Validate(), domain.ErrInvalidFixtureDefinition))

	absPath := domain.FixtureDefinition{
		Requirements:    mustCoordinates(t, "g:a:1"),
		LockfileRelPath: "/etc/a.lock",
	}
	assert.True(t, errors.Is(absPath.Validate(), domain.ErrInvalidFixtureDefinition))

	escapingPath := domain.FixtureDefinition{
		Requirements:    mustCoordinates(t, "g:a:1"),
		LockfileRelPath: "../escape.lock",
	}
	assert.True(t, errors.Is(escapingPath.Validate(), domain.ErrInvalidFixtureDefinition))
}

func TestFixtureConfig_OutputPath(t *testing.T) {
	config := domain.FixtureConfig{
		Definition: domain.FixtureDefinition{
			Requirements:    mustCoordinates(t, "g:a:1"),
			LockfileRelPath: "locks/a.lock",
		},
		TestFilePath: "tests/app/test_a.py",
	}
	assert.Equal(t, "tests/app/locks/a.lock", config.OutputPath())
}

func TestFixtureConfig_DedupKeyIsStructural(t *testing.T) {
	def := domain.FixtureDefinition{
		Requirements:    mustCoordinates(t, "g:a:1"),
		LockfileRelPath: "a.lock",
	}
	one := domain.FixtureConfig{Definition: def, TestFilePath: "tests/x/test_a.py"}
	same := domain.FixtureConfig{Definition: def, TestFilePath: "tests/x/test_a.py"}
	other := domain.FixtureConfig{Definition: def, TestFilePath: "tests/y/test_a.py"}

	assert.Equal(t, one.DedupKey(), same.DedupKey())
	// Distinct test files declaring the same fixture stay distinct.
	assert.NotEqual(t, one.DedupKey(), other.DedupKey())
}

func TestRenderedFixture_DedupKeyCoversContent(t *testing.T) {
	a := domain.RenderedFixture{Path: "a.lock", Content: []byte("one")}
	b := domain.RenderedFixture{Path: "a.lock", Content: []byte("two")}
	assert.NotEqual(t, a.DedupKey(), b.DedupKey())
}
