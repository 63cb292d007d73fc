package domain

import "errors"

var (
	// ErrInvalidCoordinate is returned when an artifact coordinate string
	// is not of the form "group:artifact:version".
	ErrInvalidCoordinate = errors.New("invalid artifact coordinate")

	// ErrInvalidFixtureDefinition is returned when a discovered fixture
	// declaration violates its invariants.
	ErrInvalidFixtureDefinition = errors.New("invalid fixture definition")

	// ErrDigestConflict is returned when merging digests that declare the
	// same path with differing content.
	ErrDigestConflict = errors.New("digest merge conflict")

	// ErrUnknownDigest is returned when reading a digest the store never
	// created.
	ErrUnknownDigest = errors.New("unknown digest")

	// ErrDiscoveryFailed is returned when the discovery process exits
	// nonzero or produces no usable output.
	ErrDiscoveryFailed = errors.New("fixture discovery failed")

	// ErrUnexpectedProcessOutput is returned when the discovery process
	// produces anything other than exactly one tests.json file.
	ErrUnexpectedProcessOutput = errors.New("unexpected discovery process output")

	// ErrResolutionFailed is returned when the external resolver cannot
	// satisfy a requirement set.
	ErrResolutionFailed = errors.New("lockfile resolution failed")

	// ErrFixturePathCollision is returned when two distinct fixture
	// definitions map to the same output path with differing content.
	ErrFixturePathCollision = errors.New("fixture output path collision")
)
