package domain

// Target is one addressable unit of the build graph as seen by this
// pipeline: an address, the source files it owns, its declared
// third-party requirement specs, and its interpreter constraints.
type Target struct {
	Address                string
	SourceFiles            []string
	RequirementSpecs       []string
	InterpreterConstraints []string
	Dependencies           []string
}

// PreparedSources is a source tree readied for sandbox execution: its
// content digest, the roots import resolution must search, and the flat
// file listing.
type PreparedSources struct {
	Digest      Digest
	SourceRoots []string
	Files       []string
}
