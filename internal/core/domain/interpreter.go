package domain

import (
	"sort"
	"strings"

	pep440 "github.com/aquasecurity/go-pep440-version"
	"go.trai.ch/zerr"
)

// InterpreterConstraint is a PEP 440 specifier set restricting which
// interpreter versions a sandbox may be built for.
type InterpreterConstraint struct {
	raw   string
	specs pep440.Specifiers
}

// ParseInterpreterConstraint parses a PEP 440 specifier set such as
// ">=3.8,<4".
func ParseInterpreterConstraint(raw string) (InterpreterConstraint, error) {
	specs, err := pep440.NewSpecifiers(raw)
	if err != nil {
		return InterpreterConstraint{}, zerr.With(zerr.Wrap(err, "invalid interpreter constraint"), "constraint", raw)
	}
	return InterpreterConstraint{raw: raw, specs: specs}, nil
}

// String returns the specifier set in its original form.
func (c InterpreterConstraint) String() string { return c.raw }

// IsZero reports whether the constraint places no restriction.
func (c InterpreterConstraint) IsZero() bool { return c.raw == "" }

// Satisfies reports whether the given interpreter version is compatible.
func (c InterpreterConstraint) Satisfies(version string) (bool, error) {
	if c.IsZero() {
		return true, nil
	}
	v, err := pep440.Parse(version)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "invalid interpreter version"), "version", version)
	}
	return c.specs.Check(v), nil
}

// NarrowestConstraint computes the narrowest interpreter constraint
// compatible with every target in the closure: the conjunction of all
// distinct per-target specifier sets. Targets without constraints fall
// back to the given defaults.
func NarrowestConstraint(targets []Target, defaults []string) (InterpreterConstraint, error) {
	distinct := make(map[string]struct{})
	for _, tgt := range targets {
		constraints := tgt.InterpreterConstraints
		if len(constraints) == 0 {
			constraints = defaults
		}
		for _, raw := range constraints {
			if raw = strings.TrimSpace(raw); raw != "" {
				distinct[raw] = struct{}{}
			}
		}
	}
	if len(distinct) == 0 {
		return InterpreterConstraint{}, nil
	}

	parts := make([]string, 0, len(distinct))
	for raw := range distinct {
		parts = append(parts, raw)
	}
	sort.Strings(parts)

	// PEP 440 comma is conjunction, so joining the sets yields their
	// intersection.
	return ParseInterpreterConstraint(strings.Join(parts, ","))
}
