// Package sandbox provides the sandbox builder and process executor
// adapters. A sandbox is a content-addressed bundle of files; executing
// one materializes the bundle into a throwaway directory and runs a
// process inside it.
package sandbox

import (
	"context"
	"encoding/json"
	"path"

	"go.trai.ch/fixgen/internal/core/domain"
	"go.trai.ch/fixgen/internal/core/ports"
	"go.trai.ch/zerr"
)

// manifestDir holds the per-sandbox manifest inside the bundle tree.
// The prefix keeps manifests from colliding with user sources.
const manifestDir = "__sandbox__"

// Builder implements ports.SandboxBuilder on top of a content store.
type Builder struct {
	store  ports.ContentStore
	logger ports.Logger
}

// NewBuilder creates a new Builder.
func NewBuilder(store ports.ContentStore, logger ports.Logger) *Builder {
	return &Builder{store: store, logger: logger}
}

// manifest is the provenance record embedded into every bundle. Two
// requests with the same inputs produce byte-identical manifests, so
// sandbox digests stay deterministic.
type manifest struct {
	Name             string   `json:"name"`
	RequirementSpecs []string `json:"requirement_specs,omitempty"`
	Interpreter      string   `json:"interpreter,omitempty"`
	EntryPoint       string   `json:"entry_point,omitempty"`
	InternalOnly     bool     `json:"internal_only,omitempty"`
}

// BuildSandbox constructs a bundle from the request: the manifest, the
// embedded sources, and the trees of every sandbox composed onto the
// path, merged into one digest.
func (b *Builder) BuildSandbox(ctx context.Context, req domain.SandboxRequest) (domain.Sandbox, error) {
	if req.Name == "" {
		return domain.Sandbox{}, zerr.New("sandbox request requires a name")
	}

	encoded, err := json.Marshal(manifest{
		Name:             req.Name,
		RequirementSpecs: req.RequirementSpecs,
		Interpreter:      req.Interpreter.String(),
		EntryPoint:       req.EntryPoint,
		InternalOnly:     req.InternalOnly,
	})
	if err != nil {
		return domain.Sandbox{}, zerr.Wrap(err, "failed to encode sandbox manifest")
	}

	manifestDigest, err := b.store.CreateDigest(ctx, []domain.FileContent{{
		Path:    path.Join(manifestDir, req.Name+".json"),
		Content: encoded,
	}})
	if err != nil {
		return domain.Sandbox{}, zerr.With(zerr.Wrap(err, "failed to store sandbox manifest"), "sandbox", req.Name)
	}

	parts := []domain.Digest{manifestDigest}
	if !req.Sources.IsZero() {
		parts = append(parts, req.Sources)
	}
	for _, dep := range req.Path {
		parts = append(parts, dep.Digest)
	}

	merged, err := b.store.MergeDigests(ctx, parts...)
	if err != nil {
		return domain.Sandbox{}, zerr.With(zerr.Wrap(err, "failed to merge sandbox trees"), "sandbox", req.Name)
	}

	return domain.Sandbox{Name: req.Name, Digest: merged, EntryPoint: req.EntryPoint}, nil
}
