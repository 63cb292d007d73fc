package fixtures

import (
	"context"
	"strings"

	"go.trai.ch/fixgen/internal/core/domain"
	"go.trai.ch/fixgen/internal/core/ports"
	"go.trai.ch/zerr"
)

// Renderer runs the final stage: the rendered fixtures are committed to
// the workspace in one all-or-nothing write.
type Renderer struct {
	store     ports.ContentStore
	workspace ports.Workspace
	console   ports.Console
}

// NewRenderer creates a Renderer.
func NewRenderer(store ports.ContentStore, workspace ports.Workspace, console ports.Console) *Renderer {
	return &Renderer{store: store, workspace: workspace, console: console}
}

// Render writes all fixtures to the workspace. An empty set is a
// successful run that reports there was nothing to write.
func (r *Renderer) Render(ctx context.Context, fixtures *domain.RenderedFixtures) error {
	if fixtures.Len() == 0 {
		r.console.WriteStdout("No test lockfile fixtures found.\n")
		return nil
	}

	contents := make([]domain.FileContent, 0, fixtures.Len())
	var listing strings.Builder
	listing.WriteString("Writing test lockfile fixtures:\n")
	for fixture := range fixtures.All() {
		contents = append(contents, domain.FileContent{Path: fixture.Path, Content: fixture.Content})
		listing.WriteString("  " + fixture.Path + "\n")
	}

	digest, err := r.store.CreateDigest(ctx, contents)
	if err != nil {
		return zerr.Wrap(err, "failed to assemble fixture output tree")
	}

	r.console.WriteStdout(listing.String())
	return r.workspace.WriteDigest(ctx, digest)
}
