// Package resolver shells out to an external dependency resolver to turn
// requirement coordinates into a serialized lockfile.
package resolver

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/fixgen/internal/core/domain"
	"go.trai.ch/fixgen/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// CommandResolver implements ports.LockfileResolver by invoking a
// configured command with one argument per coordinate. The command's
// stdout is the lockfile body. Concurrent resolutions of the same
// requirement set collapse into a single invocation.
type CommandResolver struct {
	command []string
	logger  ports.Logger
	group   singleflight.Group
}

// NewCommandResolver creates a CommandResolver for the given argv prefix.
func NewCommandResolver(command []string, logger ports.Logger) *CommandResolver {
	return &CommandResolver{command: command, logger: logger}
}

// Resolve produces a pinned lockfile for the requirement set.
func (r *CommandResolver) Resolve(ctx context.Context, requirements []domain.Coordinate) ([]byte, error) {
	if len(r.command) == 0 {
		return nil, zerr.Wrap(domain.ErrResolutionFailed, "no resolver command configured")
	}

	key := domain.NewLockfileMetadata(requirements).RequirementsFingerprint
	v, err, _ := r.group.Do(key, func() (any, error) {
		return r.invoke(ctx, requirements)
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (r *CommandResolver) invoke(ctx context.Context, requirements []domain.Coordinate) ([]byte, error) {
	args := append([]string(nil), r.command[1:]...)
	for _, req := range requirements {
		args = append(args, req.String())
	}

	if r.logger != nil {
		r.logger.Info("resolving " + r.command[0] + " lockfile")
	}

	cmd := exec.CommandContext(ctx, r.command[0], args...) //nolint:gosec // Command comes from run settings
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		wrapped := zerr.Wrap(domain.ErrResolutionFailed, msg)
		if exitErr, ok := err.(*exec.ExitError); ok {
			wrapped = zerr.With(wrapped, "exit_code", exitErr.ExitCode())
		}
		return nil, wrapped
	}
	return stdout.Bytes(), nil
}
