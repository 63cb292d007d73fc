package resolver_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fixgen/internal/adapters/resolver"
	"go.trai.ch/fixgen/internal/core/domain"
)

func stubScript(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "resolve.sh")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestCommandResolver_StdoutIsTheLockfile(t *testing.T) {
	script := stubScript(t, "#!/bin/sh\nprintf 'locked: %s' \"$*\"\n")
	r := resolver.NewCommandResolver([]string{script}, nil)

	reqs, err := domain.ParseCoordinates([]string{"org.example:lib:1.2.3"})
	require.NoError(t, err)

	body, err := r.Resolve(context.Background(), reqs)
	require.NoError(t, err)
	assert.Equal(t, "locked: org.example:lib:1.2.3", string(body))
}

func TestCommandResolver_PassesCommandArguments(t *testing.T) {
	script := stubScript(t, "#!/bin/sh\nprintf '%s' \"$*\"\n")
	r := resolver.NewCommandResolver([]string{script, "lock", "--quiet"}, nil)

	reqs, err := domain.ParseCoordinates([]string{"a:b:1", "c:d:2"})
	require.NoError(t, err)

	body, err := r.Resolve(context.Background(), reqs)
	require.NoError(t, err)
	assert.Equal(t, "lock --quiet a:b:1 c:d:2", string(body))
}

func TestCommandResolver_FailureCarriesStderr(t *testing.T) {
	script := stubScript(t, "#!/bin/sh\necho 'unresolvable version conflict' >&2\nexit 1\n")
	r := resolver.NewCommandResolver([]string{script}, nil)

	reqs, err := domain.ParseCoordinates([]string{"a:b:1"})
	require.NoError(t, err)

	_, err = r.Resolve(context.Background(), reqs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrResolutionFailed))
	assert.Contains(t, err.Error(), "unresolvable version conflict")
}

func TestCommandResolver_NoCommandConfigured(t *testing.T) {
	r := resolver.NewCommandResolver(nil, nil)

	_, err := r.Resolve(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrResolutionFailed))
}
