package reload_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	pkgerrors "github.com/glorpus-work/hyprtheme/pkg/errors"
	"github.com/glorpus-work/hyprtheme/pkg/reload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(reload.Shell); err != nil {
		t.Skipf("no %s available", reload.Shell)
	}
}

func TestSource_PassesPath(t *testing.T) {
	requireShell(t)
	out := filepath.Join(t.TempDir(), "sourced")
	h := reload.NewHyprctl(`printf '%s' "$1" > "`+out+`"`, "true")

	path := "/themes/my theme/theme.conf"
	require.NoError(t, h.Source(context.Background(), path))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, path, string(data))
}

func TestReload(t *testing.T) {
	requireShell(t)
	out := filepath.Join(t.TempDir(), "reloaded")
	h := reload.NewHyprctl("true", `touch "`+out+`"`)

	require.NoError(t, h.Reload(context.Background()))
	assert.FileExists(t, out)
}

func TestFailure(t *testing.T) {
	requireShell(t)
	h := reload.NewHyprctl("echo no socket >&2; exit 1", "exit 2")

	err := h.Source(context.Background(), "/x.conf")
	assert.ErrorIs(t, err, pkgerrors.ErrReload)
	assert.Contains(t, err.Error(), "no socket")

	assert.ErrorIs(t, h.Reload(context.Background()), pkgerrors.ErrReload)
}
