package hooks_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	pkgerrors "github.com/glorpus-work/hyprtheme/pkg/errors"
	"github.com/glorpus-work/hyprtheme/pkg/hooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTengoExecutor(t *testing.T) {
	executor := hooks.NewTengoExecutor()
	hc := hooks.Context{
		ThemeName: "nord",
		ThemeDir:  "/themes/nord",
		Operation: hooks.Load,
		Vars: map[string]interface{}{
			"customVar": "customValue",
		},
	}

	t.Run("Execute empty script", func(t *testing.T) {
		err := executor.Execute(context.Background(), "noop", []byte(`// does nothing`), hc)
		assert.NoError(t, err)
	})

	t.Run("Execute script with compile error", func(t *testing.T) {
		err := executor.Execute(context.Background(), "broken", []byte(`non_existent_function()`), hc)
		assert.ErrorIs(t, err, pkgerrors.ErrHookExecution)
	})

	t.Run("Context module is importable", func(t *testing.T) {
		script := `
			ctx := import("context")
			err := ""
			if ctx.theme_name != "nord" || ctx.theme_dir != "/themes/nord" || ctx.operation != "load" {
				err = "unexpected context"
			}
		`
		err := executor.Execute(context.Background(), "context", []byte(script), hc)
		assert.NoError(t, err)
	})

	t.Run("Custom variables are accessible", func(t *testing.T) {
		script := `
			err := ""
			if customVar != "customValue" {
				err = "customVar not set"
			}
		`
		err := executor.Execute(context.Background(), "vars", []byte(script), hc)
		assert.NoError(t, err)
	})

	t.Run("Script reports failure through err", func(t *testing.T) {
		err := executor.Execute(context.Background(), "fail", []byte(`err := "wallpaper missing"`), hc)
		assert.ErrorIs(t, err, pkgerrors.ErrHookExecution)
		assert.Contains(t, err.Error(), "wallpaper missing")
	})
}

func TestTengoExecutor_ExecuteFile(t *testing.T) {
	executor := hooks.NewTengoExecutor()
	path := filepath.Join(t.TempDir(), "load.tengo")
	require.NoError(t, os.WriteFile(path, []byte(`fmt := import("fmt"); s := fmt.sprintf("%d", 1)`), 0o644))

	require.NoError(t, executor.ExecuteFile(context.Background(), path, hooks.Context{Operation: hooks.Load}))

	err := executor.ExecuteFile(context.Background(), filepath.Join(t.TempDir(), "missing.tengo"), hooks.Context{})
	assert.ErrorIs(t, err, pkgerrors.ErrIO)
}
