package resolver_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glorpus-work/hyprtheme/pkg/catalog"
	pkgerrors "github.com/glorpus-work/hyprtheme/pkg/errors"
	"github.com/glorpus-work/hyprtheme/pkg/manifest"
	"github.com/glorpus-work/hyprtheme/pkg/model"
	"github.com/glorpus-work/hyprtheme/pkg/resolver"
	"github.com/glorpus-work/hyprtheme/pkg/theme"
	"github.com/glorpus-work/hyprtheme/test/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tree struct {
	rootA, rootB string
	nordPath     string
}

// newTree lays out two theme dirs:
//
//	A/gruvbox            (dev branch)
//	A/nested/.git/x      (ignored)
//	A/broken             (unparsable)
//	B/nord               (module waybar, whose own dir holds a stray theme)
//	B/gruvbox            (no branch)
func newTree(t *testing.T) tree {
	t.Helper()
	base := t.TempDir()
	tr := tree{rootA: filepath.Join(base, "A"), rootB: filepath.Join(base, "B")}

	testutil.WriteTheme(t, filepath.Join(tr.rootA, "gruvbox"), manifest.Manifest{Name: "gruvbox", Repository: "https://github.com/x/gruvbox", Branch: "dev"})
	testutil.WriteTheme(t, filepath.Join(tr.rootA, "nested", ".git", "x"), manifest.Manifest{Name: "hidden"})
	testutil.WriteFile(t, filepath.Join(tr.rootA, "broken", manifest.FileName), "not = [toml")

	tr.nordPath = testutil.WriteTheme(t, filepath.Join(tr.rootB, "nord"), manifest.Manifest{
		Name:       "nord",
		Repository: "https://github.com/x/nord",
		Modules:    []manifest.Module{{Config: "./modules/waybar/hyprtheme.toml", Enabled: true}},
	})
	testutil.WriteTheme(t, filepath.Join(tr.rootB, "nord", "modules", "waybar"), manifest.Manifest{Name: "waybar", Enabled: true})
	testutil.WriteTheme(t, filepath.Join(tr.rootB, "nord", "extras", "stray"), manifest.Manifest{Name: "stray"})
	testutil.WriteTheme(t, filepath.Join(tr.rootB, "gruvbox"), manifest.Manifest{Name: "gruvbox", Repository: "https://github.com/x/gruvbox"})
	return tr
}

func TestResolve_InstalledIgnoresCatalog(t *testing.T) {
	tr := newTree(t)
	srv := testutil.NewCatalogServer(t, map[string][]model.CatalogRecord{
		"/themes.json": {{Name: "nord", Repository: "https://github.com/other/nord"}},
	})
	r := resolver.New(catalog.NewHTTPClient(time.Second, ""))

	entry, err := r.Resolve(context.Background(), "nord", []string{tr.rootA, tr.rootB}, []string{srv.URLFor("/themes.json")})
	require.NoError(t, err)

	require.Equal(t, theme.KindInstalled, entry.Kind())
	installed, ok := entry.Installed()
	require.True(t, ok)
	assert.Equal(t, tr.nordPath, installed.Path())
	assert.Equal(t, 0, srv.Requests)
}

func TestResolve_FallsBackToCatalog(t *testing.T) {
	tr := newTree(t)
	srv := testutil.NewCatalogServer(t, map[string][]model.CatalogRecord{
		"/themes.json": {
			{Name: "tokyo", Repository: "https://github.com/x/tokyo", Branch: "main"},
			{Name: "tokyo", Repository: "https://github.com/x/tokyo", Branch: "night"},
		},
	})
	r := resolver.New(catalog.NewHTTPClient(time.Second, ""))

	entry, err := r.Resolve(context.Background(), "tokyo:night", []string{tr.rootA, tr.rootB}, []string{srv.URLFor("/themes.json")})
	require.NoError(t, err)
	online, ok := entry.Online()
	require.True(t, ok)
	assert.Equal(t, "night", online.Theme().Branch())
	assert.Equal(t, 1, srv.Requests)

	_, err = r.Resolve(context.Background(), "unknown", []string{tr.rootA}, []string{srv.URLFor("/themes.json")})
	assert.ErrorIs(t, err, pkgerrors.ErrThemeNotFound)
}

func TestResolve_CatalogFailure(t *testing.T) {
	srv := testutil.NewCatalogServer(t, nil)
	r := resolver.New(catalog.NewHTTPClient(time.Second, ""))

	_, err := r.Resolve(context.Background(), "nord", []string{t.TempDir()}, []string{srv.URLFor("/missing.json")})
	assert.ErrorIs(t, err, pkgerrors.ErrCatalogFetch)
}

func TestResolve_NoCatalogs(t *testing.T) {
	r := resolver.New(nil)
	_, err := r.Resolve(context.Background(), "nord", []string{t.TempDir()}, nil)
	assert.ErrorIs(t, err, pkgerrors.ErrThemeNotFound)
}

func TestResolveOffline(t *testing.T) {
	tr := newTree(t)
	roots := []string{tr.rootA, tr.rootB}

	tests := []struct {
		name       string
		identifier string
		wantName   string
		wantDir    string
		wantErr    error
	}{
		{name: "first root wins", identifier: "gruvbox", wantName: "gruvbox", wantDir: filepath.Join(tr.rootA, "gruvbox")},
		{name: "branch selects", identifier: "gruvbox:dev", wantName: "gruvbox", wantDir: filepath.Join(tr.rootA, "gruvbox")},
		{name: "repository only", identifier: "@https://github.com/x/nord", wantName: "nord", wantDir: filepath.Join(tr.rootB, "nord")},
		{name: "module reachable", identifier: "waybar", wantName: "waybar", wantDir: filepath.Join(tr.rootB, "nord", "modules", "waybar")},
		{name: "git dir skipped", identifier: "hidden", wantErr: pkgerrors.ErrThemeNotFound},
		{name: "no descent below a theme", identifier: "stray", wantErr: pkgerrors.ErrThemeNotFound},
		{name: "branch mismatch", identifier: "nord:dev", wantErr: pkgerrors.ErrThemeNotFound},
		{name: "empty identifier", identifier: "", wantErr: pkgerrors.ErrInvalidIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.ResolveOffline(tt.identifier, roots)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got.Name())
			assert.Equal(t, tt.wantDir, got.Dir())
		})
	}
}

func TestResolveOffline_ModuleKnowsParent(t *testing.T) {
	tr := newTree(t)
	mod, err := resolver.ResolveOffline("waybar", []string{tr.rootB})
	require.NoError(t, err)
	assert.True(t, mod.IsModule())
	assert.Equal(t, tr.nordPath, mod.ParentPath())
}

func TestFetchAllInstalled(t *testing.T) {
	tr := newTree(t)
	missing := filepath.Join(t.TempDir(), "missing")

	all, err := resolver.FetchAllInstalled([]string{missing, tr.rootA, tr.rootB})
	require.NoError(t, err)

	var got []string
	for _, installed := range all {
		got = append(got, installed.Name()+"@"+filepath.Base(filepath.Dir(installed.Dir())))
	}
	assert.Equal(t, []string{"gruvbox@A", "gruvbox@B", "nord@B", "waybar@modules"}, got)
}
