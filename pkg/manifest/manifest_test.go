package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glorpus-work/hyprtheme/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nordManifest = `
name = "nord"
repo = "https://github.com/x/nord"
branch = "dev"
desc = "arctic"
enabled = false

[theme]
config = "./theme.conf"
load = "./scripts/load.sh"

[[module]]
config = "modules/waybar/hyprtheme.toml"
enabled = true

[[link]]
from = "./dark.conf"
to = "~/.config/app/theme.conf"
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(nordManifest))
	require.NoError(t, err)

	assert.Equal(t, "nord", m.Name)
	assert.Equal(t, "https://github.com/x/nord", m.Repository)
	assert.Equal(t, "dev", m.Branch)
	assert.Equal(t, "arctic", m.Description)
	assert.False(t, m.Enabled)
	assert.Equal(t, ThemeFiles{Config: "./theme.conf", Load: "./scripts/load.sh"}, m.Theme)
	assert.Equal(t, []Module{{Config: "modules/waybar/hyprtheme.toml", Enabled: true}}, m.Modules)
	assert.Equal(t, []Link{{From: "./dark.conf", To: "~/.config/app/theme.conf"}}, m.Links)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "syntax error", doc: "name = \"nord\"\n[theme\nconfig = 1"},
		{name: "missing name", doc: "[theme]\nconfig = \"./theme.conf\""},
		{name: "missing theme table", doc: "name = \"nord\""},
		{name: "empty theme config", doc: "name = \"nord\"\n[theme]\nconfig = \"\""},
		{name: "wrong type", doc: "name = \"nord\"\nenabled = \"yes\"\n[theme]\nconfig = \"a\""},
		{name: "module without config", doc: "name = \"nord\"\n[theme]\nconfig = \"a\"\n[[module]]\nenabled = true"},
		{name: "link without target", doc: "name = \"nord\"\n[theme]\nconfig = \"a\"\n[[link]]\nfrom = \"a\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrManifestParse)
		})
	}
}

func TestParse_UnknownKeysTolerated(t *testing.T) {
	m, err := Parse([]byte("name = \"nord\"\nfuture_field = 3\n[theme]\nconfig = \"a\"\nextra = true"))
	require.NoError(t, err)
	assert.Equal(t, "nord", m.Name)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	original := &Manifest{
		Name:        "nord",
		Repository:  "https://github.com/x/nord",
		Branch:      "dev",
		Description: "arctic \"quoted\" description",
		Enabled:     true,
		Requires:    ">= 0.2.0",
		Theme: ThemeFiles{
			Config: "./theme.conf",
			Load:   "~/bin/load.sh",
			Unload: "./unload.tengo",
		},
		Modules: []Module{
			{Config: "modules/waybar/hyprtheme.toml", Enabled: true},
			{Config: "modules/rofi/hyprtheme.toml", Enabled: false},
		},
		Links: []Link{
			{From: "./dark.conf", To: "~/.config/app/theme.conf"},
			{From: "/abs/src", To: "/abs/dst"},
		},
	}

	require.NoError(t, original.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestSaveLoad_RoundTripMinimal(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	original := &Manifest{Name: "minimal", Theme: ThemeFiles{Config: "theme.conf"}}

	require.NoError(t, original.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSave_ReadOnlyDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	m := &Manifest{Name: "nord", Theme: ThemeFiles{Config: "a"}}
	err := m.Save(filepath.Join(dir, FileName))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrManifestWrite)
	assert.ErrorIs(t, err, errors.ErrIO)
}

func TestSetModuleEnabled(t *testing.T) {
	base := t.TempDir()
	m := &Manifest{
		Name:  "nord",
		Theme: ThemeFiles{Config: "a"},
		Modules: []Module{
			{Config: "modules/waybar/hyprtheme.toml"},
			{Config: "./modules/rofi/hyprtheme.toml"},
		},
	}

	matched := m.SetModuleEnabled(base, filepath.Join(base, "modules", "rofi", "hyprtheme.toml"), true)
	assert.Equal(t, 1, matched)
	assert.False(t, m.Modules[0].Enabled)
	assert.True(t, m.Modules[1].Enabled)

	matched = m.SetModuleEnabled(base, filepath.Join(base, "modules", "missing", "hyprtheme.toml"), true)
	assert.Equal(t, 0, matched)
}

func TestCheckCompatible(t *testing.T) {
	m := &Manifest{Name: "nord"}
	assert.NoError(t, m.CheckCompatible("0.1.0"))

	m.Requires = ">= 0.2.0"
	assert.NoError(t, m.CheckCompatible("0.3.1"))
	assert.ErrorIs(t, m.CheckCompatible("0.1.0"), errors.ErrIncompatibleTheme)

	m.Requires = "not a constraint"
	assert.ErrorIs(t, m.CheckCompatible("0.3.1"), errors.ErrManifestParse)
}
