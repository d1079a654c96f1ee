package fsutil

import (
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.Reset()
	t.Cleanup(homedir.Reset)
	return home
}

func TestResolvePath(t *testing.T) {
	home := setHome(t)
	base := filepath.Join(t.TempDir(), "nord")

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "relative", path: "./dark.conf", want: filepath.Join(base, "dark.conf")},
		{name: "relative nested", path: "modules/waybar/hyprtheme.toml", want: filepath.Join(base, "modules", "waybar", "hyprtheme.toml")},
		{name: "absolute", path: "/etc/hypr/theme.conf", want: "/etc/hypr/theme.conf"},
		{name: "tilde", path: "~/.config/app/theme.conf", want: filepath.Join(home, ".config", "app", "theme.conf")},
		{name: "bare tilde", path: "~", want: home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePath(base, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandHome(t *testing.T) {
	home := setHome(t)

	got, err := ExpandHome("~/.config/hypr/themes")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "hypr", "themes"), got)

	got, err = ExpandHome("relative/dir")
	require.NoError(t, err)
	assert.Equal(t, "relative/dir", got)
}

func TestExpandAll(t *testing.T) {
	home := setHome(t)

	got, err := ExpandAll([]string{"~/themes", "/opt/themes"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(home, "themes"), "/opt/themes"}, got)
}
