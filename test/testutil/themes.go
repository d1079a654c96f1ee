// Package testutil holds fixtures shared by package tests: theme
// directories on disk, an isolated home directory and catalog servers.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glorpus-work/hyprtheme/pkg/manifest"
	"github.com/mitchellh/go-homedir"
)

// SetHome points HOME at a fresh temporary directory for the duration of
// the test and returns it.
func SetHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.Reset()
	t.Cleanup(homedir.Reset)
	return home
}

// WriteTheme creates dir, writes m as its manifest along with an empty
// config fragment, and returns the manifest path.
func WriteTheme(t *testing.T, dir string, m manifest.Manifest) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create theme dir %s: %v", dir, err)
	}
	if m.Theme.Config == "" {
		m.Theme.Config = "./theme.conf"
	}
	configPath := m.Theme.Config
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(dir, configPath)
	}
	WriteFile(t, configPath, "# "+m.Name+"\n")

	path := filepath.Join(dir, manifest.FileName)
	if err := m.Save(path); err != nil {
		t.Fatalf("failed to write manifest %s: %v", path, err)
	}
	return path
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// ReadManifest loads the manifest at path or fails the test.
func ReadManifest(t *testing.T, path string) *manifest.Manifest {
	t.Helper()
	m, err := manifest.Load(path)
	if err != nil {
		t.Fatalf("failed to load manifest %s: %v", path, err)
	}
	return m
}
