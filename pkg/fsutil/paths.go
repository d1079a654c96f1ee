package fsutil

import (
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// ExpandHome expands a leading "~" to the current user's home directory.
// Paths without the marker are returned unchanged.
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	return homedir.Expand(path)
}

// ResolvePath resolves a path declared in a manifest.
// Tilde-prefixed paths are expanded, absolute paths are used as-is and
// anything else is taken relative to base.
func ResolvePath(base, path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return "", err
		}
		return filepath.Clean(expanded), nil
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return filepath.Join(base, path), nil
}

// ExpandAll expands the home marker of every path and makes each absolute.
func ExpandAll(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		expanded, err := ExpandHome(p)
		if err != nil {
			return nil, err
		}
		abs, err := filepath.Abs(expanded)
		if err != nil {
			return nil, err
		}
		out = append(out, abs)
	}
	return out, nil
}
