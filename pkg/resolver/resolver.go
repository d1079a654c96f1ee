// Package resolver finds themes by identifier, first among the themes
// installed under the configured theme directories and then in the online
// catalogs.
package resolver

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/glorpus-work/hyprtheme/internal/logger"
	"github.com/glorpus-work/hyprtheme/pkg/errors"
	"github.com/glorpus-work/hyprtheme/pkg/fsutil"
	"github.com/glorpus-work/hyprtheme/pkg/manifest"
	"github.com/glorpus-work/hyprtheme/pkg/model"
	"github.com/glorpus-work/hyprtheme/pkg/theme"
)

// Catalog fetches the union of the online catalogs.
type Catalog interface {
	Fetch(ctx context.Context, urls []string, exclude model.ThemeIDSet) ([]model.Theme, error)
}

// Resolver resolves identifiers against installed themes and catalogs.
type Resolver struct {
	catalog Catalog
}

// New creates a resolver. catalog may be nil when only offline resolution
// is needed.
func New(catalog Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// errStop ends a walk early once a match is found.
var errStop = stderrors.New("stop walking")

// Resolve returns the first installed theme under roots matching identifier.
// Only when nothing installed matches are the catalogs consulted.
func (r *Resolver) Resolve(ctx context.Context, identifier string, roots, catalogURLs []string) (theme.Entry, error) {
	id, err := model.ParseIdentifier(identifier)
	if err != nil {
		return theme.Entry{}, err
	}

	installed, err := findInstalled(id, roots)
	if err == nil {
		return theme.InstalledEntry(installed), nil
	}
	if !stderrors.Is(err, errors.ErrThemeNotFound) {
		return theme.Entry{}, err
	}
	if len(catalogURLs) == 0 || r.catalog == nil {
		return theme.Entry{}, err
	}

	logger.Debug("Theme not installed, searching catalogs", logger.Fields{"identifier": identifier})
	online, err := r.catalog.Fetch(ctx, catalogURLs, nil)
	if err != nil {
		return theme.Entry{}, fmt.Errorf("failed to resolve %s: %w", identifier, err)
	}
	for _, t := range online {
		if id.Matches(t) {
			return theme.OnlineEntry(theme.NewOnline(t)), nil
		}
	}
	return theme.Entry{}, errors.Wrapf(errors.ErrThemeNotFound, "%s", identifier)
}

// ResolveOffline returns the first installed theme under roots matching
// identifier without touching the network.
func ResolveOffline(identifier string, roots []string) (*theme.Installed, error) {
	id, err := model.ParseIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	return findInstalled(id, roots)
}

// FetchAllInstalled returns every installed theme under roots, each
// followed by its module tree.
func FetchAllInstalled(roots []string) ([]*theme.Installed, error) {
	var all []*theme.Installed
	err := walkInstalled(roots, func(t *theme.Installed) bool {
		all = append(all, t)
		return false
	})
	return all, err
}

func findInstalled(id model.Identifier, roots []string) (*theme.Installed, error) {
	var found *theme.Installed
	err := walkInstalled(roots, func(t *theme.Installed) bool {
		if id.Matches(t.Theme()) {
			found = t
			return true
		}
		return false
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.Wrapf(errors.ErrThemeNotFound, "%s", id)
	}
	return found, nil
}

// walkInstalled visits every installed theme and module in traversal order
// until visit returns true.
func walkInstalled(roots []string, visit func(*theme.Installed) bool) error {
	seen := make(map[string]bool)
	for _, root := range roots {
		dir, err := fsutil.ExpandHome(root)
		if err != nil {
			return errors.WrapIO(err, "failed to expand theme dir %s", root)
		}
		if dir, err = filepath.Abs(dir); err != nil {
			return errors.WrapIO(err, "failed to resolve theme dir %s", root)
		}
		if _, err := os.Stat(dir); err != nil {
			logger.Debug("Skipping missing theme dir", logger.Fields{"dir": dir})
			continue
		}

		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Debug("Skipping unreadable path", logger.Fields{"path": path, "error": err})
				return nil
			}
			if !d.IsDir() {
				return nil
			}
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			manifestPath := filepath.Join(path, manifest.FileName)
			if !fsutil.Exists(manifestPath) {
				return nil
			}

			t, err := theme.LoadInstalled(manifestPath, "")
			if err != nil {
				logger.Debug("Skipping unreadable theme", logger.Fields{"path": manifestPath, "error": err})
				return filepath.SkipDir
			}
			if visitTree(t, seen, visit) {
				return errStop
			}
			return filepath.SkipDir
		})
		if stderrors.Is(err, errStop) {
			return nil
		}
		if err != nil {
			return errors.WrapIO(err, "failed to scan theme dir %s", dir)
		}
	}
	return nil
}

func visitTree(t *theme.Installed, seen map[string]bool, visit func(*theme.Installed) bool) bool {
	if seen[t.Path()] {
		return false
	}
	seen[t.Path()] = true
	if visit(t) {
		return true
	}
	for _, mod := range t.Modules() {
		if visitTree(mod, seen, visit) {
			return true
		}
	}
	return false
}
