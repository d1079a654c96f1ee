//go:generate mockgen -destination=./mocks/theme.go . Cloner,BranchFetcher

// Package theme models themes that are installed on disk and themes that
// are only known from an online catalog.
package theme

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glorpus-work/hyprtheme/internal/logger"
	"github.com/glorpus-work/hyprtheme/pkg/errors"
	"github.com/glorpus-work/hyprtheme/pkg/fsutil"
	"github.com/glorpus-work/hyprtheme/pkg/manifest"
	"github.com/glorpus-work/hyprtheme/pkg/model"
)

// DefaultBranch is fetched by Update when the theme declares no branch.
const DefaultBranch = "master"

// BranchFetcher fetches a branch of a working copy from its origin remote.
type BranchFetcher interface {
	FetchBranch(ctx context.Context, repoPath, branch string) error
}

// Installed is a manifest loaded from disk together with its location.
// It goes stale as soon as the manifest file changes; reload instead of
// holding on to it across mutating operations.
type Installed struct {
	manifest   *manifest.Manifest
	path       string
	dir        string
	parentPath string
	base       model.Theme
}

// LoadInstalled parses the manifest at path. parentPath is the manifest
// path of the parent theme when the loaded node is a module, or "".
func LoadInstalled(path, parentPath string) (*Installed, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WrapIO(err, "failed to resolve %s", path)
	}
	m, err := manifest.Load(absPath)
	if err != nil {
		return nil, err
	}
	return &Installed{
		manifest:   m,
		path:       absPath,
		dir:        filepath.Dir(absPath),
		parentPath: parentPath,
		base:       model.NewTheme(m.Name, m.Repository, m.Branch, m.Description, nil),
	}, nil
}

// Manifest returns the in-memory manifest owned by this theme.
func (t *Installed) Manifest() *manifest.Manifest { return t.manifest }

// Path returns the absolute manifest path.
func (t *Installed) Path() string { return t.path }

// Dir returns the directory every relative manifest path is resolved against.
func (t *Installed) Dir() string { return t.dir }

// ParentPath returns the parent manifest path of a module, or "".
func (t *Installed) ParentPath() string { return t.parentPath }

func (t *Installed) IsModule() bool     { return t.parentPath != "" }
func (t *Installed) IsEnabled() bool    { return t.manifest.Enabled }
func (t *Installed) Theme() model.Theme { return t.base }
func (t *Installed) Name() string       { return t.base.Name() }
func (t *Installed) ID() model.ThemeID  { return t.base.ID() }

// ResolvePath resolves a manifest-relative path against Dir.
func (t *Installed) ResolvePath(p string) (string, error) {
	return fsutil.ResolvePath(t.dir, p)
}

// ConfigPath returns the resolved compositor config fragment.
func (t *Installed) ConfigPath() (string, error) {
	return t.ResolvePath(t.manifest.Theme.Config)
}

// Save persists the in-memory manifest to its file.
func (t *Installed) Save() error {
	return t.manifest.Save(t.path)
}

// Modules parses every referenced module. A module that fails to parse is
// left out so one broken module never hides its siblings.
func (t *Installed) Modules() []*Installed {
	return t.modules(false)
}

// EnabledModules is Modules restricted to entries enabled in this manifest.
func (t *Installed) EnabledModules() []*Installed {
	return t.modules(true)
}

func (t *Installed) modules(enabledOnly bool) []*Installed {
	var out []*Installed
	for _, ref := range t.manifest.Modules {
		if enabledOnly && !ref.Enabled {
			continue
		}
		path, err := t.ResolvePath(ref.Config)
		if err != nil {
			logger.Debug("Skipping module with unresolvable path", logger.Fields{"theme": t.Name(), "module": ref.Config, "error": err})
			continue
		}
		mod, err := LoadInstalled(path, t.path)
		if err != nil {
			logger.Debug("Skipping unreadable module", logger.Fields{"theme": t.Name(), "module": path, "error": err})
			continue
		}
		out = append(out, mod)
	}
	return out
}

// Uninstall deletes the theme directory and returns the theme as an online
// entry so it can still be shown or reinstalled. Links of an enabled theme
// are not removed.
func (t *Installed) Uninstall() (*Online, error) {
	online := NewOnline(t.base)
	if err := os.RemoveAll(t.dir); err != nil {
		return nil, errors.WrapIO(err, "failed to remove %s", t.dir)
	}
	return online, nil
}

// Update fetches the theme's branch from origin. Themes without a declared
// branch fetch fallback, or DefaultBranch when fallback is empty. The working
// tree is not touched.
func (t *Installed) Update(ctx context.Context, fetcher BranchFetcher, fallback string) error {
	branch := t.base.Branch()
	if branch == "" {
		branch = fallback
	}
	if branch == "" {
		branch = DefaultBranch
	}
	if err := fetcher.FetchBranch(ctx, t.dir, branch); err != nil {
		return fmt.Errorf("failed to update %s: %w", t.Name(), err)
	}
	return nil
}

func (t *Installed) String() string {
	state := "disabled"
	if t.IsEnabled() {
		state = "enabled"
	}
	return fmt.Sprintf("%s [installed, %s] %s", t.base.Identifier(), state, t.dir)
}
