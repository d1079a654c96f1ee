package activation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glorpus-work/hyprtheme/internal/logger"
	"github.com/glorpus-work/hyprtheme/pkg/errors"
	"github.com/glorpus-work/hyprtheme/pkg/fsutil"
	"github.com/glorpus-work/hyprtheme/pkg/hooks"
	"github.com/glorpus-work/hyprtheme/pkg/manifest"
	"github.com/glorpus-work/hyprtheme/pkg/theme"
)

// Engine runs the enable and disable state machine. Side effects that only
// affect the user's session (hooks, links, reload) are logged on failure and
// never abort the operation; manifest writes are returned.
type Engine struct {
	hooks    HookRunner
	reloader Reloader
}

// NewEngine creates an engine.
func NewEngine(hookRunner HookRunner, reloader Reloader) *Engine {
	return &Engine{hooks: hookRunner, reloader: reloader}
}

// Enable activates t. Enabling an enabled theme returns ErrAlreadyEnabled
// and changes nothing.
func (e *Engine) Enable(ctx context.Context, t *theme.Installed) error {
	if t.IsEnabled() {
		return errors.Wrapf(errors.ErrAlreadyEnabled, "%s", t.Name())
	}
	m := t.Manifest()
	m.Enabled = true

	e.RunHook(ctx, t, m.Theme.Load, hooks.Load)
	for _, link := range m.Links {
		if err := e.createLink(t, link); err != nil {
			logger.Warn("Failed to create link", logger.Fields{"theme": t.Name(), "error": err})
		}
	}

	if err := e.syncParent(t, true); err != nil {
		return err
	}
	if err := t.Save(); err != nil {
		return fmt.Errorf("failed to enable %s: %w", t.Name(), err)
	}

	e.Source(ctx, t)
	logger.Debug("Theme enabled", logger.Fields{"theme": t.Name(), "path": t.Path()})
	return nil
}

// Disable deactivates t. Disabling a disabled theme returns
// ErrAlreadyDisabled and changes nothing. The compositor is not reloaded.
func (e *Engine) Disable(ctx context.Context, t *theme.Installed) error {
	if !t.IsEnabled() {
		return errors.Wrapf(errors.ErrAlreadyDisabled, "%s", t.Name())
	}
	m := t.Manifest()
	m.Enabled = false

	e.RunHook(ctx, t, m.Theme.Unload, hooks.Unload)
	for _, link := range m.Links {
		e.removeLink(t, link)
	}

	if err := e.syncParent(t, false); err != nil {
		return err
	}
	if err := t.Save(); err != nil {
		return fmt.Errorf("failed to disable %s: %w", t.Name(), err)
	}

	logger.Debug("Theme disabled", logger.Fields{"theme": t.Name(), "path": t.Path()})
	return nil
}

// RunHook resolves and runs a declared hook. An empty hook is a no-op.
func (e *Engine) RunHook(ctx context.Context, t *theme.Installed, hook string, op hooks.Operation) {
	if hook == "" {
		return
	}
	fields := logger.Fields{"theme": t.Name(), "operation": string(op), "hook": hook}
	path, err := t.ResolvePath(hook)
	if err != nil {
		fields["error"] = err
		logger.Warn("Failed to resolve hook", fields)
		return
	}
	hc := hooks.Context{ThemeName: t.Name(), ThemeDir: t.Dir(), Operation: op}
	if err := e.hooks.Run(ctx, path, hc); err != nil {
		fields["error"] = err
		logger.Warn("Hook failed", fields)
	}
}

// Source asks the compositor to read the theme's config fragment.
func (e *Engine) Source(ctx context.Context, t *theme.Installed) {
	path, err := t.ConfigPath()
	if err != nil {
		logger.Warn("Failed to resolve theme config", logger.Fields{"theme": t.Name(), "error": err})
		return
	}
	if err := e.reloader.Source(ctx, path); err != nil {
		logger.Warn("Failed to reload compositor", logger.Fields{"theme": t.Name(), "config": path, "error": err})
	}
}

func (e *Engine) createLink(t *theme.Installed, link manifest.Link) error {
	from, to, err := resolveLink(t, link)
	if err != nil {
		return err
	}

	if fsutil.Exists(to) {
		if fsutil.IsSymlinkTo(to, from) {
			logger.Debug("Link already in place", logger.Fields{"from": from, "to": to})
			return nil
		}
		if err := backup(to); err != nil {
			logger.Warn("Failed to back up existing file", logger.Fields{"theme": t.Name(), "error": err})
		}
	}

	if err := os.MkdirAll(filepath.Dir(to), fsutil.DirModeDefault); err != nil {
		return &LinkError{Op: OpLink, Path: to, Err: err}
	}
	if err := os.Symlink(from, to); err != nil {
		return &LinkError{Op: OpLink, Path: to, Err: err}
	}
	logger.Debug("Linked", logger.Fields{"from": from, "to": to})
	return nil
}

func backup(to string) error {
	bak := to + fsutil.BackupSuffix
	if fsutil.Exists(bak) {
		return &LinkError{Op: OpBackup, Path: bak, Err: os.ErrExist}
	}
	if err := os.Rename(to, bak); err != nil {
		return &LinkError{Op: OpBackup, Path: to, Err: err}
	}
	logger.Debug("Backed up", logger.Fields{"path": to, "backup": bak})
	return nil
}

func (e *Engine) removeLink(t *theme.Installed, link manifest.Link) {
	_, to, err := resolveLink(t, link)
	if err != nil {
		logger.Warn("Failed to resolve link", logger.Fields{"theme": t.Name(), "error": err})
		return
	}

	if err := fsutil.RemoveIfSymlink(to); err != nil {
		if !os.IsNotExist(err) {
			// Something else owns the path now; leave it and its backup alone.
			logger.Warn("Failed to remove link", logger.Fields{"theme": t.Name(), "error": &LinkError{Op: OpUnlink, Path: to, Err: err}})
			return
		}
		logger.Debug("Link already removed", logger.Fields{"to": to})
	}

	bak := to + fsutil.BackupSuffix
	if !fsutil.Exists(bak) {
		logger.Warn("no backup found", logger.Fields{"theme": t.Name(), "path": to})
		return
	}
	if err := os.Rename(bak, to); err != nil {
		logger.Warn("Failed to restore backup", logger.Fields{"theme": t.Name(), "error": &LinkError{Op: OpRestore, Path: bak, Err: err}})
		return
	}
	logger.Debug("Restored backup", logger.Fields{"path": to})
}

func resolveLink(t *theme.Installed, link manifest.Link) (string, string, error) {
	from, err := t.ResolvePath(link.From)
	if err != nil {
		return "", "", &LinkError{Op: OpLink, Path: link.From, Err: err}
	}
	to, err := t.ResolvePath(link.To)
	if err != nil {
		return "", "", &LinkError{Op: OpLink, Path: link.To, Err: err}
	}
	return from, to, nil
}

// syncParent re-reads the parent manifest of a module and mirrors the
// module's enabled flag into the matching entry.
func (e *Engine) syncParent(t *theme.Installed, enabled bool) error {
	if !t.IsModule() {
		return nil
	}
	parentPath := t.ParentPath()
	parent, err := manifest.Load(parentPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", errors.ErrParentManifest, t.Name(), err)
	}
	if n := parent.SetModuleEnabled(filepath.Dir(parentPath), t.Path(), enabled); n == 0 {
		logger.Warn("Module not referenced by parent", logger.Fields{"module": t.Path(), "parent": parentPath})
	}
	if err := parent.Save(parentPath); err != nil {
		return fmt.Errorf("%w: %s: %w", errors.ErrParentManifest, t.Name(), err)
	}
	return nil
}
