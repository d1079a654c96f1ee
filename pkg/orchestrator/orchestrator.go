package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/hyprtheme/internal/logger"
	"github.com/glorpus-work/hyprtheme/pkg/activation"
	"github.com/glorpus-work/hyprtheme/pkg/errors"
	"github.com/glorpus-work/hyprtheme/pkg/fsutil"
	"github.com/glorpus-work/hyprtheme/pkg/hooks"
	"github.com/glorpus-work/hyprtheme/pkg/model"
	"github.com/glorpus-work/hyprtheme/pkg/resolver"
	"github.com/glorpus-work/hyprtheme/pkg/theme"
)

// New constructs an Orchestrator from its collaborators. Helper for wiring.
func New(catalog CatalogFetcher, vcs SourceControl, compositor Compositor, runner HookRunner, h Hooks) *Orchestrator {
	return &Orchestrator{
		Catalog:    catalog,
		VCS:        vcs,
		Compositor: compositor,
		HookRunner: runner,
		Hooks:      h,
	}
}

func emit(h Hooks, e Event) {
	if h.OnEvent != nil {
		h.OnEvent(e)
	}
}

func (o *Orchestrator) engine() (*activation.Engine, error) {
	if o.HookRunner == nil || o.Compositor == nil {
		return nil, fmt.Errorf("activation engine is not configured")
	}
	return activation.NewEngine(o.HookRunner, o.Compositor), nil
}

func (o *Orchestrator) newResolver() *resolver.Resolver {
	return resolver.New(o.Catalog)
}

// List returns installed themes followed by catalog themes. Catalog themes
// whose ID is installed are dropped unless opts.ShowInstalled is set.
func (o *Orchestrator) List(ctx context.Context, opts ListOptions) ([]theme.Entry, error) {
	installed, err := resolver.FetchAllInstalled(o.ThemeDirs)
	if err != nil {
		return nil, err
	}

	var entries []theme.Entry
	if opts.Installed {
		for _, t := range installed {
			entries = append(entries, theme.InstalledEntry(t))
		}
	}
	if !opts.Online || len(o.CatalogURLs) == 0 {
		return entries, nil
	}
	if o.Catalog == nil {
		return nil, fmt.Errorf("catalog fetcher is not configured")
	}

	exclude := make(model.ThemeIDSet)
	if !opts.ShowInstalled {
		for _, t := range installed {
			exclude[t.ID()] = struct{}{}
		}
	}
	emit(o.Hooks, Event{Phase: "resolving", Msg: "fetching catalogs"})
	online, err := o.Catalog.Fetch(ctx, o.CatalogURLs, exclude)
	if err != nil {
		return nil, err
	}
	for _, t := range online {
		entries = append(entries, theme.OnlineEntry(theme.NewOnline(t)))
	}
	return entries, nil
}

// Install resolves identifier and downloads it when it is only known online.
func (o *Orchestrator) Install(ctx context.Context, identifier string) (*theme.Installed, error) {
	emit(o.Hooks, Event{Phase: "resolving", ID: identifier})
	entry, err := o.newResolver().Resolve(ctx, identifier, o.ThemeDirs, o.CatalogURLs)
	if err != nil {
		return nil, err
	}

	switch entry.Kind() {
	case theme.KindInstalled:
		installed, _ := entry.Installed()
		return installed, errors.Wrapf(errors.ErrAlreadyInstalled, "%s at %s", installed.Name(), installed.Dir())
	case theme.KindOnline:
		online, _ := entry.Online()
		return o.download(ctx, online)
	default:
		return nil, errors.Wrapf(errors.ErrThemeNotFound, "%s", identifier)
	}
}

// InstallFromGit installs a theme straight from a repository that is not
// listed in any catalog. The theme is named after the repository.
func (o *Orchestrator) InstallFromGit(ctx context.Context, repository, branch string) (*theme.Installed, error) {
	repository = strings.TrimSpace(repository)
	name := RepositoryName(repository)
	if name == "" {
		return nil, errors.Wrapf(errors.ErrInvalidIdentifier, "cannot derive a theme name from %q", repository)
	}

	id := model.Identifier{Branch: branch, Repository: repository}
	if installed, err := resolver.ResolveOffline(id.String(), o.ThemeDirs); err == nil {
		return installed, errors.Wrapf(errors.ErrAlreadyInstalled, "%s at %s", installed.Name(), installed.Dir())
	}

	return o.download(ctx, theme.NewOnline(model.NewTheme(name, repository, branch, "", nil)))
}

// RepositoryName derives a directory-friendly name from a repository
// location: the last path element without a .git suffix.
func RepositoryName(repository string) string {
	trimmed := strings.TrimRight(repository, "/")
	trimmed = strings.TrimSuffix(trimmed, ".git")
	if i := strings.LastIndexAny(trimmed, "/:"); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	return trimmed
}

func (o *Orchestrator) download(ctx context.Context, online *theme.Online) (*theme.Installed, error) {
	if o.VCS == nil {
		return nil, fmt.Errorf("source control client is not configured")
	}
	root, err := o.installRoot()
	if err != nil {
		return nil, err
	}

	emit(o.Hooks, Event{Phase: "downloading", ID: online.Theme().Identifier(), Msg: filepath.Join(root, online.DirName())})
	installed, err := online.Download(ctx, o.VCS, root)
	if err != nil {
		return nil, err
	}
	emit(o.Hooks, Event{Phase: "done", ID: installed.Name(), Msg: installed.Dir()})
	return installed, nil
}

func (o *Orchestrator) installRoot() (string, error) {
	if len(o.ThemeDirs) == 0 {
		return "", errors.ErrNoThemeDirs
	}
	dirs, err := fsutil.ExpandAll(o.ThemeDirs[:1])
	if err != nil {
		return "", errors.WrapIO(err, "failed to resolve theme dir %s", o.ThemeDirs[0])
	}
	return dirs[0], nil
}

// Uninstall deletes an installed theme. An enabled theme is not disabled
// first, so its links are left dangling.
func (o *Orchestrator) Uninstall(_ context.Context, identifier string) (*theme.Online, error) {
	installed, err := resolver.ResolveOffline(identifier, o.ThemeDirs)
	if err != nil {
		return nil, err
	}
	if installed.IsEnabled() {
		logger.Warn("Uninstalling an enabled theme; its links are left in place", logger.Fields{"theme": installed.Name()})
	}

	emit(o.Hooks, Event{Phase: "uninstalling", ID: installed.Name(), Msg: installed.Dir()})
	online, err := installed.Uninstall()
	if err != nil {
		return nil, err
	}
	emit(o.Hooks, Event{Phase: "done", ID: installed.Name()})
	return online, nil
}

// Update fetches the branch of an installed theme from its origin.
func (o *Orchestrator) Update(ctx context.Context, identifier string) error {
	if o.VCS == nil {
		return fmt.Errorf("source control client is not configured")
	}
	installed, err := resolver.ResolveOffline(identifier, o.ThemeDirs)
	if err != nil {
		return err
	}

	emit(o.Hooks, Event{Phase: "updating", ID: installed.Name(), Msg: installed.Dir()})
	if err := installed.Update(ctx, o.VCS, o.DefaultBranch); err != nil {
		return err
	}
	emit(o.Hooks, Event{Phase: "done", ID: installed.Name()})
	return nil
}

// Enable activates an installed theme after checking its version constraint.
func (o *Orchestrator) Enable(ctx context.Context, identifier string) (*theme.Installed, error) {
	engine, err := o.engine()
	if err != nil {
		return nil, err
	}
	installed, err := resolver.ResolveOffline(identifier, o.ThemeDirs)
	if err != nil {
		return nil, err
	}
	if o.Version != "" {
		if err := installed.Manifest().CheckCompatible(o.Version); err != nil {
			return nil, err
		}
	}

	emit(o.Hooks, Event{Phase: "enabling", ID: installed.Name(), Msg: installed.Path()})
	if err := engine.Enable(ctx, installed); err != nil {
		return installed, err
	}
	emit(o.Hooks, Event{Phase: "done", ID: installed.Name()})
	return installed, nil
}

// Disable deactivates an installed theme. With ReloadOnDisable the
// compositor reloads its whole config and the remaining enabled themes are
// sourced again.
func (o *Orchestrator) Disable(ctx context.Context, identifier string) (*theme.Installed, error) {
	engine, err := o.engine()
	if err != nil {
		return nil, err
	}
	installed, err := resolver.ResolveOffline(identifier, o.ThemeDirs)
	if err != nil {
		return nil, err
	}

	emit(o.Hooks, Event{Phase: "disabling", ID: installed.Name(), Msg: installed.Path()})
	if err := engine.Disable(ctx, installed); err != nil {
		return installed, err
	}

	if o.ReloadOnDisable {
		emit(o.Hooks, Event{Phase: "reloading"})
		if err := o.Compositor.Reload(ctx); err != nil {
			logger.Warn("Failed to reload compositor", logger.Fields{"error": err})
		}
		if err := o.Init(ctx); err != nil {
			return installed, err
		}
	}
	emit(o.Hooks, Event{Phase: "done", ID: installed.Name()})
	return installed, nil
}

// Init re-applies every enabled theme: each runs its load hook and has its
// config sourced, followed by its enabled modules.
func (o *Orchestrator) Init(ctx context.Context) error {
	engine, err := o.engine()
	if err != nil {
		return err
	}
	enabled, err := o.enabledTree()
	if err != nil {
		return err
	}
	for _, t := range enabled {
		emit(o.Hooks, Event{Phase: "reloading", ID: t.Name(), Msg: t.Path()})
		engine.RunHook(ctx, t, t.Manifest().Theme.Load, hooks.Init)
		engine.Source(ctx, t)
	}
	return nil
}

// SourcePaths returns the config fragments of every enabled theme and its
// enabled modules in the order Init sources them.
func (o *Orchestrator) SourcePaths() ([]string, error) {
	enabled, err := o.enabledTree()
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(enabled))
	for _, t := range enabled {
		path, err := t.ConfigPath()
		if err != nil {
			logger.Warn("Failed to resolve theme config", logger.Fields{"theme": t.Name(), "error": err})
			continue
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// enabledTree lists enabled top-level themes, each followed by its enabled
// modules. Modules of a disabled theme are left out.
func (o *Orchestrator) enabledTree() ([]*theme.Installed, error) {
	all, err := resolver.FetchAllInstalled(o.ThemeDirs)
	if err != nil {
		return nil, err
	}
	var out []*theme.Installed
	for _, t := range all {
		if t.IsModule() || !t.IsEnabled() {
			continue
		}
		out = append(out, t)
		for _, mod := range t.EnabledModules() {
			if mod.IsEnabled() {
				out = append(out, mod)
			}
		}
	}
	return out, nil
}
