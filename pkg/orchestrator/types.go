//go:generate mockgen -destination=./mocks/orchestrator.go . CatalogFetcher,SourceControl,Compositor,HookRunner

package orchestrator

import (
	"context"

	"github.com/glorpus-work/hyprtheme/pkg/hooks"
	"github.com/glorpus-work/hyprtheme/pkg/model"
)

// CatalogFetcher is the subset of the catalog client used by the orchestrator.
type CatalogFetcher interface {
	Fetch(ctx context.Context, urls []string, exclude model.ThemeIDSet) ([]model.Theme, error)
}

// SourceControl clones and updates theme repositories.
type SourceControl interface {
	Clone(ctx context.Context, repository, branch, dest string) error
	FetchBranch(ctx context.Context, repoPath, branch string) error
}

// Compositor reloads the running compositor.
type Compositor interface {
	Source(ctx context.Context, path string) error
	Reload(ctx context.Context) error
}

// HookRunner executes theme hooks.
type HookRunner interface {
	Run(ctx context.Context, path string, hc hooks.Context) error
}

// Orchestrator ties the resolver, catalog, source control and activation
// engine together for the CLI workflows.
type Orchestrator struct {
	Catalog    CatalogFetcher
	VCS        SourceControl
	Compositor Compositor
	HookRunner HookRunner
	Hooks      Hooks // Hooks for progress and event notifications

	ThemeDirs       []string // searched in order, installs go to the first
	CatalogURLs     []string
	DefaultBranch   string
	ReloadOnDisable bool
	Version         string // checked against manifest requires constraints
}

// Event represents a simple progress notification.
type Event struct {
	Phase string // resolving|downloading|enabling|disabling|updating|uninstalling|reloading|done
	ID    string // theme identifier or path
	Msg   string
}

// Hooks carries callbacks for progress events.
type Hooks struct {
	OnEvent func(Event)
}

// ListOptions select what List returns.
type ListOptions struct {
	Installed     bool
	Online        bool
	ShowInstalled bool // keep catalog entries that are already installed
}
