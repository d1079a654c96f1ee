//go:generate mockgen -destination=./mocks/activation.go . HookRunner,Reloader

// Package activation enables and disables installed themes: it runs their
// hooks, projects their links onto the filesystem and keeps module state in
// sync with the parent manifest.
package activation

import (
	"context"
	"fmt"

	"github.com/glorpus-work/hyprtheme/pkg/hooks"
)

// HookRunner executes a resolved load or unload hook.
type HookRunner interface {
	Run(ctx context.Context, path string, hc hooks.Context) error
}

// Reloader makes the compositor source a config fragment.
type Reloader interface {
	Source(ctx context.Context, path string) error
}

// Link operations reported by LinkError.
const (
	OpBackup  = "backup"
	OpLink    = "link"
	OpUnlink  = "unlink"
	OpRestore = "restore"
)

// LinkError records a failed step of projecting or removing a link.
type LinkError struct {
	Op   string
	Path string
	Err  error
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *LinkError) Unwrap() error { return e.Err }
