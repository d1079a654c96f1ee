// Package reload asks the running compositor to pick up theme config.
package reload

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/glorpus-work/hyprtheme/internal/logger"
	"github.com/glorpus-work/hyprtheme/pkg/errors"
)

// Default commands. The source command receives the fragment path as $1.
const (
	DefaultSourceCommand = `hyprctl keyword source "$1"`
	DefaultReloadCommand = "hyprctl reload"
)

// Shell runs both commands.
const Shell = "/bin/sh"

// Hyprctl runs the configured compositor commands through the shell.
type Hyprctl struct {
	sourceCommand string
	reloadCommand string
}

// NewHyprctl creates a reloader. Empty commands fall back to the defaults.
func NewHyprctl(sourceCommand, reloadCommand string) *Hyprctl {
	if sourceCommand == "" {
		sourceCommand = DefaultSourceCommand
	}
	if reloadCommand == "" {
		reloadCommand = DefaultReloadCommand
	}
	return &Hyprctl{sourceCommand: sourceCommand, reloadCommand: reloadCommand}
}

// Source makes the compositor read the config fragment at path.
func (h *Hyprctl) Source(ctx context.Context, path string) error {
	return h.run(ctx, h.sourceCommand, path)
}

// Reload makes the compositor re-read its whole configuration.
func (h *Hyprctl) Reload(ctx context.Context) error {
	return h.run(ctx, h.reloadCommand)
}

func (h *Hyprctl) run(ctx context.Context, command string, args ...string) error {
	// $0 is the program name, positional parameters follow.
	shellArgs := append([]string{"-c", command, "hyprtheme"}, args...)
	logger.Debug("Running reload command", logger.Fields{"command": command, "args": strings.Join(args, " ")})

	var output bytes.Buffer
	cmd := exec.CommandContext(ctx, Shell, shellArgs...)
	cmd.Stdout = &output
	cmd.Stderr = &output
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %w: %s", errors.ErrReload, command, err, strings.TrimSpace(output.String()))
	}
	return nil
}
