package hooks

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/glorpus-work/hyprtheme/internal/logger"
	"github.com/glorpus-work/hyprtheme/pkg/errors"
)

// Runner executes hooks. Scripts ending in .tengo run in-process; anything
// else is started as a program with the theme directory as its argument.
type Runner struct {
	tengo *TengoExecutor
}

// NewRunner creates a runner with its own script executor.
func NewRunner() *Runner {
	return &Runner{tengo: NewTengoExecutor()}
}

// Run executes the hook at the already resolved path and waits for it.
func (r *Runner) Run(ctx context.Context, path string, hc Context) error {
	fields := logger.Fields{"hook": path, "theme": hc.ThemeName, "operation": string(hc.Operation)}
	if strings.HasSuffix(path, TengoExtension) {
		logger.Debug("Running script hook", fields)
		return r.tengo.ExecuteFile(ctx, path, hc)
	}

	logger.Debug("Running hook", fields)
	var output bytes.Buffer
	cmd := exec.CommandContext(ctx, path, hc.ThemeDir)
	cmd.Dir = hc.ThemeDir
	cmd.Stdout = &output
	cmd.Stderr = &output
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w: %w: %s", path, errors.ErrHookExecution, err, strings.TrimSpace(output.String()))
	}
	if out := strings.TrimSpace(output.String()); out != "" {
		logger.Debug("Hook output", logger.Fields{"hook": path, "output": out})
	}
	return nil
}
