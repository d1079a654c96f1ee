// Package vcs clones and updates theme repositories with the git binary.
package vcs

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/glorpus-work/hyprtheme/internal/logger"
	"github.com/glorpus-work/hyprtheme/pkg/errors"
)

// DefaultBinary is looked up on PATH when no binary is configured.
const DefaultBinary = "git"

// GitClient runs git as a subprocess.
type GitClient struct {
	binary string
}

// NewGitClient creates a client for the given git binary, or DefaultBinary.
func NewGitClient(binary string) *GitClient {
	if binary == "" {
		binary = DefaultBinary
	}
	return &GitClient{binary: binary}
}

// Clone clones repository into dest. An empty branch checks out the
// remote's default branch.
func (c *GitClient) Clone(ctx context.Context, repository, branch, dest string) error {
	args := []string{"clone", "--quiet"}
	if branch != "" {
		args = append(args, "--branch", branch)
	}
	args = append(args, "--", repository, dest)
	if _, err := c.run(ctx, "", args...); err != nil {
		return fmt.Errorf("failed to clone %s: %w", repository, err)
	}
	return nil
}

// FetchBranch fetches branch from the origin remote of the working copy at
// repoPath.
func (c *GitClient) FetchBranch(ctx context.Context, repoPath, branch string) error {
	if _, err := c.run(ctx, repoPath, "fetch", "--quiet", "origin", branch); err != nil {
		return fmt.Errorf("failed to fetch %s in %s: %w", branch, repoPath, err)
	}
	return nil
}

// CurrentBranch reports the checked out branch of the working copy at repoPath.
func (c *GitClient) CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	return c.run(ctx, repoPath, "rev-parse", "--abbrev-ref", "HEAD")
}

func (c *GitClient) run(ctx context.Context, dir string, args ...string) (string, error) {
	logger.Debug("Running git", logger.Fields{"dir": dir, "args": strings.Join(args, " ")})

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Never block on a credential prompt.
	cmd.Env = append(cmd.Environ(), "GIT_TERMINAL_PROMPT=0")

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("%w: git %s: %s", errors.ErrSourceControl, args[0], msg)
	}
	return strings.TrimSpace(stdout.String()), nil
}
