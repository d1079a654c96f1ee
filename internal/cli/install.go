package cli

import (
	"errors"
	"fmt"

	"github.com/glorpus-work/hyprtheme/internal/logger"
	pkgerrors "github.com/glorpus-work/hyprtheme/pkg/errors"
	"github.com/glorpus-work/hyprtheme/pkg/theme"
	"github.com/spf13/cobra"
)

// NewInstallCmd creates the install command.
func NewInstallCmd() *cobra.Command {
	var (
		gitRepo string
		branch  string
		enable  bool
	)

	cmd := &cobra.Command{
		Use:   "install [THEME]",
		Short: "Install a theme",
		Long: `Install a theme from the online catalogs into the first theme directory.

THEME is name[:branch][@repository]; any part may be left out. Use --git to install
straight from a repository that is not listed in any catalog.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if gitRepo != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			identifier := ""
			if len(args) > 0 {
				identifier = args[0]
			}
			return runInstall(cmd, identifier, gitRepo, branch, enable)
		},
	}

	cmd.Flags().StringVar(&gitRepo, "git", "", "Install from this git repository")
	cmd.Flags().StringVar(&branch, "branch", "", "Branch to clone with --git")
	cmd.Flags().BoolVar(&enable, "enable", false, "Enable the theme after installing it")

	return cmd
}

func runInstall(cmd *cobra.Command, identifier, gitRepo, branch string, enable bool) error {
	orch, _, err := loadOrchestrator(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	var installed *theme.Installed
	if gitRepo != "" {
		installed, err = orch.InstallFromGit(cmd.Context(), gitRepo, branch)
	} else {
		installed, err = orch.Install(cmd.Context(), identifier)
	}
	switch {
	case errors.Is(err, pkgerrors.ErrStateConflict):
		logger.Info(err.Error())
	case err != nil:
		return fmt.Errorf("failed to install theme: %w", err)
	default:
		logger.Success("Theme installed", logger.Fields{"theme": installed.Name(), "path": installed.Dir()})
	}

	if !enable {
		return nil
	}
	if _, err := orch.Enable(cmd.Context(), installed.Theme().Identifier()); stateConflict(err) != nil {
		return fmt.Errorf("failed to enable theme: %w", err)
	}
	return nil
}
