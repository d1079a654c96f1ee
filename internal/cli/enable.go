package cli

import (
	"context"
	"fmt"

	"github.com/glorpus-work/hyprtheme/internal/logger"
	"github.com/glorpus-work/hyprtheme/pkg/theme"
	"github.com/spf13/cobra"
)

// NewEnableCmd creates the enable command.
func NewEnableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enable THEME...",
		Short: "Enable installed themes",
		Long: `Enable one or more installed themes.

The load hook runs, the theme's links are created (existing files are moved
to a .bak backup) and its config fragment is sourced into the running compositor.
Enabling a theme that is already enabled changes nothing.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, _, err := loadOrchestrator(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return forEachTheme(cmd.Context(), args, "enable", orch.Enable)
		},
	}

	return cmd
}

// NewDisableCmd creates the disable command.
func NewDisableCmd() *cobra.Command {
	var noReload bool

	cmd := &cobra.Command{
		Use:   "disable THEME...",
		Short: "Disable enabled themes",
		Long: `Disable one or more enabled themes.

The unload hook runs, the theme's links are removed and backups restored.
Unless --no-reload is given or reload_on_disable is off, the compositor then
reloads its config and the remaining enabled themes are applied again.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, _, err := loadOrchestrator(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if noReload {
				orch.ReloadOnDisable = false
			}
			return forEachTheme(cmd.Context(), args, "disable", orch.Disable)
		},
	}

	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Do not reload the compositor afterwards")

	return cmd
}

func forEachTheme(ctx context.Context, identifiers []string, verb string, op func(context.Context, string) (*theme.Installed, error)) error {
	for _, identifier := range identifiers {
		installed, err := op(ctx, identifier)
		if err = stateConflict(err); err != nil {
			return fmt.Errorf("failed to %s %s: %w", verb, identifier, err)
		}
		if installed != nil {
			logger.Debug("Theme state", logger.Fields{"theme": installed.String()})
		}
	}
	return nil
}
