package cli

import (
	"fmt"

	"github.com/glorpus-work/hyprtheme/internal/logger"
	"github.com/spf13/cobra"
)

// NewUninstallCmd creates the uninstall command.
func NewUninstallCmd() *cobra.Command {
	var disable bool

	cmd := &cobra.Command{
		Use:   "uninstall THEME...",
		Short: "Uninstall themes",
		Long: `Delete one or more installed themes from disk.

An enabled theme keeps its links unless --disable is given, in which case
it is disabled before removal.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUninstall(cmd, args, disable)
		},
	}

	cmd.Flags().BoolVar(&disable, "disable", false, "Disable enabled themes before removing them")

	return cmd
}

func runUninstall(cmd *cobra.Command, identifiers []string, disable bool) error {
	orch, _, err := loadOrchestrator(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	for _, identifier := range identifiers {
		if disable {
			if _, err := orch.Disable(cmd.Context(), identifier); stateConflict(err) != nil {
				return fmt.Errorf("failed to disable %s: %w", identifier, err)
			}
		}

		online, err := orch.Uninstall(cmd.Context(), identifier)
		if err != nil {
			return fmt.Errorf("failed to uninstall %s: %w", identifier, err)
		}
		logger.Success("Theme uninstalled", logger.Fields{"theme": online.Name(), "repository": online.Theme().Repository()})
	}

	return nil
}
