package cli

import (
	"fmt"

	"github.com/glorpus-work/hyprtheme/pkg/errors"
	"github.com/glorpus-work/hyprtheme/pkg/orchestrator"
	"github.com/spf13/cobra"
)

// NewUpdateCmd creates the update command.
func NewUpdateCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "update [THEME...]",
		Short: "Update themes",
		Long: `Fetch the branch of one or more installed themes from their origin.

Use --all to update every installed theme. Modules are updated with their parent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, args, all)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Update all installed themes")

	return cmd
}

func runUpdate(cmd *cobra.Command, identifiers []string, all bool) error {
	if !all && len(identifiers) == 0 {
		return fmt.Errorf("no themes specified and --all flag not used: %w", errors.ErrInvalidIdentifier)
	}

	orch, _, err := loadOrchestrator(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if all {
		identifiers, err = installedIdentifiers(cmd, orch)
		if err != nil {
			return err
		}
	}

	for _, identifier := range identifiers {
		if err := orch.Update(cmd.Context(), identifier); err != nil {
			return fmt.Errorf("failed to update %s: %w", identifier, err)
		}
	}
	return nil
}

// installedIdentifiers lists the identifiers of installed top-level themes.
func installedIdentifiers(cmd *cobra.Command, orch *orchestrator.Orchestrator) ([]string, error) {
	entries, err := orch.List(cmd.Context(), orchestrator.ListOptions{Installed: true})
	if err != nil {
		return nil, err
	}
	var identifiers []string
	for _, e := range entries {
		installed, ok := e.Installed()
		if !ok || installed.IsModule() {
			continue
		}
		identifiers = append(identifiers, installed.Theme().Identifier())
	}
	return identifiers, nil
}
