package cli

import (
	"fmt"

	"github.com/glorpus-work/hyprtheme/internal/logger"
	"github.com/spf13/cobra"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Apply all enabled themes",
		Long: `Run the load hook of every enabled theme and module and source its config
fragment. Meant to be called once from the compositor's exec-once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orch, _, err := loadOrchestrator(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := orch.Init(cmd.Context()); err != nil {
				return fmt.Errorf("failed to initialize themes: %w", err)
			}
			return nil
		},
	}

	return cmd
}

// NewSourcesCmd creates the sources command.
func NewSourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Print the config fragments of enabled themes",
		Long: `Print the config fragment of every enabled theme and module, one per line,
in the order init sources them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orch, cfg, err := loadOrchestrator(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			paths, err := orch.SourcePaths()
			if err != nil {
				return fmt.Errorf("failed to collect theme sources: %w", err)
			}

			if cfg.Settings.OutputFormat == string(logger.FormatJSON) {
				return writeJSON(cmd.OutOrStdout(), paths)
			}
			for _, path := range paths {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	return cmd
}
