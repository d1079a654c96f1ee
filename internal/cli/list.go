package cli

import (
	"fmt"
	"io"

	"github.com/glorpus-work/hyprtheme/internal/logger"
	"github.com/glorpus-work/hyprtheme/pkg/orchestrator"
	"github.com/glorpus-work/hyprtheme/pkg/theme"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var opts orchestrator.ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed and online themes",
		Long: `List the themes found in the theme directories and in the online catalogs.

By default both are listed and catalog themes that are already installed are hidden.
Use --installed or --online to restrict the listing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !opts.Installed && !opts.Online {
				opts.Installed, opts.Online = true, true
			}
			return runList(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Installed, "installed", false, "List installed themes")
	cmd.Flags().BoolVar(&opts.Online, "online", false, "List themes from the online catalogs")
	cmd.Flags().BoolVar(&opts.ShowInstalled, "show-installed", false, "Keep catalog themes that are already installed")

	return cmd
}

type listOutputEntry struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Repository  string `json:"repository,omitempty"`
	Branch      string `json:"branch,omitempty"`
	Description string `json:"description,omitempty"`
	Path        string `json:"path,omitempty"`
	Enabled     bool   `json:"enabled"`
	Module      bool   `json:"module,omitempty"`
}

func runList(cmd *cobra.Command, opts orchestrator.ListOptions) error {
	// progress goes to stderr so stdout stays a clean listing
	orch, cfg, err := loadOrchestrator(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	entries, err := orch.List(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("failed to list themes: %w", err)
	}

	output := make([]listOutputEntry, 0, len(entries))
	for _, e := range entries {
		output = append(output, toListOutput(e))
	}

	if cfg.Settings.OutputFormat == string(logger.FormatJSON) {
		return writeJSON(cmd.OutOrStdout(), output)
	}
	if len(output) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No themes found")
		return nil
	}
	outputTable(cmd.OutOrStdout(), output)
	return nil
}

func toListOutput(e theme.Entry) listOutputEntry {
	base := e.Theme()
	item := listOutputEntry{
		Name:        base.Name(),
		Kind:        e.Kind().String(),
		Repository:  base.Repository(),
		Branch:      base.Branch(),
		Description: base.Description(),
	}
	if installed, ok := e.Installed(); ok {
		item.Path = installed.Path()
		item.Enabled = installed.IsEnabled()
		item.Module = installed.IsModule()
	}
	return item
}

func outputTable(out io.Writer, entries []listOutputEntry) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Status", "Branch", "Repository", "Description"})

	for _, e := range entries {
		t.AppendRow(table.Row{
			e.Name,
			status(e),
			e.Branch,
			runewidth.Truncate(e.Repository, MaxRepositoryLength, "..."),
			runewidth.Truncate(e.Description, MaxDescriptionLength, "..."),
		})
	}
	t.Render()
}

func status(e listOutputEntry) string {
	switch {
	case e.Kind != theme.KindInstalled.String():
		return e.Kind
	case e.Module && e.Enabled:
		return "module, enabled"
	case e.Module:
		return "module"
	case e.Enabled:
		return "enabled"
	default:
		return "installed"
	}
}
