package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/glorpus-work/hyprtheme/internal/cli"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	verbose      bool
	outputFormat string
	themeDirs    []string
	catalogURLs  []string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hyprtheme",
		Short: "A theme manager for Hyprland",
		Long: `hyprtheme installs, enables and disables Hyprland themes:
- Themes: installed from online catalogs or git repositories
- Activation: links, backups, load and unload hooks
- Compositor: config fragments sourced live through hyprctl`,
		SilenceUsage:      true,
		PersistentPreRunE: cli.Setup,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: $XDG_CONFIG_HOME/hyprtheme/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format (text, json)")
	cmd.PersistentFlags().StringArrayVar(&themeDirs, "theme-dir", nil, "theme directory, replaces the configured ones (repeatable)")
	cmd.PersistentFlags().StringArrayVar(&catalogURLs, "theme-url", nil, "catalog url, replaces the configured ones (repeatable)")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.Verbose = &verbose
	cli.OutputFormat = &outputFormat
	cli.ThemeDirs = &themeDirs
	cli.CatalogURLs = &catalogURLs

	// Add subcommands
	cmd.AddCommand(
		cli.NewListCmd(),
		cli.NewInstallCmd(),
		cli.NewUninstallCmd(),
		cli.NewUpdateCmd(),
		cli.NewEnableCmd(),
		cli.NewDisableCmd(),
		cli.NewInitCmd(),
		cli.NewSourcesCmd(),
		cli.NewConfigCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
