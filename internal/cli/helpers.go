package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/glorpus-work/hyprtheme/internal/logger"
	"github.com/glorpus-work/hyprtheme/pkg/catalog"
	"github.com/glorpus-work/hyprtheme/pkg/config"
	pkgerrors "github.com/glorpus-work/hyprtheme/pkg/errors"
	"github.com/glorpus-work/hyprtheme/pkg/hooks"
	"github.com/glorpus-work/hyprtheme/pkg/orchestrator"
	"github.com/glorpus-work/hyprtheme/pkg/reload"
	"github.com/glorpus-work/hyprtheme/pkg/vcs"
	"github.com/spf13/cobra"
)

// These variables will be set by the main package
var (
	ConfigPath   *string
	Verbose      *bool
	OutputFormat *string
	ThemeDirs    *[]string
	CatalogURLs  *[]string
)

// Setup loads the configuration, initializes logging and creates the theme
// directories. It is meant to run as the root command's PersistentPreRunE.
func Setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger.InitLogger(cfg.Settings.LogLevel, logger.OutputFormat(cfg.Settings.OutputFormat))
	logger.Debug("Configuration loaded", logger.Fields{"path": getConfigPath(), "command": cmd.Name()})

	if !needsThemeDirs(cmd) {
		return nil
	}
	return config.EnsureDirs(cfg)
}

// annotationNoThemeDirs marks commands that work without the theme
// directories, such as config repair.
const annotationNoThemeDirs = "hyprtheme/no-theme-dirs"

func needsThemeDirs(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[annotationNoThemeDirs]; ok {
			return false
		}
	}
	return true
}

// loadConfig loads the configuration file and applies the global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if OutputFormat != nil && *OutputFormat != "" {
		cfg.Settings.OutputFormat = *OutputFormat
	}
	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}
	if ThemeDirs != nil && len(*ThemeDirs) > 0 {
		cfg.ThemeDirs = *ThemeDirs
	}
	if CatalogURLs != nil && len(*CatalogURLs) > 0 {
		cfg.CatalogURLs = *CatalogURLs
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getConfigPath() string {
	if ConfigPath != nil && *ConfigPath != "" {
		return *ConfigPath
	}
	return config.GetDefaultConfigPath()
}

// loadOrchestrator wires the orchestrator from the configuration. Progress
// events are printed to out in text mode.
func loadOrchestrator(out io.Writer) (*orchestrator.Orchestrator, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	var progress orchestrator.Hooks
	if cfg.Settings.OutputFormat != string(logger.FormatJSON) {
		progress = orchestrator.Hooks{OnEvent: func(e orchestrator.Event) {
			printEvent(out, e)
		}}
	}

	orch := orchestrator.New(
		catalog.NewHTTPClient(cfg.Settings.HTTPTimeout, ""),
		vcs.NewGitClient(""),
		reload.NewHyprctl(cfg.Settings.ReloadCommand, cfg.Settings.ReloadAllCommand),
		hooks.NewRunner(),
		progress,
	)
	orch.ThemeDirs = cfg.ThemeDirs
	orch.CatalogURLs = cfg.CatalogURLs
	orch.DefaultBranch = cfg.Settings.DefaultBranch
	orch.ReloadOnDisable = cfg.Settings.ReloadOnDisable
	orch.Version = Version

	return orch, cfg, nil
}

func printEvent(out io.Writer, e orchestrator.Event) {
	switch {
	case e.ID != "" && e.Msg != "":
		_, _ = fmt.Fprintf(out, "%s: %s (%s)\n", e.Phase, e.Msg, e.ID)
	case e.ID != "":
		_, _ = fmt.Fprintf(out, "%s: %s\n", e.Phase, e.ID)
	default:
		_, _ = fmt.Fprintf(out, "%s: %s\n", e.Phase, e.Msg)
	}
}

// stateConflict reports a no-op request as information and swallows the
// error so the command exits successfully.
func stateConflict(err error) error {
	if errors.Is(err, pkgerrors.ErrStateConflict) {
		logger.Info(err.Error())
		return nil
	}
	return err
}

func writeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
