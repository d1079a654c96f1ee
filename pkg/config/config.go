// Package config provides configuration management for hyprtheme.
// It handles loading, validating and saving the YAML settings file that
// lists the theme directories, the online catalogs and the compositor
// commands, and provides defaults for everything left out.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/glorpus-work/hyprtheme/pkg/errors"
	"github.com/glorpus-work/hyprtheme/pkg/fsutil"
	"github.com/glorpus-work/hyprtheme/pkg/reload"
	"github.com/glorpus-work/hyprtheme/pkg/theme"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// ThemeDirs are searched in order; themes are installed into the first.
	ThemeDirs []string `yaml:"theme_dirs"`

	// CatalogURLs each serve a JSON array of theme records.
	CatalogURLs []string `yaml:"catalog_urls"`

	// General settings
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// Network settings
	HTTPTimeout time.Duration `yaml:"http_timeout"`

	// Output settings
	OutputFormat string `yaml:"output_format"` // text, json
	LogLevel     string `yaml:"log_level"`     // debug, info, warn, error

	// Compositor settings
	ReloadCommand    string `yaml:"reload_command"`     // receives the fragment path as $1
	ReloadAllCommand string `yaml:"reload_all_command"` // full config reload
	ReloadOnDisable  bool   `yaml:"reload_on_disable"`

	// Source control settings
	DefaultBranch string `yaml:"default_branch"` // fetched by update when a theme declares none
}

// Default configuration values.
const (
	// DefaultHTTPTimeout is the default timeout for catalog requests.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultCatalogURL is the community theme catalog.
	DefaultCatalogURL = "https://github.com/hyprland-community/theme-repo/blob/main/themes.json?raw=true"

	// FileName is the config file name inside the config directory.
	FileName = "config.yaml"

	// YAMLIndent is the number of spaces to use for YAML indentation.
	YAMLIndent = 2
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ThemeDirs:   []string{DefaultThemeDir()},
		CatalogURLs: []string{DefaultCatalogURL},
		Settings: Settings{
			HTTPTimeout:      DefaultHTTPTimeout,
			OutputFormat:     "text",
			LogLevel:         "info",
			ReloadCommand:    reload.DefaultSourceCommand,
			ReloadAllCommand: reload.DefaultReloadCommand,
			ReloadOnDisable:  true,
			DefaultBranch:    theme.DefaultBranch,
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the
// defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.WrapIO(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.WrapIO(err, "failed to read config data")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// SaveConfig saves configuration to a file.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(absPath), fsutil.DirModeDefault); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	tempPath := absPath + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeDefault)
	if err != nil {
		return errors.Wrap(errors.ErrConfigFileCreate, err.Error())
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(YAMLIndent)

	if err := encoder.Encode(c); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}

	_ = encoder.Close()
	_ = file.Close()

	if err := os.Rename(tempPath, absPath); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigFileRename, err.Error())
	}

	return nil
}

// ToYAML converts the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrConfigEncode, err.Error())
	}
	return data, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	if len(c.ThemeDirs) == 0 {
		return errors.Wrap(errors.ErrConfigValidation, errors.ErrNoThemeDirs.Error())
	}
	for i, dir := range c.ThemeDirs {
		if strings.TrimSpace(dir) == "" {
			return errors.Wrapf(errors.ErrConfigValidation, "theme_dirs[%d] is empty", i)
		}
	}
	for i, u := range c.CatalogURLs {
		if strings.TrimSpace(u) == "" {
			return errors.Wrapf(errors.ErrConfigValidation, "catalog_urls[%d] is empty", i)
		}
	}
	return validateSettings(c.Settings)
}

func validateSettings(s Settings) error {
	if s.HTTPTimeout < 0 {
		return errors.Wrap(errors.ErrConfigValidation, "http_timeout cannot be negative")
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[s.OutputFormat] {
		return errors.Wrapf(errors.ErrConfigValidation, "invalid output_format '%s', must be one of: text, json", s.OutputFormat)
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(s.LogLevel)] {
		return errors.Wrapf(errors.ErrConfigValidation, "invalid log_level '%s', must be one of: debug, info, warn, error", s.LogLevel)
	}
	if strings.TrimSpace(s.DefaultBranch) == "" {
		return errors.Wrap(errors.ErrConfigValidation, "default_branch cannot be empty")
	}
	return nil
}

// applyDefaults fills in missing values with defaults. An explicitly empty
// catalog list is kept so catalogs can be switched off.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.ThemeDirs == nil {
		c.ThemeDirs = defaults.ThemeDirs
	}
	if c.CatalogURLs == nil {
		c.CatalogURLs = defaults.CatalogURLs
	}
	if c.Settings.HTTPTimeout == 0 {
		c.Settings.HTTPTimeout = defaults.Settings.HTTPTimeout
	}
	if c.Settings.OutputFormat == "" {
		c.Settings.OutputFormat = defaults.Settings.OutputFormat
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
	if c.Settings.ReloadCommand == "" {
		c.Settings.ReloadCommand = defaults.Settings.ReloadCommand
	}
	if c.Settings.ReloadAllCommand == "" {
		c.Settings.ReloadAllCommand = defaults.Settings.ReloadAllCommand
	}
	if c.Settings.DefaultBranch == "" {
		c.Settings.DefaultBranch = defaults.Settings.DefaultBranch
	}
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, fsutil.AppName, FileName)
}

// DefaultThemeDir is where themes are installed when nothing is configured.
func DefaultThemeDir() string {
	return filepath.Join(xdg.ConfigHome, "hypr", "themes")
}

// ExpandedThemeDirs returns ThemeDirs with "~" expanded, made absolute.
func (c *Config) ExpandedThemeDirs() ([]string, error) {
	dirs, err := fsutil.ExpandAll(c.ThemeDirs)
	if err != nil {
		return nil, errors.WrapIO(err, "failed to expand theme dirs")
	}
	return dirs, nil
}

// EnsureDirs creates every configured theme directory.
func EnsureDirs(c *Config) error {
	dirs, err := c.ExpandedThemeDirs()
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, fsutil.DirModeDefault); err != nil {
			return errors.Wrapf(errors.ErrConfigDirectory, "%s: %v", dir, err)
		}
	}
	return nil
}
