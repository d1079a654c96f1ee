// Package errors holds the sentinel errors shared across hyprtheme packages
// together with small helpers for attaching context to them.
package errors

import "fmt"

// Theme errors.
var (
	ErrThemeNotFound     = fmt.Errorf("theme not found")
	ErrInvalidIdentifier = fmt.Errorf("invalid theme identifier")
	ErrManifestParse     = fmt.Errorf("failed to parse theme manifest")
	ErrManifestWrite     = fmt.Errorf("failed to write theme manifest")
	ErrIncompatibleTheme = fmt.Errorf("theme is not compatible with this hyprtheme version")
	ErrParentManifest    = fmt.Errorf("failed to update parent manifest")
	ErrThemeDirExists    = fmt.Errorf("theme directory already exists")
)

// State conflicts are informational: the requested state already holds.
var (
	ErrStateConflict    = fmt.Errorf("theme already in requested state")
	ErrAlreadyEnabled   = fmt.Errorf("theme already enabled: %w", ErrStateConflict)
	ErrAlreadyDisabled  = fmt.Errorf("theme already disabled: %w", ErrStateConflict)
	ErrAlreadyInstalled = fmt.Errorf("theme already installed: %w", ErrStateConflict)
)

// Collaborator errors.
var (
	ErrIO            = fmt.Errorf("i/o error")
	ErrSourceControl = fmt.Errorf("source control error")
	ErrCatalogFetch  = fmt.Errorf("failed to fetch theme catalog")
	ErrHookExecution = fmt.Errorf("error executing hook")
	ErrReload        = fmt.Errorf("compositor reload failed")
)

// Config errors.
var (
	ErrEmptyConfigPath   = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath = fmt.Errorf("invalid config file path")
	ErrConfigParse       = fmt.Errorf("failed to parse config")
	ErrConfigValidation  = fmt.Errorf("invalid configuration")
	ErrConfigEncode      = fmt.Errorf("failed to encode config")
	ErrConfigDirectory   = fmt.Errorf("failed to create config directory")
	ErrConfigFileCreate  = fmt.Errorf("failed to create config file")
	ErrConfigFileRename  = fmt.Errorf("failed to replace config file")
	ErrConfigFileExists  = fmt.Errorf("config file already exists")
	ErrUnknownConfigKey  = fmt.Errorf("unknown configuration key")
	ErrNoThemeDirs       = fmt.Errorf("at least one theme directory is required")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// WrapIO tags a filesystem or process error with ErrIO while keeping the
// original error reachable through errors.Is and errors.As.
func WrapIO(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", fmt.Sprintf(format, args...), ErrIO, err)
}
