package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/glorpus-work/hyprtheme/pkg/errors"
)

// List keys hold comma separated values on the command line.
const (
	KeyThemeDirs   = "theme_dirs"
	KeyCatalogURLs = "catalog_urls"
)

// SetValue sets a configuration value by key
// Supported keys:
//   - theme_dirs, catalog_urls: comma separated lists
//   - http_timeout: duration such as 10s
//   - output_format: text or json
//   - log_level: debug, info, warn or error
//   - reload_command, reload_all_command: shell commands
//   - reload_on_disable: bool
//   - default_branch: string
//
// The result is validated; an invalid value leaves c unchanged.
func (c *Config) SetValue(key, value string) error {
	next := *c
	switch key {
	case KeyThemeDirs:
		next.ThemeDirs = splitList(value)
	case KeyCatalogURLs:
		next.CatalogURLs = splitList(value)
	case "http_timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return errors.Wrapf(errors.ErrConfigValidation, "invalid duration for %s: %s", key, value)
		}
		next.Settings.HTTPTimeout = d
	case "output_format":
		next.Settings.OutputFormat = value
	case "log_level":
		next.Settings.LogLevel = value
	case "reload_command":
		next.Settings.ReloadCommand = value
	case "reload_all_command":
		next.Settings.ReloadAllCommand = value
	case "reload_on_disable":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(errors.ErrConfigValidation, "invalid boolean value for %s: %s", key, value)
		}
		next.Settings.ReloadOnDisable = boolVal
	case "default_branch":
		next.Settings.DefaultBranch = value
	default:
		return errors.Wrapf(errors.ErrUnknownConfigKey, "%s", key)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// GetValue returns the value of key as a string.
func (c *Config) GetValue(key string) (string, error) {
	value, ok := c.ToMap()[key]
	if !ok {
		return "", errors.Wrapf(errors.ErrUnknownConfigKey, "%s", key)
	}
	return value, nil
}

// ToMap flattens the configuration into key/value strings.
// This is useful for displaying the configuration.
func (c *Config) ToMap() map[string]string {
	result := map[string]string{
		KeyThemeDirs:   strings.Join(c.ThemeDirs, ","),
		KeyCatalogURLs: strings.Join(c.CatalogURLs, ","),
	}

	settingsValue := reflect.ValueOf(c.Settings)
	settingsType := settingsValue.Type()

	for i := 0; i < settingsValue.NumField(); i++ {
		field := settingsType.Field(i)
		yamlTag := field.Tag.Get("yaml")
		if yamlTag == "" || yamlTag == "-" {
			continue
		}
		yamlKey := strings.Split(yamlTag, ",")[0]

		fieldValue := settingsValue.Field(i)
		var strValue string
		if s, ok := fieldValue.Interface().(fmt.Stringer); ok {
			strValue = s.String()
		} else {
			switch fieldValue.Kind() {
			case reflect.Bool:
				strValue = strconv.FormatBool(fieldValue.Bool())
			case reflect.String:
				strValue = fieldValue.String()
			default:
				strValue = fmt.Sprintf("%v", fieldValue.Interface())
			}
		}

		result[yamlKey] = strValue
	}

	return result
}

func splitList(value string) []string {
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
