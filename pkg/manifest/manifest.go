// Package manifest reads and writes hyprtheme.toml, the declarative file
// describing one theme or module node.
package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/glorpus-work/hyprtheme/internal/logger"
	"github.com/glorpus-work/hyprtheme/pkg/errors"
	"github.com/glorpus-work/hyprtheme/pkg/fsutil"
	"github.com/hashicorp/go-version"
)

// FileName is the conventional manifest name inside a theme directory.
const FileName = "hyprtheme.toml"

// Manifest is the persisted description of a theme or module.
type Manifest struct {
	Name        string `toml:"name"`
	Repository  string `toml:"repo"`
	Branch      string `toml:"branch,omitempty"`
	Description string `toml:"desc"`
	Enabled     bool   `toml:"enabled"`
	// Requires is an optional version constraint on hyprtheme itself.
	Requires string     `toml:"requires,omitempty"`
	Theme    ThemeFiles `toml:"theme"`
	Modules  []Module   `toml:"module,omitempty"`
	Links    []Link     `toml:"link,omitempty"`
}

// ThemeFiles names the compositor config fragment of this node and its
// optional load and unload hooks.
type ThemeFiles struct {
	Config string `toml:"config"`
	Load   string `toml:"load,omitempty"`
	Unload string `toml:"unload,omitempty"`
}

// Module references a nested manifest. Enabled mirrors the module's own
// enabled flag.
type Module struct {
	Config  string `toml:"config"`
	Enabled bool   `toml:"enabled"`
}

// Link declares a symlink created at To pointing at From.
type Link struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO(err, "failed to read manifest %s", path)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a manifest document. A syntax error or a missing required
// key fails the whole document; unknown keys are tolerated.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	md, err := toml.Decode(string(data), &m)
	if err != nil {
		return nil, errors.Wrap(errors.ErrManifestParse, err.Error())
	}

	var missing []string
	if !md.IsDefined("name") || m.Name == "" {
		missing = append(missing, "name")
	}
	if !md.IsDefined("theme", "config") || m.Theme.Config == "" {
		missing = append(missing, "theme.config")
	}
	for i, mod := range m.Modules {
		if mod.Config == "" {
			missing = append(missing, fmt.Sprintf("module[%d].config", i))
		}
	}
	for i, link := range m.Links {
		if link.From == "" || link.To == "" {
			missing = append(missing, fmt.Sprintf("link[%d]", i))
		}
	}
	if len(missing) > 0 {
		return nil, errors.Wrapf(errors.ErrManifestParse, "missing required keys %s", strings.Join(missing, ", "))
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		logger.Debug("Ignoring unknown manifest keys", logger.Fields{"keys": strings.Join(keys, ",")})
	}

	return &m, nil
}

// Encode renders the manifest as TOML.
func (m *Manifest) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return nil, errors.Wrap(errors.ErrManifestWrite, err.Error())
	}
	return buf.Bytes(), nil
}

// Save writes the manifest to path, replacing the file atomically.
func (m *Manifest) Save(path string) error {
	data, err := m.Encode()
	if err != nil {
		return err
	}
	if err := fsutil.WriteFileAtomic(path, data, fsutil.FileModeDefault); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrManifestWrite, errors.WrapIO(err, "failed to save %s", path))
	}
	return nil
}

// SetModuleEnabled sets the enabled flag of every module entry whose config
// path, resolved against baseDir, is modulePath. It returns the number of
// entries that matched.
func (m *Manifest) SetModuleEnabled(baseDir, modulePath string, enabled bool) int {
	target := filepath.Clean(modulePath)
	matched := 0
	for i := range m.Modules {
		resolved, err := fsutil.ResolvePath(baseDir, m.Modules[i].Config)
		if err != nil {
			continue
		}
		if resolved == target {
			m.Modules[i].Enabled = enabled
			matched++
		}
	}
	return matched
}

// CheckCompatible verifies the Requires constraint against the running
// hyprtheme version. Manifests without a constraint are always compatible.
func (m *Manifest) CheckCompatible(current string) error {
	if m.Requires == "" {
		return nil
	}
	constraints, err := version.NewConstraint(m.Requires)
	if err != nil {
		return errors.Wrapf(errors.ErrManifestParse, "invalid requires constraint %q", m.Requires)
	}
	v, err := version.NewVersion(current)
	if err != nil {
		return errors.Wrapf(err, "invalid hyprtheme version %q", current)
	}
	if !constraints.Check(v) {
		return errors.Wrapf(errors.ErrIncompatibleTheme, "%s requires %s, running %s", m.Name, m.Requires, current)
	}
	return nil
}
