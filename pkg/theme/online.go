package theme

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/hyprtheme/internal/logger"
	"github.com/glorpus-work/hyprtheme/pkg/errors"
	"github.com/glorpus-work/hyprtheme/pkg/manifest"
	"github.com/glorpus-work/hyprtheme/pkg/model"
)

// Cloner clones a repository branch into a directory.
type Cloner interface {
	Clone(ctx context.Context, repository, branch, dest string) error
}

// Online is a theme known from a catalog but not present on disk.
type Online struct {
	base model.Theme
}

// NewOnline wraps a base record.
func NewOnline(base model.Theme) *Online {
	return &Online{base: base}
}

func (o *Online) Theme() model.Theme { return o.base }
func (o *Online) Name() string       { return o.base.Name() }
func (o *Online) ID() model.ThemeID  { return o.base.ID() }

// DirName is the directory name the theme is cloned into.
func (o *Online) DirName() string {
	return strings.NewReplacer("/", "-", string(filepath.Separator), "-").Replace(o.base.Name())
}

// Download clones the theme into root/<name> and loads the cloned manifest.
// A clone without a valid manifest is removed again.
func (o *Online) Download(ctx context.Context, cloner Cloner, root string) (*Installed, error) {
	dest := filepath.Join(root, o.DirName())
	if _, err := os.Lstat(dest); err == nil {
		return nil, errors.Wrapf(errors.ErrThemeDirExists, "%s", dest)
	}

	logger.Debug("Cloning theme", logger.Fields{"repo": o.base.Repository(), "branch": o.base.Branch(), "dest": dest})
	if err := cloner.Clone(ctx, o.base.Repository(), o.base.Branch(), dest); err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", o.Name(), err)
	}

	installed, err := LoadInstalled(filepath.Join(dest, manifest.FileName), "")
	if err != nil {
		if rmErr := os.RemoveAll(dest); rmErr != nil {
			logger.Warn("Failed to remove invalid clone", logger.Fields{"dir": dest, "error": rmErr})
		}
		if !stderrors.Is(err, errors.ErrManifestParse) {
			err = fmt.Errorf("%w: %w", errors.ErrManifestParse, err)
		}
		return nil, fmt.Errorf("downloaded %s has no usable manifest: %w", o.Name(), err)
	}
	return installed, nil
}

func (o *Online) String() string {
	return fmt.Sprintf("%s [online] %s", o.base.Identifier(), o.base.Description())
}
