package theme_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	pkgerrors "github.com/glorpus-work/hyprtheme/pkg/errors"
	"github.com/glorpus-work/hyprtheme/pkg/manifest"
	"github.com/glorpus-work/hyprtheme/pkg/model"
	"github.com/glorpus-work/hyprtheme/pkg/theme"
	thememocks "github.com/glorpus-work/hyprtheme/pkg/theme/mocks"
	"github.com/glorpus-work/hyprtheme/test/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDownload_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	online := theme.NewOnline(model.NewTheme("nord", "https://github.com/x/nord", "dev", "arctic", nil))

	cloner := thememocks.NewMockCloner(ctrl)
	cloner.EXPECT().Clone(gomock.Any(), "https://github.com/x/nord", "dev", filepath.Join(root, "nord")).
		DoAndReturn(func(_ context.Context, repo, branch, dest string) error {
			testutil.WriteTheme(t, dest, manifest.Manifest{Name: "nord", Repository: repo, Branch: branch})
			return nil
		})

	installed, err := online.Download(context.Background(), cloner, root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "nord"), installed.Dir())
	assert.Equal(t, online.ID(), installed.ID())
}

func TestDownload_CloneFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	online := theme.NewOnline(model.NewTheme("nord", "https://github.com/x/nord", "", "", nil))

	cloner := thememocks.NewMockCloner(ctrl)
	cloner.EXPECT().Clone(gomock.Any(), gomock.Any(), "", gomock.Any()).
		Return(fmt.Errorf("%w: repository not found", pkgerrors.ErrSourceControl))

	_, err := online.Download(context.Background(), cloner, t.TempDir())
	assert.ErrorIs(t, err, pkgerrors.ErrSourceControl)
	assert.NotErrorIs(t, err, pkgerrors.ErrManifestParse)
}

func TestDownload_NoManifest(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	online := theme.NewOnline(model.NewTheme("nord", "https://github.com/x/nord", "", "", nil))

	cloner := thememocks.NewMockCloner(ctrl)
	cloner.EXPECT().Clone(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, dest string) error {
			testutil.WriteFile(t, filepath.Join(dest, "README.md"), "not a theme")
			return nil
		})

	_, err := online.Download(context.Background(), cloner, root)
	assert.ErrorIs(t, err, pkgerrors.ErrManifestParse)
	assert.NotErrorIs(t, err, pkgerrors.ErrSourceControl)

	_, statErr := os.Stat(filepath.Join(root, "nord"))
	assert.True(t, os.IsNotExist(statErr), "invalid clone should be removed")
}

func TestDownload_DestinationExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "nord"), 0o755))

	cloner := thememocks.NewMockCloner(ctrl)
	online := theme.NewOnline(model.NewTheme("nord", "r", "", "", nil))

	_, err := online.Download(context.Background(), cloner, root)
	assert.ErrorIs(t, err, pkgerrors.ErrThemeDirExists)
}

func TestOnline_DirNameSanitized(t *testing.T) {
	online := theme.NewOnline(model.NewTheme("catppuccin/mocha", "r", "", "", nil))
	assert.Equal(t, "catppuccin-mocha", online.DirName())
}
