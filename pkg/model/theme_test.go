package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeID_BranchAbsenceIsDistinct(t *testing.T) {
	noBranch := ThemeID{Repository: "https://github.com/x/nord"}
	master := ThemeID{Repository: "https://github.com/x/nord", Branch: "master"}

	assert.NotEqual(t, noBranch, master)

	set := NewThemeIDSet(noBranch)
	assert.True(t, set.Contains(noBranch))
	assert.False(t, set.Contains(master))
	assert.False(t, ThemeIDSet(nil).Contains(noBranch))
}

func TestTheme_IsImmutable(t *testing.T) {
	images := []string{"https://example.com/a.png"}
	theme := NewTheme("nord", "https://github.com/x/nord", "", "arctic", images)

	images[0] = "changed"
	assert.Equal(t, "https://example.com/a.png", theme.PreviewImages()[0])

	got := theme.PreviewImages()
	got[0] = "changed again"
	assert.Equal(t, "https://example.com/a.png", theme.PreviewImages()[0])
}

func TestTheme_IDAndIdentifier(t *testing.T) {
	theme := NewTheme("nord", "https://github.com/x/nord", "dev", "", nil)

	assert.Equal(t, ThemeID{Repository: "https://github.com/x/nord", Branch: "dev"}, theme.ID())
	assert.Equal(t, "nord:dev@https://github.com/x/nord", theme.Identifier())
	assert.Equal(t, "https://github.com/x/nord#dev", theme.ID().String())
}

func TestCatalogRecord_JSON(t *testing.T) {
	doc := `[{"name":"nord","repo":"https://github.com/x/nord","branch":"dev","desc":"arctic","images":["a.png"]},
	         {"name":"gruvbox","repo":"https://github.com/x/gruvbox","desc":"retro"}]`

	var records []CatalogRecord
	require.NoError(t, json.Unmarshal([]byte(doc), &records))
	require.Len(t, records, 2)

	nord := records[0].Theme()
	assert.Equal(t, "nord", nord.Name())
	assert.Equal(t, "dev", nord.Branch())
	assert.Equal(t, []string{"a.png"}, nord.PreviewImages())

	gruvbox := records[1].Theme()
	assert.Equal(t, ThemeID{Repository: "https://github.com/x/gruvbox"}, gruvbox.ID())
}
