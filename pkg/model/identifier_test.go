package model

import (
	"testing"

	"github.com/glorpus-work/hyprtheme/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		raw  string
		want Identifier
	}{
		{raw: "nord", want: Identifier{Name: "nord"}},
		{raw: "nord:dev", want: Identifier{Name: "nord", Branch: "dev"}},
		{raw: "nord@https://github.com/x/nord", want: Identifier{Name: "nord", Repository: "https://github.com/x/nord"}},
		{raw: "nord:dev@https://github.com/x/nord", want: Identifier{Name: "nord", Branch: "dev", Repository: "https://github.com/x/nord"}},
		{raw: "nord:dev@git@github.com:x/nord.git", want: Identifier{Name: "nord", Branch: "dev", Repository: "git@github.com:x/nord.git"}},
		{raw: ":dev@https://github.com/x/nord", want: Identifier{Branch: "dev", Repository: "https://github.com/x/nord"}},
		{raw: "@https://github.com/x/nord", want: Identifier{Repository: "https://github.com/x/nord"}},
		{raw: "  nord  ", want: Identifier{Name: "nord"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseIdentifier(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIdentifier_Empty(t *testing.T) {
	for _, raw := range []string{"", "   ", ":", "@", ":@"} {
		_, err := ParseIdentifier(raw)
		assert.ErrorIs(t, err, errors.ErrInvalidIdentifier, raw)
	}
}

func TestIdentifier_StringRoundTrip(t *testing.T) {
	for _, id := range []Identifier{
		{Name: "nord"},
		{Name: "nord", Branch: "dev"},
		{Name: "nord", Repository: "https://github.com/x/nord"},
		{Name: "nord", Branch: "dev", Repository: "git@github.com:x/nord.git"},
	} {
		parsed, err := ParseIdentifier(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	}
}

func TestIdentifier_Matches(t *testing.T) {
	theme := NewTheme("nord", "https://github.com/x/nord", "dev", "arctic", nil)

	assert.True(t, Identifier{Name: "nord"}.Matches(theme))
	assert.True(t, Identifier{Name: "nord", Branch: "dev"}.Matches(theme))
	assert.True(t, Identifier{Repository: "https://github.com/x/nord"}.Matches(theme))
	assert.False(t, Identifier{Name: "nord", Branch: "main"}.Matches(theme))
	assert.False(t, Identifier{Name: "gruvbox"}.Matches(theme))
	assert.False(t, Identifier{Name: "nord", Repository: "https://github.com/y/nord"}.Matches(theme))
}
