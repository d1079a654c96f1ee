// Package model holds the value types shared by the resolver, the catalog
// and the installed-theme store.
package model

import (
	"fmt"
	"slices"
)

// ThemeID identifies a theme across catalogs and theme directories.
// An empty Branch means "no branch declared", which is distinct from every
// named branch.
type ThemeID struct {
	Repository string
	Branch     string
}

// String renders the id as repository or repository#branch.
func (id ThemeID) String() string {
	if id.Branch == "" {
		return id.Repository
	}
	return fmt.Sprintf("%s#%s", id.Repository, id.Branch)
}

// ThemeIDSet is a set of theme ids, used as a blacklist when listing.
type ThemeIDSet map[ThemeID]struct{}

// NewThemeIDSet builds a set from ids.
func NewThemeIDSet(ids ...ThemeID) ThemeIDSet {
	set := make(ThemeIDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether id is in the set. A nil set contains nothing.
func (s ThemeIDSet) Contains(id ThemeID) bool {
	_, ok := s[id]
	return ok
}

// Theme is the base record describing a theme, whether it comes from a
// catalog or from an installed manifest. It is never mutated after
// construction.
type Theme struct {
	name          string
	repository    string
	branch        string
	description   string
	previewImages []string
}

// NewTheme builds an immutable Theme record.
func NewTheme(name, repository, branch, description string, previewImages []string) Theme {
	return Theme{
		name:          name,
		repository:    repository,
		branch:        branch,
		description:   description,
		previewImages: slices.Clone(previewImages),
	}
}

func (t Theme) Name() string        { return t.name }
func (t Theme) Repository() string  { return t.repository }
func (t Theme) Branch() string      { return t.branch }
func (t Theme) Description() string { return t.description }

// PreviewImages returns a copy of the preview image URLs.
func (t Theme) PreviewImages() []string { return slices.Clone(t.previewImages) }

// ID returns the deduplication key of the theme.
func (t Theme) ID() ThemeID {
	return ThemeID{Repository: t.repository, Branch: t.branch}
}

// Identifier renders the theme in the name:branch@repository form accepted
// by ParseIdentifier.
func (t Theme) Identifier() string {
	return Identifier{Name: t.name, Branch: t.branch, Repository: t.repository}.String()
}

// CatalogRecord is the JSON shape of a theme in an online catalog.
type CatalogRecord struct {
	Name        string   `json:"name"`
	Repository  string   `json:"repo"`
	Branch      string   `json:"branch,omitempty"`
	Description string   `json:"desc"`
	Images      []string `json:"images,omitempty"`
}

// Theme converts the record into an immutable Theme.
func (r CatalogRecord) Theme() Theme {
	return NewTheme(r.Name, r.Repository, r.Branch, r.Description, r.Images)
}
