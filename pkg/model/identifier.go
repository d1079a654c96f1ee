package model

import (
	"fmt"
	"strings"

	"github.com/glorpus-work/hyprtheme/pkg/errors"
)

// Identifier is a parsed user-supplied theme reference of the form
// name[:branch][@repository]. Empty fields were not given.
type Identifier struct {
	Name       string
	Branch     string
	Repository string
}

// ParseIdentifier parses name[:branch][@repository]. The string is split at
// the first "@" so the repository part may itself contain ":" or "@"
// (https:// and git@ urls), then the left part is split at the first ":".
func ParseIdentifier(raw string) (Identifier, error) {
	raw = strings.TrimSpace(raw)

	var id Identifier
	left := raw
	if at := strings.Index(raw, "@"); at >= 0 {
		left = raw[:at]
		id.Repository = raw[at+1:]
	}
	if colon := strings.Index(left, ":"); colon >= 0 {
		id.Name = left[:colon]
		id.Branch = left[colon+1:]
	} else {
		id.Name = left
	}

	if id.Name == "" && id.Branch == "" && id.Repository == "" {
		return Identifier{}, fmt.Errorf("%q: %w", raw, errors.ErrInvalidIdentifier)
	}
	return id, nil
}

// Matches reports whether every component present in the identifier equals
// the corresponding field of t.
func (id Identifier) Matches(t Theme) bool {
	if id.Name != "" && id.Name != t.Name() {
		return false
	}
	if id.Branch != "" && id.Branch != t.Branch() {
		return false
	}
	if id.Repository != "" && id.Repository != t.Repository() {
		return false
	}
	return true
}

func (id Identifier) String() string {
	var b strings.Builder
	b.WriteString(id.Name)
	if id.Branch != "" {
		b.WriteString(":")
		b.WriteString(id.Branch)
	}
	if id.Repository != "" {
		b.WriteString("@")
		b.WriteString(id.Repository)
	}
	return b.String()
}
