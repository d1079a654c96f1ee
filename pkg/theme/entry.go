package theme

import "github.com/glorpus-work/hyprtheme/pkg/model"

// Kind tags the variant held by an Entry.
type Kind int

const (
	KindInstalled Kind = iota + 1
	KindOnline
)

func (k Kind) String() string {
	switch k {
	case KindInstalled:
		return "installed"
	case KindOnline:
		return "online"
	default:
		return "unknown"
	}
}

// Entry is either an installed or an online theme.
type Entry struct {
	kind      Kind
	installed *Installed
	online    *Online
}

// InstalledEntry wraps an installed theme.
func InstalledEntry(t *Installed) Entry {
	return Entry{kind: KindInstalled, installed: t}
}

// OnlineEntry wraps an online theme.
func OnlineEntry(t *Online) Entry {
	return Entry{kind: KindOnline, online: t}
}

func (e Entry) Kind() Kind { return e.kind }

// Installed returns the installed variant.
func (e Entry) Installed() (*Installed, bool) {
	return e.installed, e.kind == KindInstalled
}

// Online returns the online variant.
func (e Entry) Online() (*Online, bool) {
	return e.online, e.kind == KindOnline
}

// Theme returns the base record of whichever variant is held.
func (e Entry) Theme() model.Theme {
	switch e.kind {
	case KindInstalled:
		return e.installed.Theme()
	case KindOnline:
		return e.online.Theme()
	default:
		return model.Theme{}
	}
}

func (e Entry) Name() string { return e.Theme().Name() }
