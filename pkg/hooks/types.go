// Package hooks runs the load and unload hooks declared by theme manifests.
package hooks

// Operation names the lifecycle step a hook runs for.
type Operation string

// Supported hook operations.
const (
	Load   Operation = "load"
	Unload Operation = "unload"
	Init   Operation = "init"
)

// TengoExtension marks hooks that run in the embedded script VM.
const TengoExtension = ".tengo"

// Context describes the theme a hook runs for.
type Context struct {
	ThemeName string
	ThemeDir  string
	Operation Operation
	Vars      map[string]interface{}
}
