package fsutil

// File and directory permission constants used when hyprtheme writes
// manifests, configuration and theme directories.
const (
	FileModeDefault = 0o644 // -rw-r--r--: manifests and config files
	FileModeExec    = 0o755 // -rwxr-xr-x: hook scripts

	DirModeDefault = 0o755 // drwxr-xr-x: theme and link target directories
	DirModeSecure  = 0o750 // drwxr-x---: config directory
)

const (
	// AppName is the name of the application used in paths.
	AppName = "hyprtheme"

	// BackupSuffix is appended to a link target that existed before enable.
	BackupSuffix = ".hyprtheme.bak"
)
