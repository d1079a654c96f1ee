package cli

// Default values for CLI flags and output.
const (
	// MaxDescriptionLength is the maximum width of a theme description in the list table.
	MaxDescriptionLength = 50
	// MaxRepositoryLength is the maximum width of a repository in the list table.
	MaxRepositoryLength = 60
)
