package cli

import (
	"fmt"

	"github.com/hashicorp/go-version"
	"github.com/spf13/cobra"
)

// Version is checked against the requires constraint of theme manifests.
const (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version information for hyprtheme",
		RunE:  runVersion,

		Annotations: map[string]string{annotationNoThemeDirs: "true"},
	}

	return cmd
}

func runVersion(cmd *cobra.Command, _ []string) error {
	v, err := version.NewVersion(Version)
	if err != nil {
		return fmt.Errorf("invalid build version %q: %w", Version, err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "hyprtheme version %s\n", v.String())
	_, _ = fmt.Fprintf(out, "Build date: %s\n", BuildDate)
	_, _ = fmt.Fprintf(out, "Git commit: %s\n", GitCommit)
	return nil
}
