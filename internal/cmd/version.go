package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solforge/cli/internal/output"
	"github.com/solforge/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			info := version.GetInfo()
			output.Println(fmt.Sprintf("solforge %s (%s)", info.Version, info.Commit))
			return nil
		},
	}
}
