// Package cmd provides command implementations for the solforge CLI.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/solforge/cli/internal/output"
	"github.com/solforge/cli/internal/templates"
	"github.com/solforge/cli/internal/version"
)

var (
	// Global flags
	flagConfig  string
	flagVerbose bool
)

// NewRootCmd creates the base command for the solforge CLI. The template
// registry is passed in explicitly so tests can run against isolated
// instances.
func NewRootCmd(reg *templates.Registry) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "solforge",
		Short: "Solana Anchor workspace scaffolder",
		Long: `solforge scaffolds Solana Anchor workspaces from built-in templates.

It provides commands to:
  - List the available templates and their options
  - Create a workspace non-interactively with flags
  - Create a workspace through interactive prompts`,
		PersistentPreRunE: initializeGlobals,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to config file (env: SOLFORGE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "increase output verbosity")

	rootCmd.AddCommand(NewListCmd(reg))
	rootCmd.AddCommand(NewNewCmd(reg))
	rootCmd.AddCommand(NewInitCmd(reg))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging based on global flags.
func initializeGlobals(_ *cobra.Command, _ []string) error {
	output.SetupLogging(flagVerbose)

	info := version.GetInfo()
	output.Debug("solforge started", "version", info.Version, "commit", info.Commit)

	return nil
}
