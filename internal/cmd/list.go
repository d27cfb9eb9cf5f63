package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/solforge/cli/internal/output"
	"github.com/solforge/cli/internal/templates"
)

// NewListCmd creates the list command.
func NewListCmd(reg *templates.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Long:  "List the registered scaffold templates with their options.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			descriptors := reg.List()
			if len(descriptors) == 0 {
				output.Println("No templates registered.")
				return nil
			}

			t := output.NewTable("ID", "NAME", "DESCRIPTION", "OPTIONS")
			for _, d := range descriptors {
				flags := make([]string, 0, len(d.Options))
				for _, opt := range d.Options {
					flags = append(flags, "--"+opt.Flag)
				}
				t.Row(d.ID, d.Name, d.Description, strings.Join(flags, ", "))
			}
			output.Println(t.String())
			return nil
		},
	}
}
