package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/solforge/cli/internal/errors"
	"github.com/solforge/cli/internal/templates"
)

// NewNewCmd creates the new command: non-interactive workspace generation.
// Every registered template option is suppliable via its declared flag
// token; flags are registered as strings and coerced per the selected
// template at run time.
func NewNewCmd(reg *templates.Registry) *cobra.Command {
	var templateFlag string
	var dirFlag string
	var noInstall bool

	// flag token -> raw value, for the union of all templates' options.
	optionFlags := make(map[string]*string)

	c := &cobra.Command{
		Use:   "new <project-name>",
		Short: "Create a new Anchor workspace",
		Long: fmt.Sprintf(`Create a new Anchor workspace from a template, non-interactively.

Templates: %s

Examples:
  # Scaffold a token vault workspace
  solforge new my-vault --template vault

  # Override a template option
  solforge new my-vault --template vault --token-decimals 6

  # Skip the dependency install step
  solforge new my-vault --template vault --no-install`, strings.Join(reg.IDs(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runNew(c, reg, args[0], templateFlag, dirFlag, noInstall, optionFlags)
		},
	}

	c.Flags().StringVarP(&templateFlag, "template", "t", "",
		fmt.Sprintf("Template to use (%s)", strings.Join(reg.IDs(), ", ")))
	c.Flags().StringVarP(&dirFlag, "dir", "d", "",
		"Directory to create the workspace in (defaults to project name)")
	c.Flags().BoolVar(&noInstall, "no-install", false,
		"Skip the dependency installation step")

	// One string flag per distinct option flag token across all templates.
	// The first declaring template supplies the help text.
	for _, d := range reg.List() {
		for _, opt := range d.Options {
			if _, done := optionFlags[opt.Flag]; done {
				continue
			}
			p := new(string)
			optionFlags[opt.Flag] = p
			c.Flags().StringVar(p, opt.Flag, "", opt.Description)
		}
	}

	return c
}

func runNew(c *cobra.Command, reg *templates.Registry, projectName, templateID, dir string, noInstall bool, optionFlags map[string]*string) error {
	if err := templates.ValidateProjectName(projectName); err != nil {
		return errs.NewExitError(err, errs.ExitValidationError)
	}

	if templateID == "" {
		return errs.NewExitError(
			errs.NewValidationError("no template specified", "",
				fmt.Sprintf("Pass --template with one of: %s", strings.Join(reg.IDs(), ", "))),
			errs.ExitValidationError)
	}

	desc, ok := reg.Get(templateID)
	if !ok {
		return errs.NewExitError(
			errs.NewNotFoundError(
				fmt.Sprintf("unknown template %q", templateID),
				fmt.Sprintf("Valid templates: %s", strings.Join(reg.IDs(), ", "))),
			errs.ExitNotFound)
	}

	// Only explicitly supplied flags participate; defaults fill the rest.
	raw := make(map[string]string)
	for _, opt := range desc.Options {
		if c.Flags().Changed(opt.Flag) {
			raw[opt.Name] = *optionFlags[opt.Flag]
		}
	}

	return runGeneration(c.Context(), desc, projectName, dir, raw, noInstall)
}
