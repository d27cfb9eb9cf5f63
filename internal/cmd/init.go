package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	errs "github.com/solforge/cli/internal/errors"
	"github.com/solforge/cli/internal/templates"
)

// NewInitCmd creates the init command: fully interactive workspace
// generation. Prompts collect the project name, template, and per-option
// values with the same validation rules as the new command.
func NewInitCmd(reg *templates.Registry) *cobra.Command {
	var noInstall bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new Anchor workspace interactively",
		Long: `Create a new Anchor workspace through interactive prompts.

Prompts for the project name, template, and each template option in
order, then generates the workspace exactly like the new command.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, reg, noInstall)
		},
	}

	c.Flags().BoolVar(&noInstall, "no-install", false,
		"Skip the dependency installation step")

	return c
}

func runInit(c *cobra.Command, reg *templates.Registry, noInstall bool) error {
	descriptors := reg.List()
	if len(descriptors) == 0 {
		return errs.NewExitError(
			errs.NewNotFoundError("no templates registered", ""),
			errs.ExitNotFound)
	}

	var projectName, templateID string

	templateOptions := make([]huh.Option[string], 0, len(descriptors))
	for _, d := range descriptors {
		templateOptions = append(templateOptions,
			huh.NewOption(fmt.Sprintf("%s (%s)", d.Name, d.Description), d.ID))
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Project name").
			Placeholder("my-vault").
			Validate(validateNewProjectName).
			Value(&projectName),
		huh.NewSelect[string]().
			Title("Template").
			Options(templateOptions...).
			Value(&templateID),
	))

	if err := form.Run(); err != nil {
		return errs.NewExitError(fmt.Errorf("collecting answers: %w", err), errs.ExitGeneralError)
	}

	desc, ok := reg.Get(templateID)
	if !ok {
		// Unreachable with a menu selection; guard anyway.
		return errs.NewExitError(
			errs.NewNotFoundError(fmt.Sprintf("unknown template %q", templateID), ""),
			errs.ExitNotFound)
	}

	raw, err := promptOptions(desc)
	if err != nil {
		return errs.NewExitError(fmt.Errorf("collecting option values: %w", err), errs.ExitGeneralError)
	}

	return runGeneration(c.Context(), desc, projectName, "", raw, noInstall)
}

// validateNewProjectName applies the naming rules plus a collision check,
// so invalid names re-prompt instead of failing after answer collection.
func validateNewProjectName(name string) error {
	if err := templates.ValidateProjectName(name); err != nil {
		var detail *errs.DetailError
		if errors.As(err, &detail) {
			return errors.New(detail.Message)
		}
		return err
	}
	if _, err := os.Stat(name); err == nil {
		return fmt.Errorf("%s already exists in the current directory", name)
	}
	return nil
}

// promptOptions collects a raw value for each declared option. Inputs are
// prefilled with the registered default and validated with the option's
// own coercion and predicate, so the later ResolveOptions pass cannot
// fail on interactive input.
func promptOptions(desc templates.Descriptor) (map[string]string, error) {
	raw := make(map[string]string, len(desc.Options))
	if len(desc.Options) == 0 {
		return raw, nil
	}

	values := make([]*string, len(desc.Options))
	fields := make([]huh.Field, 0, len(desc.Options))

	for i, opt := range desc.Options {
		opt := opt
		v := new(string)
		if opt.Default != nil {
			*v = opt.Default.String()
		}
		values[i] = v

		fields = append(fields, huh.NewInput().
			Title(fmt.Sprintf("--%s", opt.Flag)).
			Description(opt.Description).
			Validate(func(s string) error {
				val, err := templates.Coerce(opt.Type, s)
				if err != nil {
					return err
				}
				if opt.Validate != nil {
					return opt.Validate(val)
				}
				return nil
			}).
			Value(v))
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return nil, err
	}

	for i, opt := range desc.Options {
		raw[opt.Name] = *values[i]
	}
	return raw, nil
}
