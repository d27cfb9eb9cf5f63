package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/solforge/cli/internal/config"
	errs "github.com/solforge/cli/internal/errors"
	"github.com/solforge/cli/internal/installer"
	"github.com/solforge/cli/internal/output"
	"github.com/solforge/cli/internal/scaffold"
	"github.com/solforge/cli/internal/templates"
)

// runGeneration executes the full scaffold pipeline for a validated
// project name, selected descriptor, and raw option inputs. Shared by
// the new and init commands.
func runGeneration(ctx context.Context, desc templates.Descriptor, projectName, dir string, raw map[string]string, skipInstall bool) error {
	resolved, err := templates.ResolveOptions(desc, raw)
	if err != nil {
		return errs.NewExitError(err, errs.ExitValidationError)
	}

	if dir == "" {
		dir = projectName
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return errs.NewExitError(fmt.Errorf("resolving destination path: %w", err), errs.ExitGeneralError)
	}

	cfg, err := config.NewLoader().Load(flagConfig)
	if err != nil {
		return errs.NewExitError(err, errs.ExitGeneralError)
	}

	tctx := templates.Context{
		ProjectName: projectName,
		Dir:         absDir,
		Options:     resolved,
	}

	inst := installer.New(cfg.PackageManager)
	if !skipInstall && !inst.IsAvailable() {
		output.Warn("package manager not found; dependencies will not be installed",
			"tool", inst.Tool())
	}

	gen := scaffold.New(
		scaffold.NewWriter(),
		spinnerInstaller{inner: inst, tool: inst.Tool()},
		output.NewStepReporter(nil),
		cfg,
		scaffold.Options{SkipInstall: skipInstall},
	)

	if err := gen.Generate(ctx, tctx, desc); err != nil {
		return errs.NewExitError(err, errs.ExitCodeFromError(err))
	}

	printSuccess(tctx, desc)
	return nil
}

// spinnerInstaller wraps the real installer with a terminal spinner for
// the long-running install step.
type spinnerInstaller struct {
	inner *installer.Installer
	tool  string
}

func (s spinnerInstaller) Install(ctx context.Context, dir string) error {
	return output.RunWithSpinner(ctx, func() error {
		return s.inner.Install(ctx, dir)
	}, output.WithTitle(fmt.Sprintf("Installing dependencies with %s...", s.tool)))
}

// printSuccess renders the created workspace summary with an aligned
// file tree.
func printSuccess(tctx templates.Context, desc templates.Descriptor) {
	output.Println("")
	output.Println(output.StyleSummary.Render(
		fmt.Sprintf("Created %s workspace in %s", desc.ID, tctx.Dir)))
	output.Println("")

	entries := []output.FileEntry{
		{Path: tctx.ProjectName + "/", Description: "Workspace root"},
	}
	for _, f := range desc.Generator.Generate(tctx) {
		entries = append(entries, output.FileEntry{
			Path:        "  " + f.Path,
			Description: fileDescription(f.Path),
		})
	}
	entries = append(entries,
		output.FileEntry{Path: "  Anchor.toml", Description: "Anchor configuration"},
		output.FileEntry{Path: "  package.json", Description: "Project manifest"},
	)
	output.Print(output.RenderFileTree(entries, 36))

	output.Println("")
	output.Println("Next steps:")
	output.Println(fmt.Sprintf("  cd %s", tctx.ProjectName))
	output.Println("  anchor build")
	output.Println("  anchor test")
}

// fileDescription returns a short description for a generated file path.
func fileDescription(path string) string {
	switch {
	case strings.HasSuffix(path, "lib.rs"):
		return "Program source"
	case strings.HasSuffix(path, "Cargo.toml"):
		return "Program crate manifest"
	case strings.HasSuffix(path, "Xargo.toml"):
		return "BPF build configuration"
	case strings.HasPrefix(path, "tests/"):
		return "Integration test"
	case strings.HasPrefix(path, "app/"):
		return "Client SDK"
	case strings.HasPrefix(path, "migrations/"):
		return "Deployment script"
	case path == "README.md":
		return "Documentation"
	case path == "tsconfig.json":
		return "TypeScript configuration"
	case path == ".gitignore":
		return ""
	default:
		return ""
	}
}
