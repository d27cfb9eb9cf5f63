package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/solforge/cli/internal/config"
	errs "github.com/solforge/cli/internal/errors"
	"github.com/solforge/cli/internal/output"
	"github.com/solforge/cli/internal/templates"
)

// Installer runs the external package manager's install step in a
// generated workspace.
type Installer interface {
	Install(ctx context.Context, dir string) error
}

// skeletonDirs is the fixed directory skeleton created under the
// destination root before any file is written.
var skeletonDirs = []string{
	"programs",
	"tests",
	"app",
	"migrations",
	filepath.Join("target", "deploy"),
}

// Options configures a Generator.
type Options struct {
	// SkipInstall skips the dependency installation step.
	SkipInstall bool
}

// Generator is the workspace generation orchestrator. It composes the
// writer, installer, and reporter into one end-to-end operation with
// fixed step ordering and rollback on partial failure.
type Generator struct {
	writer    *Writer
	installer Installer
	reporter  output.StepReporter
	cfg       *config.Config
	opts      Options
}

// New creates a workspace generator. A nil reporter discards progress
// events; a nil config uses built-in defaults.
func New(w *Writer, inst Installer, rep output.StepReporter, cfg *config.Config, opts Options) *Generator {
	if rep == nil {
		rep = output.DiscardReporter{}
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return &Generator{writer: w, installer: inst, reporter: rep, cfg: cfg, opts: opts}
}

// Generate runs the full pipeline for a resolved generation context:
//
//  1. collision pre-flight (no mutation yet)
//  2. scaffold directory skeleton
//  3. template file emission
//  4. Anchor.toml synthesis
//  5. package.json synthesis
//  6. dependency installation
//
// Any failure in steps 2-6 triggers best-effort deletion of the
// destination path; the original error is returned unmodified. Rollback
// failure is logged but never replaces the triggering error.
func (g *Generator) Generate(ctx context.Context, tctx templates.Context, desc templates.Descriptor) error {
	// Step 1: the destination must not exist. Nothing has been created,
	// so failure here never rolls back.
	if g.writer.PathExists(tctx.Dir) {
		return errs.NewPathCollisionError(tctx.Dir)
	}

	if err := g.run(ctx, tctx, desc); err != nil {
		g.reporter.FailStep(err.Error())
		g.rollback(tctx.Dir)
		return err
	}

	g.reporter.CompleteStep()
	return nil
}

func (g *Generator) run(ctx context.Context, tctx templates.Context, desc templates.Descriptor) error {
	// Step 2: directory skeleton.
	g.reporter.StartStep("Creating project directories")
	for _, dir := range skeletonDirs {
		if err := g.writer.EnsureDir(filepath.Join(tctx.Dir, dir)); err != nil {
			return err
		}
	}

	// Step 3: template files.
	g.reporter.StartStep(fmt.Sprintf("Generating %s program files", desc.ID))
	files := desc.Generator.Generate(tctx)
	if err := g.writer.WriteGenerated(tctx.Dir, files); err != nil {
		return err
	}
	output.Debug("wrote template files", "template", desc.ID, "count", len(files))

	// Step 4: framework configuration manifest.
	g.reporter.StartStep("Writing Anchor.toml")
	anchorToml, err := RenderAnchorManifest(tctx, g.cfg)
	if err != nil {
		return err
	}
	if err := g.writer.WriteFile(filepath.Join(tctx.Dir, "Anchor.toml"), anchorToml); err != nil {
		return err
	}

	// Step 5: project manifest with merged dependency maps.
	g.reporter.StartStep("Writing package.json")
	pkgJSON, err := RenderPackageManifest(tctx,
		desc.Generator.Dependencies(tctx),
		desc.Generator.DevDependencies(tctx))
	if err != nil {
		return err
	}
	if err := g.writer.WriteFile(filepath.Join(tctx.Dir, "package.json"), pkgJSON); err != nil {
		return err
	}

	// Step 6: dependency installation.
	if g.opts.SkipInstall {
		output.Debug("skipping dependency install")
		return nil
	}
	g.reporter.StartStep("Installing dependencies")
	return g.installer.Install(ctx, tctx.Dir)
}

// rollback deletes the destination path after a failed step. Best-effort:
// a deletion failure is reported but never surfaced to the caller.
func (g *Generator) rollback(dir string) {
	if err := g.writer.RemoveAll(dir); err != nil {
		output.Warn("rollback failed; partial workspace left behind", "path", dir, "error", err)
	}
}
