// Package installer invokes the external package manager to install a
// generated workspace's dependencies.
package installer

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	errs "github.com/solforge/cli/internal/errors"
	"github.com/solforge/cli/internal/output"
)

// InstallError wraps a failed install process run.
type InstallError struct {
	// Tool is the package manager binary that was invoked.
	Tool string

	// Err is the spawn or exit failure.
	Err error
}

// Error implements the error interface.
func (e *InstallError) Error() string {
	return fmt.Sprintf("%s install failed: %v", e.Tool, e.Err)
}

// Unwrap returns the underlying error.
func (e *InstallError) Unwrap() error {
	return e.Err
}

// Is reports ErrInstall so callers can classify without the concrete type.
func (e *InstallError) Is(target error) bool {
	return target == errs.ErrInstall
}

// Installer runs an external package manager's install command.
type Installer struct {
	tool string
}

// New creates an installer for the given package manager binary
// (yarn or npm). An empty tool defaults to yarn.
func New(tool string) *Installer {
	if tool == "" {
		tool = "yarn"
	}
	return &Installer{tool: tool}
}

// Tool returns the package manager binary name.
func (i *Installer) Tool() string {
	return i.tool
}

// IsAvailable probes PATH for the package manager without side effects.
func (i *Installer) IsAvailable() bool {
	_, err := exec.LookPath(i.tool)
	return err == nil
}

// Install runs the package manager's install command in dir and waits for
// it to exit. Availability is re-checked first so a missing binary fails
// with an actionable error rather than a generic spawn failure.
func (i *Installer) Install(ctx context.Context, dir string) error {
	path, err := exec.LookPath(i.tool)
	if err != nil {
		return &errs.DetailError{
			Type:    "tool not installed",
			Message: fmt.Sprintf("%s was not found in PATH", i.tool),
			Hint:    installHint(i.tool),
			Cause:   errs.ErrToolNotInstalled,
		}
	}

	output.Debug("running installer", "tool", i.tool, "dir", dir)

	cmd := exec.CommandContext(ctx, path, "install")
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	if err != nil {
		if trimmed := strings.TrimSpace(string(out)); trimmed != "" {
			output.Debug("installer output", "tool", i.tool, "output", trimmed)
		}
		return &InstallError{Tool: i.tool, Err: err}
	}

	return nil
}

// installHint returns installation instructions for a missing tool.
func installHint(tool string) string {
	switch tool {
	case "yarn":
		return "Install yarn with: npm install -g yarn (or corepack enable)."
	case "npm":
		return "Install Node.js from https://nodejs.org to get npm."
	default:
		return fmt.Sprintf("Install %s and make sure it is in PATH.", tool)
	}
}
