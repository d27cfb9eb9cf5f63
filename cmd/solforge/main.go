// Package main is the entry point for the solforge CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/solforge/cli/internal/cmd"
	oerrors "github.com/solforge/cli/internal/errors"
	"github.com/solforge/cli/internal/templates"
)

func main() {
	registry, err := templates.NewBuiltinRegistry()
	if err != nil {
		// A broken built-in catalog is a programming error; fail fast.
		fmt.Fprintln(os.Stderr, "invalid template registry:", err)
		os.Exit(oerrors.ExitGeneralError)
	}

	rootCmd := cmd.NewRootCmd(registry)

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
