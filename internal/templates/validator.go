package templates

import (
	"fmt"
	"unicode"

	errs "github.com/solforge/cli/internal/errors"
)

// Directory names the scaffold itself produces; a project named after one
// of them would shadow its own workspace layout.
var reservedNames = map[string]bool{
	"programs":     true,
	"tests":        true,
	"app":          true,
	"migrations":   true,
	"target":       true,
	"node_modules": true,
}

// ValidateProjectName checks that a name is usable as a project directory
// name and as the basis of a program identifier.
func ValidateProjectName(name string) error {
	if name == "" {
		return errs.NewValidationError("project name cannot be empty", "",
			"Provide a name like my-vault.")
	}

	if !unicode.IsLetter(rune(name[0])) {
		return errs.NewValidationError(
			fmt.Sprintf("invalid project name %q: must start with a letter", name), "",
			"Project names start with a letter and contain only letters, digits, hyphens, and underscores.")
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return errs.NewValidationError(
				fmt.Sprintf("invalid project name %q: contains invalid character %q", name, r), "",
				"Project names contain only letters, digits, hyphens, and underscores.")
		}
	}

	if reservedNames[name] {
		return errs.NewValidationError(
			fmt.Sprintf("invalid project name %q: reserved word", name), "",
			"This name collides with a workspace directory; choose another.")
	}

	return nil
}
