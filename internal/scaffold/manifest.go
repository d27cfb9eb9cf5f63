package scaffold

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"

	"github.com/solforge/cli/internal/config"
	errs "github.com/solforge/cli/internal/errors"
	"github.com/solforge/cli/internal/templates"
)

// anchorRegistryURL is the default Anchor program registry.
const anchorRegistryURL = "https://api.apr.dev"

// anchorManifest models Anchor.toml.
type anchorManifest struct {
	Programs map[string]map[string]string `toml:"programs"`
	Registry anchorRegistry               `toml:"registry"`
	Provider anchorProvider               `toml:"provider"`
	Scripts  map[string]string            `toml:"scripts"`
}

type anchorRegistry struct {
	URL string `toml:"url"`
}

type anchorProvider struct {
	Cluster string `toml:"cluster"`
	Wallet  string `toml:"wallet"`
}

// RenderAnchorManifest synthesizes Anchor.toml content for a generation
// context: the program identifier derived from the project name plus
// fixed registry and provider defaults.
func RenderAnchorManifest(ctx templates.Context, cfg *config.Config) (string, error) {
	m := anchorManifest{
		Programs: map[string]map[string]string{
			"localnet": {ctx.ProgramName(): templates.PlaceholderProgramID},
		},
		Registry: anchorRegistry{URL: anchorRegistryURL},
		Provider: anchorProvider{
			Cluster: cfg.Cluster,
			Wallet:  cfg.Wallet,
		},
		Scripts: map[string]string{
			"test": "yarn run ts-mocha -p ./tsconfig.json -t 1000000 tests/**/*.ts",
		},
	}

	out, err := toml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshaling Anchor.toml: %w", err)
	}
	return string(out), nil
}

// packageManifest models package.json. Map fields marshal with sorted
// keys, keeping the manifest byte-stable for a fixed dependency set.
type packageManifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	License         string            `json:"license"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// RenderPackageManifest synthesizes package.json content, merging the
// generator's runtime and development dependency maps. Every version
// constraint must parse as a semver constraint.
func RenderPackageManifest(ctx templates.Context, deps, devDeps templates.DependencyMap) (string, error) {
	if err := validateConstraints(deps); err != nil {
		return "", err
	}
	if err := validateConstraints(devDeps); err != nil {
		return "", err
	}

	m := packageManifest{
		Name:    ctx.ProjectName,
		Version: "0.1.0",
		License: "ISC",
		Scripts: map[string]string{
			"lint":     `prettier */*.js "*/**/*{.js,.ts}" --check`,
			"lint:fix": `prettier */*.js "*/**/*{.js,.ts}" --write`,
		},
		Dependencies:    deps,
		DevDependencies: devDeps,
	}

	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling package.json: %w", err)
	}
	return string(out) + "\n", nil
}

// validateConstraints checks that every dependency version string parses
// as a semver constraint.
func validateConstraints(deps templates.DependencyMap) error {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := semver.NewConstraint(deps[name]); err != nil {
			return errs.Wrap(errs.ErrValidation,
				fmt.Sprintf("dependency %s has invalid version constraint %q", name, deps[name]))
		}
	}
	return nil
}
