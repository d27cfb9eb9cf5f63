package scaffold

import (
	"encoding/json"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solforge/cli/internal/config"
	errs "github.com/solforge/cli/internal/errors"
	"github.com/solforge/cli/internal/templates"
)

func manifestContext() templates.Context {
	return templates.Context{
		ProjectName: "my-vault",
		Dir:         "/tmp/my-vault",
		Options:     map[string]templates.Value{},
	}
}

func TestRenderAnchorManifest(t *testing.T) {
	out, err := RenderAnchorManifest(manifestContext(), config.Default())
	require.NoError(t, err)

	var parsed struct {
		Programs map[string]map[string]string `toml:"programs"`
		Registry struct {
			URL string `toml:"url"`
		} `toml:"registry"`
		Provider struct {
			Cluster string `toml:"cluster"`
			Wallet  string `toml:"wallet"`
		} `toml:"provider"`
		Scripts map[string]string `toml:"scripts"`
	}
	require.NoError(t, toml.Unmarshal([]byte(out), &parsed))

	// Program identifier is the project name with hyphens replaced.
	assert.Equal(t, templates.PlaceholderProgramID, parsed.Programs["localnet"]["my_vault"])
	assert.Equal(t, "https://api.apr.dev", parsed.Registry.URL)
	assert.Equal(t, "localnet", parsed.Provider.Cluster)
	assert.Equal(t, "~/.config/solana/id.json", parsed.Provider.Wallet)
	assert.Contains(t, parsed.Scripts["test"], "ts-mocha")
}

func TestRenderAnchorManifest_UsesConfig(t *testing.T) {
	cfg := &config.Config{Cluster: "devnet", Wallet: "/keys/id.json"}

	out, err := RenderAnchorManifest(manifestContext(), cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "devnet")
	assert.Contains(t, out, "/keys/id.json")
}

func TestRenderPackageManifest(t *testing.T) {
	deps := templates.DependencyMap{
		"@coral-xyz/anchor": "^0.29.0",
		"@solana/web3.js":   "^1.87.6",
	}
	devDeps := templates.DependencyMap{"typescript": "^4.3.5"}

	out, err := RenderPackageManifest(manifestContext(), deps, devDeps)
	require.NoError(t, err)

	var parsed struct {
		Name            string            `json:"name"`
		Version         string            `json:"version"`
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
		Scripts         map[string]string `json:"scripts"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))

	assert.Equal(t, "my-vault", parsed.Name)
	assert.Equal(t, "0.1.0", parsed.Version)
	// Exact dependency-map equality with what the generator returned.
	assert.Equal(t, map[string]string(deps), parsed.Dependencies)
	assert.Equal(t, map[string]string(devDeps), parsed.DevDependencies)
	assert.Contains(t, parsed.Scripts, "lint")
}

func TestRenderPackageManifest_Deterministic(t *testing.T) {
	deps := templates.DependencyMap{"b": "^1.0.0", "a": "^2.0.0", "c": "^3.0.0"}

	first, err := RenderPackageManifest(manifestContext(), deps, nil)
	require.NoError(t, err)
	second, err := RenderPackageManifest(manifestContext(), deps, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderPackageManifest_InvalidConstraint(t *testing.T) {
	deps := templates.DependencyMap{"broken": "not-a-version!!"}

	_, err := RenderPackageManifest(manifestContext(), deps, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
	assert.Contains(t, err.Error(), "broken")
}
