package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solforge/cli/internal/testutil"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := NewLoader().Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "yarn", cfg.PackageManager)
	assert.Equal(t, "localnet", cfg.Cluster)
	assert.Equal(t, "~/.config/solana/id.json", cfg.Wallet)
}

func TestLoad_FromFile(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "config.yaml",
		"packageManager: npm\ncluster: devnet\n")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "npm", cfg.PackageManager)
	assert.Equal(t, "devnet", cfg.Cluster)
	// Unset field falls back to the default.
	assert.Equal(t, "~/.config/solana/id.json", cfg.Wallet)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "config.yaml", "packageManager: npm\n")

	t.Setenv("SOLFORGE_PACKAGE_MANAGER", "yarn")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "yarn", cfg.PackageManager)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "config.yaml", "{not yaml::")

	_, err := NewLoader().Load(path)
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/x/y", filepath.Join(home, "x", "y")},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandPath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
