// Package config loads solforge CLI configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for solforge configuration.
const envPrefix = "SOLFORGE"

// Defaults applied when neither the config file nor the environment
// provides a value.
const (
	DefaultPackageManager = "yarn"
	DefaultCluster        = "localnet"
	DefaultWallet         = "~/.config/solana/id.json"
)

// Config holds workspace generation defaults.
type Config struct {
	// PackageManager is the dependency installer binary (yarn or npm).
	PackageManager string `mapstructure:"packageManager"`

	// Cluster is the provider cluster written to Anchor.toml.
	Cluster string `mapstructure:"cluster"`

	// Wallet is the provider wallet path written to Anchor.toml.
	Wallet string `mapstructure:"wallet"`
}

// Default returns a Config populated with built-in defaults.
func Default() *Config {
	return &Config{
		PackageManager: DefaultPackageManager,
		Cluster:        DefaultCluster,
		Wallet:         DefaultWallet,
	}
}

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("packageManager", "SOLFORGE_PACKAGE_MANAGER")
	_ = v.BindEnv("cluster", "SOLFORGE_CLUSTER")
	_ = v.BindEnv("wallet", "SOLFORGE_WALLET")

	v.SetDefault("packageManager", DefaultPackageManager)
	v.SetDefault("cluster", DefaultCluster)
	v.SetDefault("wallet", DefaultWallet)

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, the default config file path is used.
// A missing config file is not an error; environment variables and
// defaults still apply.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		configFile = DefaultConfigFile()
	}

	expanded, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	// Only read the file if it exists; defaults and env vars apply either way.
	if _, err := os.Stat(expanded); err == nil {
		l.v.SetConfigFile(expanded)
		l.v.SetConfigType("yaml")
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", expanded, err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfigFile returns the default config file location.
func DefaultConfigFile() string {
	return filepath.Join("~", ".config", "solforge", "config.yaml")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~"+string(os.PathSeparator)) || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
