// Package config loads the CLI configuration from a YAML file and
// environment variables. Priority: config file > env var > default.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default models per provider.
const (
	defaultOpenAIModel    = "gpt-4o"
	defaultAnthropicModel = "claude-sonnet-4-5"
)

// Config holds the application configuration.
type Config struct {
	Provider string // "openai" or "anthropic"
	APIKey   string
	BaseURL  string
	Model    string
}

// fileConfig maps to the YAML config file structure.
type fileConfig struct {
	Provider string `yaml:"provider,omitempty"`
	APIKey   string `yaml:"api_key,omitempty"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model,omitempty"`
}

// resolve returns the first non-empty value from the provided strings.
func resolve(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Load reads configuration by merging config file, environment variables,
// and defaults. Returns an error for an unknown provider or a missing API key.
func Load() (*Config, error) {
	fc, err := readConfigFile()
	if err != nil {
		return nil, err
	}

	provider := resolve(fc.Provider, os.Getenv("TOOLBELT_PROVIDER"), "openai")

	var keyEnv, defaultModel string
	switch provider {
	case "openai":
		keyEnv, defaultModel = "OPENAI_API_KEY", defaultOpenAIModel
	case "anthropic":
		keyEnv, defaultModel = "ANTHROPIC_API_KEY", defaultAnthropicModel
	default:
		return nil, fmt.Errorf("unknown provider %q (expected openai or anthropic)", provider)
	}

	cfg := &Config{
		Provider: provider,
		APIKey:   resolve(fc.APIKey, os.Getenv(keyEnv)),
		BaseURL:  resolve(fc.BaseURL, os.Getenv("TOOLBELT_BASE_URL")),
		Model:    resolve(fc.Model, os.Getenv("TOOLBELT_MODEL"), defaultModel),
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s is required (set via env var or config file)", keyEnv)
	}

	return cfg, nil
}

// readConfigFile reads and parses the YAML config file. Returns a zero-value
// fileConfig if the file does not exist.
func readConfigFile() (fileConfig, error) {
	var fc fileConfig

	homeDir := os.Getenv("TOOLBELT_HOME")
	if homeDir == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return fc, fmt.Errorf("failed to determine home directory: %w", err)
		}
		homeDir = filepath.Join(h, ".toolbelt")
	}

	path := filepath.Join(homeDir, "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fc, nil
		}
		return fc, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return fc, nil
}
