package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolateConfig points TOOLBELT_HOME at an empty temp dir and clears the
// environment variables Load consults.
func isolateConfig(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("TOOLBELT_HOME", tmpDir)
	for _, key := range []string{"TOOLBELT_PROVIDER", "TOOLBELT_MODEL", "TOOLBELT_BASE_URL", "OPENAI_API_KEY", "ANTHROPIC_API_KEY"} {
		t.Setenv(key, "")
	}
	return tmpDir
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfig(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "openai" {
		t.Errorf("expected default provider openai, got %q", cfg.Provider)
	}
	if cfg.Model != defaultOpenAIModel {
		t.Errorf("expected default model, got %q", cfg.Model)
	}
	if cfg.APIKey != "sk-test" {
		t.Errorf("expected key from env, got %q", cfg.APIKey)
	}
}

func TestLoad_MissingKey(t *testing.T) {
	isolateConfig(t)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when no API key is set")
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("expected error naming the key env var, got: %v", err)
	}
}

func TestLoad_AnthropicProvider(t *testing.T) {
	isolateConfig(t)
	t.Setenv("TOOLBELT_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("expected anthropic provider, got %q", cfg.Provider)
	}
	if cfg.Model != defaultAnthropicModel {
		t.Errorf("expected anthropic default model, got %q", cfg.Model)
	}
}

func TestLoad_UnknownProvider(t *testing.T) {
	isolateConfig(t)
	t.Setenv("TOOLBELT_PROVIDER", "cohere")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestLoad_FileOverridesEnv(t *testing.T) {
	tmpDir := isolateConfig(t)
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("TOOLBELT_MODEL", "env-model")

	content := "api_key: sk-file\nmodel: file-model\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "sk-file" {
		t.Errorf("config file should override env, got %q", cfg.APIKey)
	}
	if cfg.Model != "file-model" {
		t.Errorf("config file should override env, got %q", cfg.Model)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	tmpDir := isolateConfig(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("provider: [oops"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}
