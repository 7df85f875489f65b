package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("PF_SET", "value")

	cases := map[string]string{
		"${PF_SET}":             "value",
		"${PF_SET:fallback}":    "value",
		"${PF_UNSET:fallback}":  "fallback",
		"${PF_UNSET:}":          "",
		"${PF_UNSET}":           "${PF_UNSET}",
		"a-${PF_SET}-${PF_SET}": "a-value-value",
	}
	for in, want := range cases {
		if got := expandEnv(in); got != want {
			t.Errorf("expandEnv(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadFrom_MergesEnvironmentFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", `
app:
  name: promptforge-api
llm:
  default_provider: anthropic
  providers:
    anthropic:
      api_key: ${PF_TEST_KEY:}
      model: claude-sonnet-4-20250514
refine:
  analysis_max_tokens: 512
`)
	writeFile(t, dir, "config.staging.yaml", `
refine:
  provider: openai
  refinement_max_tokens: 4096
`)
	t.Setenv("APP_ENV", "staging")
	t.Setenv("PF_TEST_KEY", "sk-test")

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LLM.Providers["anthropic"].APIKey != "sk-test" {
		t.Errorf("expected expanded api key, got %q", cfg.LLM.Providers["anthropic"].APIKey)
	}
	if cfg.Refine.AnalysisMaxTokens != 512 || cfg.Refine.RefinementMaxTokens != 4096 {
		t.Errorf("unexpected refine config %+v", cfg.Refine)
	}
	if cfg.RefineProvider() != "openai" {
		t.Errorf("expected refine provider override, got %q", cfg.RefineProvider())
	}
	if cfg.Server.HTTP.Port != 8080 || cfg.Server.HTTP.ShutdownTimeout != 30*time.Second {
		t.Errorf("defaults not applied: %+v", cfg.Server.HTTP)
	}
	if cfg.Observability.Metrics.Path != "/metrics" {
		t.Errorf("unexpected metrics path %q", cfg.Observability.Metrics.Path)
	}
}

func TestLoadFrom_MissingDirUsesDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LLM.DefaultProvider != "anthropic" || cfg.RefineProvider() != "anthropic" {
		t.Errorf("unexpected provider defaults: %+v", cfg.LLM)
	}
	if !cfg.Refine.JSONResponseFormat {
		t.Error("json response format should default to true")
	}
}

func TestRefineProvider_NilConfig(t *testing.T) {
	var cfg *Config
	if cfg.RefineProvider() != "" {
		t.Error("nil config should yield empty provider")
	}
}
