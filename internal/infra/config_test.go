package infra

import "testing"

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("LoadConfig succeeded without DATABASE_URL")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("PORT", "")
	t.Setenv("ASSET_BASE_URL", "")
	t.Setenv("DEFAULT_PROVIDER", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DefaultProvider != "dalle" {
		t.Fatalf("DefaultProvider = %q, want dalle", cfg.DefaultProvider)
	}
	if cfg.AssetBaseURL != "http://localhost:8080/api/v1/assets" {
		t.Fatalf("AssetBaseURL = %q", cfg.AssetBaseURL)
	}
	if cfg.OpenAIModel != "dall-e-3" {
		t.Fatalf("OpenAIModel = %q, want dall-e-3", cfg.OpenAIModel)
	}
	if cfg.StabilityEngine != "stable-diffusion-xl-1024-v1-0" {
		t.Fatalf("StabilityEngine = %q", cfg.StabilityEngine)
	}
}

func TestLoadConfigInheritsPortInAssetBaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("PORT", "1919")
	t.Setenv("ASSET_BASE_URL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.AssetBaseURL != "http://localhost:1919/api/v1/assets" {
		t.Fatalf("AssetBaseURL = %q", cfg.AssetBaseURL)
	}
}

func TestLoadConfigParsesCORSOrigins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://editor.example.com, http://localhost:3000 ")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	want := []string{"https://editor.example.com", "http://localhost:3000"}
	if len(cfg.CORSOrigins) != len(want) {
		t.Fatalf("CORSOrigins = %#v, want %#v", cfg.CORSOrigins, want)
	}
	for i := range want {
		if cfg.CORSOrigins[i] != want[i] {
			t.Fatalf("CORSOrigins[%d] = %q, want %q", i, cfg.CORSOrigins[i], want[i])
		}
	}
}
