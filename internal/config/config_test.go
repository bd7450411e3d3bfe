package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sensitivity != "medium" {
		t.Errorf("Sensitivity = %q, want %q", cfg.Sensitivity, "medium")
	}
	if cfg.WordCloudSize != 50 {
		t.Errorf("WordCloudSize = %d, want 50", cfg.WordCloudSize)
	}
	if cfg.DBPath == "" {
		t.Error("DBPath should have a default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TOPICS_SENSITIVITY", "high")
	t.Setenv("TOPICS_WORDCLOUD_SIZE", "100")
	t.Setenv("TOPICS_BACKEND_URL", "http://localhost:9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sensitivity != "high" {
		t.Errorf("Sensitivity = %q, want %q", cfg.Sensitivity, "high")
	}
	if cfg.WordCloudSize != 100 {
		t.Errorf("WordCloudSize = %d, want 100", cfg.WordCloudSize)
	}
	if cfg.BackendURL != "http://localhost:9000" {
		t.Errorf("BackendURL = %q", cfg.BackendURL)
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("TOPICS_HTTP_TIMEOUT_SECONDS", "-5")
	if _, err := Load(); err == nil {
		t.Error("expected error for negative timeout")
	}
}

func TestLoadIgnoresUnparsableInt(t *testing.T) {
	t.Setenv("TOPICS_CACHE_SIZE", "not-a-number")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CacheSize != 16 {
		t.Errorf("CacheSize = %d, want fallback 16", cfg.CacheSize)
	}
}
