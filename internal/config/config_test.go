package config

import "testing"

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("SURVEY_JWT_SECRET", "")
	t.Setenv("SURVEY_ADMIN_EMAIL", "")
	t.Setenv("SURVEY_ADMIN_PASSWORD", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when secrets are unset")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SURVEY_JWT_SECRET", "s3cret")
	t.Setenv("SURVEY_ADMIN_EMAIL", "admin@empresa.com")
	t.Setenv("SURVEY_ADMIN_PASSWORD", "admin123")
	t.Setenv("SURVEY_ADDR", "")
	t.Setenv("SURVEY_DB_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.DBPath != "survey.db" {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.AdminEmail != "admin@empresa.com" {
		t.Fatalf("unexpected admin email %q", cfg.AdminEmail)
	}
}
