package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("SECRET_KEY", "")
	t.Setenv("COOKIE_SECURE", "")
	t.Setenv("TZ", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("port = %s, want 8080", cfg.Port)
	}
	if cfg.DatabasePath != "data/tally.db" {
		t.Fatalf("database path = %s, want data/tally.db", cfg.DatabasePath)
	}
	if cfg.CookieSecure {
		t.Fatal("expected cookie secure to default off")
	}
	if cfg.Timezone != "UTC" {
		t.Fatalf("timezone = %s, want UTC", cfg.Timezone)
	}
}

func TestLoadReadsEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/tally-test.db")
	t.Setenv("SECRET_KEY", "override-secret")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("TZ", "Europe/Berlin")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "9090" {
		t.Fatalf("port = %s, want 9090", cfg.Port)
	}
	if cfg.DatabasePath != "/tmp/tally-test.db" {
		t.Fatalf("database path = %s", cfg.DatabasePath)
	}
	if cfg.SecretKey != "override-secret" {
		t.Fatalf("secret key = %s", cfg.SecretKey)
	}
	if !cfg.CookieSecure {
		t.Fatal("expected cookie secure on")
	}
	if cfg.Timezone != "Europe/Berlin" {
		t.Fatalf("timezone = %s", cfg.Timezone)
	}
}
