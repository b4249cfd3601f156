package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(envDotenvPath, filepath.Join(t.TempDir(), "missing.env"))

	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.Production() {
		t.Fatalf("expected non-production by default")
	}
	if cfg.FootballData.BaseURL != defaultFdBaseURL {
		t.Fatalf("expected default football-data base url %s, got %s", defaultFdBaseURL, cfg.FootballData.BaseURL)
	}
	if cfg.FootballData.APIKey != "" {
		t.Fatalf("expected empty api key by default, got %s", cfg.FootballData.APIKey)
	}
	if cfg.FootballData.Timeout != defaultFdHTTPTimeout {
		t.Fatalf("expected default timeout, got %s", cfg.FootballData.Timeout)
	}
	if cfg.Web.StaticDir != defaultStaticDir {
		t.Fatalf("expected default static dir, got %s", cfg.Web.StaticDir)
	}
	if cfg.Web.DisplayTimezone != defaultDisplayTZ {
		t.Fatalf("expected default display timezone, got %s", cfg.Web.DisplayTimezone)
	}
	if len(cfg.Web.AllowedOrigins) != 1 || cfg.Web.AllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard cors origin, got %v", cfg.Web.AllowedOrigins)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envDotenvPath, filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv(envPort, "8080")
	t.Setenv(envNodeEnv, "Production")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envFdBaseURL, "http://example.com/v4")
	t.Setenv(envFdAPIKey, "secret-key")
	t.Setenv(envFdHTTPTimeout, "3s")
	t.Setenv(envStaticDir, "/srv/www")
	t.Setenv(envDisplayTZ, "Europe/London")
	t.Setenv(envCORSOrigins, "http://localhost:3000, https://matches.example.com,")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %s", cfg.Port)
	}
	if !cfg.Production() {
		t.Fatalf("expected production environment, got %q", cfg.Environment)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider fixture, got %s", cfg.Provider)
	}
	if cfg.FootballData.BaseURL != "http://example.com/v4" {
		t.Fatalf("expected base url override, got %s", cfg.FootballData.BaseURL)
	}
	if cfg.FootballData.APIKey != "secret-key" {
		t.Fatalf("expected api key override, got %s", cfg.FootballData.APIKey)
	}
	if cfg.FootballData.Timeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", cfg.FootballData.Timeout)
	}
	if cfg.Web.StaticDir != "/srv/www" || cfg.Web.DisplayTimezone != "Europe/London" {
		t.Fatalf("unexpected web config %+v", cfg.Web)
	}
	if len(cfg.Web.AllowedOrigins) != 2 || cfg.Web.AllowedOrigins[1] != "https://matches.example.com" {
		t.Fatalf("unexpected cors origins %v", cfg.Web.AllowedOrigins)
	}
}

func TestAppEnvTakesPrecedenceOverNodeEnv(t *testing.T) {
	t.Setenv(envDotenvPath, filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv(envNodeEnv, "production")
	t.Setenv(envAppEnv, "development")

	if cfg := Load(); cfg.Production() {
		t.Fatalf("expected APP_ENV to win, got %q", cfg.Environment)
	}
}

func TestLoadReadsDotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("FOOTBALL_DATA_API_KEY=from-dotenv\n"), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	t.Setenv(envDotenvPath, path)
	// Register for cleanup; godotenv sets the variable directly in the process env.
	t.Setenv(envFdAPIKey, "")
	os.Unsetenv(envFdAPIKey)

	cfg := Load()

	if cfg.FootballData.APIKey != "from-dotenv" {
		t.Fatalf("expected api key from dotenv, got %q", cfg.FootballData.APIKey)
	}
}

func TestDotenvDoesNotOverrideProcessEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("PORT=9999\n"), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	t.Setenv(envDotenvPath, path)
	t.Setenv(envPort, "7000")

	if cfg := Load(); cfg.Port != "7000" {
		t.Fatalf("expected process env to win, got %s", cfg.Port)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envDotenvPath, filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv(envFdHTTPTimeout, "not-a-duration")

	cfg := Load()

	if cfg.FootballData.Timeout != defaultFdHTTPTimeout {
		t.Fatalf("expected default timeout on invalid value, got %s", cfg.FootballData.Timeout)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envDotenvPath, filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv(envFdHTTPTimeout, "0s")

	cfg := Load()

	if cfg.FootballData.Timeout != defaultFdHTTPTimeout {
		t.Fatalf("expected default timeout on non-positive value, got %s", cfg.FootballData.Timeout)
	}
}
