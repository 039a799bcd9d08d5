package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MERITBOT_PORT", "DATABASE_URL", "MERIT_CSV", "STATIC_DIR",
		"LOG_LEVEL", "GEMINI_API_KEY", "MERITBOT_MODEL", "NATS_URL", "NATS_TOKEN",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.Port != 8760 {
		t.Errorf("Port = %d, want 8760", cfg.Port)
	}
	if cfg.CSVPath != "merit_list.csv" {
		t.Errorf("CSVPath = %q", cfg.CSVPath)
	}
	if cfg.StaticDir != "static" {
		t.Errorf("StaticDir = %q", cfg.StaticDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.GeminiModel != "gemini-1.5-flash" {
		t.Errorf("GeminiModel = %q", cfg.GeminiModel)
	}
	if cfg.DatabaseURL != "" || cfg.GeminiAPIKey != "" || cfg.NatsURL != "" {
		t.Errorf("expected empty optional values, got %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MERITBOT_PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://localhost/meritbot")
	t.Setenv("MERIT_CSV", "/data/merits.csv")
	t.Setenv("MERITBOT_MODEL", "gemini-1.5-pro")
	t.Setenv("NATS_URL", "nats://localhost:4222")

	cfg := Load()
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://localhost/meritbot" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.CSVPath != "/data/merits.csv" {
		t.Errorf("CSVPath = %q", cfg.CSVPath)
	}
	if cfg.GeminiModel != "gemini-1.5-pro" {
		t.Errorf("GeminiModel = %q", cfg.GeminiModel)
	}
	if cfg.NatsURL != "nats://localhost:4222" {
		t.Errorf("NatsURL = %q", cfg.NatsURL)
	}
}

func TestLoad_InvalidPortFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("MERITBOT_PORT", "not-a-port")

	if cfg := Load(); cfg.Port != 8760 {
		t.Errorf("Port = %d, want default 8760", cfg.Port)
	}
}
