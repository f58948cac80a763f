package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// setEnv sets an environment variable, ignoring errors (for test setup)
func setEnv(key, value string) {
	_ = os.Setenv(key, value)
}

// unsetEnv unsets an environment variable, ignoring errors (for test cleanup)
func unsetEnv(key string) {
	_ = os.Unsetenv(key)
}

func withCleanEnv(t *testing.T) {
	t.Helper()

	envVars := []string{
		"WATCHLOG_DB_PATH", "LLM_BASE_URL", "LLM_API_KEY", "LLM_MODEL",
		"API_PORT", "LOG_LEVEL", "LOG_FORMAT",
	}
	original := make(map[string]string, len(envVars))
	for _, key := range envVars {
		original[key] = os.Getenv(key)
		unsetEnv(key)
	}
	t.Cleanup(func() {
		for key, value := range original {
			if value != "" {
				setEnv(key, value)
			} else {
				unsetEnv(key)
			}
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	withCleanEnv(t)

	// Keep the default DB path out of the real user profile
	dbPath := filepath.Join(t.TempDir(), "history.db")
	setEnv("WATCHLOG_DB_PATH", dbPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DBPath != dbPath {
		t.Errorf("Load() DBPath = %q, want %q", cfg.DBPath, dbPath)
	}
	if cfg.LLMBaseURL != "https://api.openai.com" {
		t.Errorf("Load() LLMBaseURL = %q, want default", cfg.LLMBaseURL)
	}
	if cfg.LLMModel == "" {
		t.Error("Load() LLMModel should have a default")
	}
	if cfg.APIPort != "8790" {
		t.Errorf("Load() APIPort = %q, want 8790", cfg.APIPort)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("Load() LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("Load() LogFormat = %q, want text", cfg.LogFormat)
	}
}

func TestLoad_Overrides(t *testing.T) {
	withCleanEnv(t)

	dbPath := filepath.Join(t.TempDir(), "custom", "watch.db")
	setEnv("WATCHLOG_DB_PATH", dbPath)
	setEnv("LLM_BASE_URL", "http://localhost:8080")
	setEnv("LLM_API_KEY", "sk-test")
	setEnv("LLM_MODEL", "test-model")
	setEnv("API_PORT", "9999")
	setEnv("LOG_LEVEL", "debug")
	setEnv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DBPath != dbPath {
		t.Errorf("Load() DBPath = %q, want %q", cfg.DBPath, dbPath)
	}
	if cfg.LLMBaseURL != "http://localhost:8080" {
		t.Errorf("Load() LLMBaseURL = %q", cfg.LLMBaseURL)
	}
	if cfg.LLMAPIKey != "sk-test" {
		t.Errorf("Load() LLMAPIKey = %q", cfg.LLMAPIKey)
	}
	if cfg.LLMModel != "test-model" {
		t.Errorf("Load() LLMModel = %q", cfg.LLMModel)
	}
	if cfg.APIPort != "9999" {
		t.Errorf("Load() APIPort = %q", cfg.APIPort)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("Load() LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("Load() LogFormat = %q, want json", cfg.LogFormat)
	}

	// The data directory must exist after Load
	if _, err := os.Stat(filepath.Dir(dbPath)); err != nil {
		t.Errorf("Load() did not create data directory: %v", err)
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	withCleanEnv(t)

	setEnv("WATCHLOG_DB_PATH", filepath.Join(t.TempDir(), "history.db"))
	setEnv("LOG_LEVEL", "verbose")

	if _, err := Load(); err == nil {
		t.Error("Load() with invalid LOG_LEVEL should return error")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"WARN", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseLogLevel(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseLogLevel(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
