package config

import (
	"os"
	"testing"
	"time"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8080/api" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.Timeout() != 15*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout())
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("logging defaults = %q %q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("API_BASE_URL", "https://bank.example.com/api")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "https://bank.example.com/api" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.Timeout() != 3*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout())
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadRejectsRelativeBaseURL(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("API_BASE_URL", "/api")
	if _, err := Load(); err == nil {
		t.Error("expected error for relative API_BASE_URL")
	}
}

func TestTimeoutFallsBackOnGarbage(t *testing.T) {
	cfg := &Config{HTTPTimeout: "soon"}
	if cfg.Timeout() != 15*time.Second {
		t.Errorf("Timeout = %v, want the 15s fallback", cfg.Timeout())
	}
	cfg = &Config{HTTPTimeout: "-1s"}
	if cfg.Timeout() != 15*time.Second {
		t.Errorf("Timeout = %v, want the 15s fallback for non-positive values", cfg.Timeout())
	}
}

func TestResolveStateDirHonorsOverride(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{StateDir: dir}
	got, err := cfg.ResolveStateDir()
	if err != nil {
		t.Fatalf("ResolveStateDir: %v", err)
	}
	if got != dir {
		t.Errorf("ResolveStateDir = %q, want %q", got, dir)
	}
}
