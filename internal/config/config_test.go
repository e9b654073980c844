package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "config.toml")

	cfg, resolved, exists, err := Load(missing)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if resolved != missing {
		t.Fatalf("resolved = %q, want %q", resolved, missing)
	}
	if cfg.Logging.Format != defaultLogFormat || cfg.Logging.Level != defaultLogLevel {
		t.Fatalf("logging defaults not applied: %+v", cfg.Logging)
	}
	if cfg.Store.BusyTimeoutMillis != defaultBusyTimeoutMillis {
		t.Fatalf("busy timeout = %d, want %d", cfg.Store.BusyTimeoutMillis, defaultBusyTimeoutMillis)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
data_dir = "` + filepath.Join(dir, "data") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"

[store]
request_timeout_seconds = 15

[logging]
format = " JSON "
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not normalized: %+v", cfg.Logging)
	}
	if got := cfg.RequestTimeout().Seconds(); got != 15 {
		t.Fatalf("request timeout = %vs, want 15s", got)
	}
	if cfg.DatabasePath() != filepath.Join(dir, "data", "catalog.db") {
		t.Fatalf("unexpected database path %q", cfg.DatabasePath())
	}
	if cfg.SocketPath() != filepath.Join(dir, "data", "registrard.sock") {
		t.Fatalf("unexpected socket path %q", cfg.SocketPath())
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.Logging.Format = "yaml"
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "logging.format") {
		t.Fatalf("expected logging.format error, got %v", err)
	}

	cfg = Default()
	cfg.Logging.Level = "trace"
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "logging.level") {
		t.Fatalf("expected logging.level error, got %v", err)
	}

	cfg = Default()
	cfg.Store.RequestTimeoutSeconds = 601
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "request_timeout_seconds") {
		t.Fatalf("expected request timeout error, got %v", err)
	}
}

func TestExpandPathResolvesHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	got, err := ExpandPath("~/registrar/config.toml")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "registrar", "config.toml") {
		t.Fatalf("expanded to %q", got)
	}

	abs, err := ExpandPath("relative/path")
	if err != nil {
		t.Fatalf("ExpandPath relative: %v", err)
	}
	if !filepath.IsAbs(abs) {
		t.Fatalf("expected absolute path, got %q", abs)
	}
}

func TestCreateSampleWritesParsableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config invalid: %v", err)
	}
}
