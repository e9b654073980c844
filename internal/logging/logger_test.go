package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	logger, err := NewFromConfig(logDir, "info", "json")
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	logger.Info("daemon started", String("socket", "/tmp/registrard.sock"))

	data, err := os.ReadFile(filepath.Join(logDir, LogFileName))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "daemon started") {
		t.Fatalf("log entry missing from file: %q", data)
	}
	if !strings.Contains(string(data), `"socket"`) {
		t.Fatalf("structured attr missing from file: %q", data)
	}
}
