package logs_test

import (
	"os"
	"path/filepath"
	"testing"

	"registrar/internal/logs"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registrard.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path
}

func TestTailLastLines(t *testing.T) {
	path := writeLog(t, "first\nsecond\nthird\n")

	result, err := logs.Tail(path, -1, 2)
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if len(result.Lines) != 2 || result.Lines[0] != "second" || result.Lines[1] != "third" {
		t.Fatalf("unexpected lines: %#v", result.Lines)
	}
	if result.Offset == 0 {
		t.Fatal("expected end-of-file offset")
	}
}

func TestTailResumesFromOffset(t *testing.T) {
	path := writeLog(t, "first\n")

	initial, err := logs.Tail(path, -1, 10)
	if err != nil {
		t.Fatalf("Tail initial: %v", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("append open: %v", err)
	}
	if _, err := f.WriteString("second\n"); err != nil {
		t.Fatalf("append write: %v", err)
	}
	_ = f.Close()

	next, err := logs.Tail(path, initial.Offset, 0)
	if err != nil {
		t.Fatalf("Tail resume: %v", err)
	}
	if len(next.Lines) != 1 || next.Lines[0] != "second" {
		t.Fatalf("unexpected resumed lines: %#v", next.Lines)
	}
}

func TestTailMissingFile(t *testing.T) {
	result, err := logs.Tail(filepath.Join(t.TempDir(), "absent.log"), -1, 5)
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if len(result.Lines) != 0 || result.Offset != 0 {
		t.Fatalf("expected empty result, got %#v", result)
	}
}
