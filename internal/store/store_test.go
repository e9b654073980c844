package store_test

import (
	"context"
	"testing"

	"registrar/internal/store"
	"registrar/internal/testsupport"
)

func TestOpenAppliesMigrationsIdempotently(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	first, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close first handle: %v", err)
	}

	// Reopening against the same file must not fail on existing schema.
	second, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer second.Close()

	if second.Path() != cfg.DatabasePath() {
		t.Fatalf("path = %q, want %q", second.Path(), cfg.DatabasePath())
	}
	if err := second.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestCheckHealthReportsCompleteSchema(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))

	health, err := st.CheckHealth(context.Background())
	if err != nil {
		t.Fatalf("CheckHealth: %v", err)
	}
	if !health.DatabaseExists || !health.DatabaseReadable {
		t.Fatalf("expected existing readable database: %+v", health)
	}
	if len(health.MissingTables) != 0 {
		t.Fatalf("unexpected missing tables: %v", health.MissingTables)
	}
	if !health.IntegrityCheck {
		t.Fatal("expected integrity check to pass")
	}
}

func TestNewIDAssignsOpaqueIdentifiers(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := store.NewID()
		if id == "" {
			t.Fatal("expected non-empty identifier")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("identifier %q issued twice", id)
		}
		seen[id] = struct{}{}
	}
}
