package daemon_test

import (
	"context"
	"testing"

	"registrar/internal/daemon"
	"registrar/internal/logging"
	"registrar/internal/testsupport"
)

func TestDaemonStartStop(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	d, err := daemon.New(cfg, st, logging.NewNop())
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}
	t.Cleanup(func() {
		d.Close()
	})

	if err := d.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	status := d.Status(context.Background())
	if !status.Connected {
		t.Fatal("expected daemon to report a connected store")
	}
	if status.DBPath != st.Path() {
		t.Fatalf("unexpected db path %q", status.DBPath)
	}
	if status.PID <= 0 {
		t.Fatal("expected a daemon pid")
	}

	// Second start should fail
	if err := d.Start(); err == nil {
		t.Fatal("expected second start to fail")
	}

	d.Stop()
}

func TestDaemonStoreHealth(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	d, err := daemon.New(cfg, st, logging.NewNop())
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}
	t.Cleanup(func() {
		d.Close()
	})

	health, err := d.StoreHealth(context.Background())
	if err != nil {
		t.Fatalf("StoreHealth: %v", err)
	}
	if !health.DatabaseExists || !health.DatabaseReadable {
		t.Fatalf("expected readable database, got %+v", health)
	}
	if len(health.MissingTables) != 0 {
		t.Fatalf("expected no missing tables, got %v", health.MissingTables)
	}
	if !health.IntegrityCheck {
		t.Fatal("expected integrity check to pass")
	}
}
