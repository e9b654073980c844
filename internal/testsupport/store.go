package testsupport

import (
	"testing"

	"registrar/internal/config"
	"registrar/internal/store"
)

// MustOpenStore opens a catalog store for the config and fails the test on
// error. The store is closed during test cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}
