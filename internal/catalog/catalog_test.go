package catalog_test

import (
	"testing"

	"registrar/internal/store"
	"registrar/internal/testsupport"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	return testsupport.MustOpenStore(t, cfg)
}
