// Package testhelpers builds databases and fake portal servers for tests.
package testhelpers

import (
	"context"
	"database/sql"
	"net/http/httptest"
	"testing"

	"github.com/johnwards/hubspot-contacts/internal/database"
	"github.com/johnwards/hubspot-contacts/internal/portal"
	"github.com/johnwards/hubspot-contacts/internal/seed"
)

// NewTestDB returns an in-memory SQLite database configured the same way as
// production. The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// NewPortalServer starts a fake portal over a migrated in-memory database.
// When seeded is true the default groups and properties are loaded. The
// server is closed when the test completes.
func NewPortalServer(t *testing.T, seeded bool) (*httptest.Server, *sql.DB) {
	t.Helper()

	db := NewTestDB(t)
	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if seeded {
		if err := seed.Seed(ctx, db); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	srv := httptest.NewServer(portal.NewHandler(db, ""))
	t.Cleanup(srv.Close)
	return srv, db
}
