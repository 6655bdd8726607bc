package testutil

import (
	"database/sql"
	"testing"
	"time"

	"shopManagement/internal/auth"
	"shopManagement/internal/db"
)

// OpenInMemoryDB opens an in-memory SQLite database and applies migrations.
// The shared cache keeps the schema visible across connections opened under
// the same name. Closed via t.Cleanup.
func OpenInMemoryDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// BearerToken returns a signed token for the given principal, for use in
// Authorization headers of HTTP-layer tests.
func BearerToken(t *testing.T, secret string, p auth.Principal) string {
	t.Helper()
	tok, err := auth.NewIssuer(secret, time.Hour).Issue(p)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}
