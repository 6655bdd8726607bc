// Package db owns the single SQLite handle for the shop. Open creates the
// database file on first use and brings the schema up to date, so callers
// never see an uninitialized store.
package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"shopManagement/internal/errs"
)

// DefaultPath is used when no database path is configured.
const DefaultPath = "shop.db"

// Open opens (or creates) a local SQLite database file and applies pending
// migrations. Safe to call on an already-migrated file; only new versions run.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		path = DefaultPath
	}
	d, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", errs.ErrStorageUnavailable, path, err)
	}
	if err := d.Ping(); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", errs.ErrStorageUnavailable, path, err)
	}
	// journal_mode is unsupported for some targets (e.g. memory); ignore errors.
	_, _ = d.Exec(`PRAGMA journal_mode=WAL`)
	if _, err := d.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("%w: busy_timeout: %v", errs.ErrStorageUnavailable, err)
	}
	if _, err := d.Exec(`PRAGMA foreign_keys=ON`); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("%w: foreign_keys: %v", errs.ErrStorageUnavailable, err)
	}
	if err := Migrate(d); err != nil {
		_ = d.Close()
		return nil, err
	}
	return d, nil
}
