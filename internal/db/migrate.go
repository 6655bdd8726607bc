package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	stdfs "io/fs"
	"regexp"
	"sort"
	"strconv"
)

// Versioned migrations live under internal/db/migrations as
// NNNN_name.up.sql / NNNN_name.down.sql pairs. Applied versions are recorded
// in schema_migrations; each script runs inside its own transaction.

//go:embed migrations/*.sql
var migrationsFS embed.FS

type migration struct {
	version int
	up      string // path inside the embedded FS
	down    string
}

var migFileRe = regexp.MustCompile(`^([0-9]{4})_.+\.(up|down)\.sql$`)

// Migrate applies all pending migrations. Idempotent: versions already in
// schema_migrations are skipped.
func Migrate(d *sql.DB) error {
	migs, err := loadMigrations()
	if err != nil {
		return err
	}
	applied, err := appliedVersions(d)
	if err != nil {
		return err
	}
	versions := make([]int, 0, len(migs))
	for v := range migs {
		versions = append(versions, v)
	}
	sort.Ints(versions)
	for _, v := range versions {
		if applied[v] {
			continue
		}
		m := migs[v]
		if m.up == "" {
			return fmt.Errorf("missing up migration for version %04d", v)
		}
		if err := runInTx(d, m.up, `INSERT INTO schema_migrations(version) VALUES(?)`, v); err != nil {
			return fmt.Errorf("migration %04d: %w", v, err)
		}
	}
	return nil
}

// RollbackLast reverts the most recently applied migration, if its down
// script exists.
func RollbackLast(d *sql.DB) error {
	if d == nil {
		return errors.New("nil db")
	}
	if err := ensureMigrationsTable(d); err != nil {
		return err
	}
	var version int
	err := d.QueryRow(`SELECT version FROM schema_migrations ORDER BY version DESC LIMIT 1`).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil // nothing to roll back
	} else if err != nil {
		return err
	}
	migs, err := loadMigrations()
	if err != nil {
		return err
	}
	m, ok := migs[version]
	if !ok || m.down == "" {
		return fmt.Errorf("no down migration found for version %d", version)
	}
	return runInTx(d, m.down, `DELETE FROM schema_migrations WHERE version = ?`, version)
}

// runInTx executes the embedded script at path plus a bookkeeping statement
// in one transaction.
func runInTx(d *sql.DB, path, bookkeeping string, version int) error {
	script, err := migrationsFS.ReadFile(path)
	if err != nil {
		return err
	}
	tx, err := d.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(string(script)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.Exec(bookkeeping, version); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func loadMigrations() (map[int]migration, error) {
	entries := map[int]migration{}
	list, err := stdfs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return entries, nil
	}
	for _, de := range list {
		if de.IsDir() {
			continue
		}
		m := migFileRe.FindStringSubmatch(de.Name())
		if m == nil {
			continue
		}
		ver, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		item := entries[ver]
		item.version = ver
		p := "migrations/" + de.Name()
		if m[2] == "up" {
			item.up = p
		} else {
			item.down = p
		}
		entries[ver] = item
	}
	return entries, nil
}

func ensureMigrationsTable(d *sql.DB) error {
	_, err := d.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
        version INTEGER PRIMARY KEY,
        applied_at TEXT NOT NULL DEFAULT (CURRENT_TIMESTAMP)
    )`)
	return err
}

func appliedVersions(d *sql.DB) (map[int]bool, error) {
	if err := ensureMigrationsTable(d); err != nil {
		return nil, err
	}
	rows, err := d.Query(`SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	got := map[int]bool{}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		got[v] = true
	}
	return got, rows.Err()
}
