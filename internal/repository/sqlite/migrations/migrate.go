// Package migrations applies the embedded schema migrations to a SQLite
// database. Scripts are named NNNNNN_description.up.sql and run in version
// order; applied versions are recorded in a schema_versions table so reruns
// are no-ops.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

//go:embed *.sql
var scriptsFS embed.FS

type script struct {
	version int
	sql     string
}

// Run brings the database schema up to date by applying every script
// that has not been applied yet.
func Run(db *sql.DB) error {
	if err := ensureVersionsTable(db); err != nil {
		return fmt.Errorf("failed to create schema_versions table: %w", err)
	}

	scripts, err := loadScripts()
	if err != nil {
		return fmt.Errorf("failed to load migration scripts: %w", err)
	}

	done, err := appliedVersions(db)
	if err != nil {
		return fmt.Errorf("failed to read applied versions: %w", err)
	}

	for _, s := range scripts {
		if done[s.version] {
			continue
		}
		if err := apply(db, s); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", s.version, err)
		}
	}

	return nil
}

func ensureVersionsTable(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS schema_versions (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	return err
}

func loadScripts() ([]script, error) {
	entries, err := scriptsFS.ReadDir(".")
	if err != nil {
		return nil, err
	}

	var scripts []script
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".up.sql") {
			continue
		}

		prefix, _, ok := strings.Cut(name, "_")
		if !ok {
			return nil, fmt.Errorf("migration file %q has no version prefix", name)
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			return nil, fmt.Errorf("migration file %q has no version prefix", name)
		}

		body, err := scriptsFS.ReadFile(name)
		if err != nil {
			return nil, err
		}

		scripts = append(scripts, script{version: version, sql: string(body)})
	}

	sort.Slice(scripts, func(i, j int) bool {
		return scripts[i].version < scripts[j].version
	})

	return scripts, nil
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM schema_versions")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	done := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		done[version] = true
	}
	return done, rows.Err()
}

// apply runs a script and records its version in one transaction.
func apply(db *sql.DB, s script) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(s.sql); err != nil {
		tx.Rollback()
		return err
	}

	if _, err := tx.Exec("INSERT INTO schema_versions (version) VALUES (?)", s.version); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
