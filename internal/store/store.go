// Package store persists learner state in SQLite. The engine itself works
// on an in-memory snapshot; this package loads that snapshot at startup
// and flushes it back after answer processing and stage transitions.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection.
type DB struct {
	db *sqlx.DB
}

// Open connects to the SQLite database at dsn, applies recommended
// pragmas, and creates the schema if needed.
func Open(dsn string) (*DB, error) {
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (s *DB) Close() error {
	return s.db.Close()
}

func applyPragmas(db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS item_progress (
	item_type            TEXT NOT NULL,
	item_id              TEXT NOT NULL,
	stack                TEXT NOT NULL,
	success_count        INTEGER NOT NULL DEFAULT 0,
	fail_count           INTEGER NOT NULL DEFAULT 0,
	interval_days        INTEGER NOT NULL DEFAULT 1,
	ease_factor          REAL NOT NULL DEFAULT 2.5,
	last_review          TEXT,
	next_review          TEXT,
	graduation_threshold INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (item_type, item_id)
);

CREATE TABLE IF NOT EXISTS stage_state (
	id            INTEGER PRIMARY KEY CHECK (id = 1),
	current_stage TEXT NOT NULL,
	completed     TEXT NOT NULL DEFAULT '[]'
);
`

// DefaultDBPath returns the XDG data path for the database, creating the
// directory if needed.
func DefaultDBPath() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}
	path := filepath.Join(base, "kotoba", "kotoba.db")
	return path, EnsureDir(path)
}

// EnsureDir creates the parent directory of path if it does not exist.
func EnsureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return nil
}
