package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the database handle and provides access to repositories.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
	seq *sequenceCounter
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Pragmas are per connection.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	if err := migrate(context.Background(), drv); err != nil {
		drv.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		drv.Close()
		return nil, err
	}

	return &Store{db: db, drv: drv, seq: seq}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.drv.Close()
}

// ResultRepo returns a ResultRepo backed by this store.
func (s *Store) ResultRepo() ResultRepo {
	return newResultRepo(s.drv, s.seq)
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// resultsDDL creates the results table. The ent builder has no CREATE
// TABLE support, so the statement is written out like the sequence table.
var resultsDDL = fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		%s INTEGER PRIMARY KEY AUTOINCREMENT,
		%s TEXT NOT NULL UNIQUE,
		%s INTEGER NOT NULL,
		%s INTEGER NOT NULL,
		%s TEXT NOT NULL DEFAULT '',
		%s INTEGER NOT NULL,
		%s INTEGER NOT NULL,
		%s INTEGER NOT NULL,
		%s TEXT NOT NULL,
		%s TEXT NOT NULL
	)`,
	resultsTable,
	colID, colRunID, colSequence, colCreatedAt, colSource,
	colTotalTES, colTPESRG, colTPESBY, colVerdict, colData,
)

// migrate creates the results table when it does not exist yet.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	if err := drv.Exec(ctx, resultsDDL, []any{}, nil); err != nil {
		return fmt.Errorf("create %s: %w", resultsTable, err)
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. $XDG_DATA_HOME/huetest/huetest.db
// 2. ~/.local/share/huetest/huetest.db
//
// HUETEST_DB is handled by the config layer before this is consulted.
func DefaultDBPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "huetest", "huetest.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
