/*
Package sqlite provides a SQLite-backed implementation of the collection
Repository.

PURPOSE:
  Durable persistence for the named collections (stores, skus, calendar,
  sales_facts). Each collection is stored as a single opaque payload keyed
  by its logical name, read once at startup and rewritten on every
  mutation - the same shape as the browser-storage atoms this replaces.

SCHEMA:
  collections(name PRIMARY KEY, payload, updated_at)

  No per-record rows: the collection engine owns record semantics; the
  repository only sees serialized sequences. At tens to low hundreds of
  records per collection, whole-payload rewrites are cheap.

WAL MODE:
  SQLite is opened with WAL so readers don't block the single writer and
  crash recovery is cleaner.

USAGE:
  repo, err := sqlite.New("./plan.db")   // ":memory:" for tests
  defer repo.Close()
  planner, err := planning.NewPlanner(ctx, repo)

SEE ALSO:
  - collection/collection.go: Repository interface definition
  - collection/store/memory.go: in-memory implementation for tests
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Repository implements collection.Repository on SQLite.
type Repository struct {
	db *sql.DB
	mu sync.RWMutex
}

// New opens (or creates) the database at dbPath and migrates the schema.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// :memory: databases exist per connection; one connection keeps the
	// schema alive. Fine for the single-writer workload either way.
	db.SetMaxOpenConns(1)

	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return repo, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS collections (
		name       TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);`
	_, err := r.db.Exec(schema)
	return err
}

// Load returns the payload stored under name; ok is false when the
// collection has never been saved.
func (r *Repository) Load(ctx context.Context, name string) ([]byte, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var payload []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM collections WHERE name = ?`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %q: %w", name, err)
	}
	return payload, true, nil
}

// Save overwrites the payload stored under name.
func (r *Repository) Save(ctx context.Context, name string, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO collections (name, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		name, string(payload), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}
	return nil
}
