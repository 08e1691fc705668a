package sqlite

import (
	"context"
	"database/sql"
	"time"

	"todo/internal/errors"
	"todo/internal/repository/sqlite/migrations"
	"todo/internal/storage"

	_ "modernc.org/sqlite"
)

// Options tunes per-operation timeouts. Zero values disable the timeout.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

var _ storage.KeyValueStore = (*Repository)(nil)

// Repository is a key-value store backed by a single SQLite table
type Repository struct {
	db   *sql.DB
	opts Options
	now  func() time.Time
}

// New creates a new SQLite repository instance
func New(dbPath string) (*Repository, error) {
	return NewWithOptions(dbPath, Options{})
}

// NewWithOptions creates a new SQLite repository with the given timeouts
func NewWithOptions(dbPath string, opts Options) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// One connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &Repository{db: db, opts: opts, now: time.Now}, nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// Get returns the value stored under key and whether it exists
func (r *Repository) Get(ctx context.Context, key string) (string, bool, error) {
	entry, ok, err := r.GetEntry(ctx, key)
	if err != nil || !ok {
		return "", ok, err
	}
	return entry.Value, true, nil
}

// GetEntry returns the full row stored under key
func (r *Repository) GetEntry(ctx context.Context, key string) (*Entry, bool, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `SELECT key, value, updated_at FROM kv WHERE key = ?`
	return QuerySingle(ctx, r.db, query, ScanEntry, "kv entry", key)
}

// Set stores value under key, replacing any previous value
func (r *Repository) Set(ctx context.Context, key, value string) error {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	query := `
	INSERT INTO kv (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	_, err := ExecuteWithRowsAffected(ctx, r.db, "write kv entry", query, key, value, FormatTimeForDB(r.now()))
	return err
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
