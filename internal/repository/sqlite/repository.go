package sqlite

import (
	"context"
	"database/sql"
	"time"

	"organizer/internal/errors"
	"organizer/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const entryColumns = "key, value, updated_at"

// Repository is the key-value persistence facility. Values are opaque strings.
type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Entry(ctx context.Context, key string) (*Entry, error)
	Close() error
}

// SQLiteRepository implements Repository on a single SQLite table
type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

// Option configures a SQLiteRepository
type Option func(*SQLiteRepository)

// WithClock sets the clock used to stamp updated_at
func WithClock(now func() time.Time) Option {
	return func(r *SQLiteRepository) {
		r.now = now
	}
}

// New opens the database at dbPath and applies pending migrations
func New(dbPath string, opts ...Option) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// One connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, errors.NewStorageError("configure database", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	repo := &SQLiteRepository{db: db, now: time.Now}
	for _, opt := range opts {
		opt(repo)
	}
	return repo, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Get returns the value stored under key. The boolean is false when the key is absent.
func (r *SQLiteRepository) Get(ctx context.Context, key string) (string, bool, error) {
	entry, err := r.Entry(ctx, key)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

// Entry returns the full row stored under key
func (r *SQLiteRepository) Entry(ctx context.Context, key string) (*Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM kv_entries WHERE key = ?`
	return QuerySingle(ctx, r.db, query, ScanEntry, "key", key, key)
}

// Set stores value under key, replacing any previous value
func (r *SQLiteRepository) Set(ctx context.Context, key, value string) error {
	query := `
	INSERT INTO kv_entries (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	return Execute(ctx, r.db, "write key "+key, query, key, value, FormatTimeForDB(r.now()))
}
