package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // sqlite3 database driver
)

// SQLiteDriver is a file-backed Driver so state survives restarts. The
// whole store is one table of opaque serialized values.
type SQLiteDriver struct {
	db *sql.DB
}

const createKVTable = `
CREATE TABLE IF NOT EXISTS kv (
	k TEXT PRIMARY KEY,
	v TEXT NOT NULL
)`

// NewSQLiteDriver opens (creating if needed) the sqlite database at path.
func NewSQLiteDriver(ctx context.Context, path string) (*SQLiteDriver, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	if _, err := db.ExecContext(ctx, createKVTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &SQLiteDriver{db: db}, nil
}

// Get returns the raw value for key, or ErrKeyNotFound.
func (d *SQLiteDriver) Get(ctx context.Context, key string) (string, error) {
	var v string
	err := d.db.QueryRowContext(ctx, `SELECT v FROM kv WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("sqlite get: %w", err)
	}
	return v, nil
}

// Put writes the raw value for key, overwriting any existing value.
func (d *SQLiteDriver) Put(ctx context.Context, key string, value string) error {
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO kv (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("sqlite put: %w", err)
	}
	return nil
}

// Exists reports whether key has ever been written.
func (d *SQLiteDriver) Exists(ctx context.Context, key string) (bool, error) {
	var one int
	err := d.db.QueryRowContext(ctx, `SELECT 1 FROM kv WHERE k = ?`, key).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("sqlite exists: %w", err)
	}
	return true, nil
}

// Keys returns all keys currently stored.
func (d *SQLiteDriver) Keys(ctx context.Context) ([]string, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT k FROM kv`)
	if err != nil {
		return nil, fmt.Errorf("sqlite keys: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("sqlite keys scan: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite keys rows: %w", err)
	}
	return keys, nil
}

// Close closes the underlying database.
func (d *SQLiteDriver) Close() error {
	if err := d.db.Close(); err != nil {
		return fmt.Errorf("sqlite close: %w", err)
	}
	return nil
}
