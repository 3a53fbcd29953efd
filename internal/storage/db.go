package storage

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// DB is the SQLite-backed gateway implementation.
type DB struct {
	DB *sql.DB
}

// Open initializes the database connection and schema.
// Pass ":memory:" for an ephemeral store in tests.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, wrapErr("open", "", err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, wrapErr("open", "", err)
	}
	d := &DB{DB: db}
	if err := d.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

func (d *DB) createTables() error {
	_, err := d.DB.Exec(`CREATE TABLE IF NOT EXISTS records (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`)
	return wrapErr("create schema", "", err)
}

// Close releases the underlying connection.
func (d *DB) Close() error {
	return d.DB.Close()
}

func (d *DB) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM records WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapErr("get", key, err)
	}
	return value, true, nil
}

func (d *DB) Set(ctx context.Context, key, value string) error {
	_, err := d.DB.ExecContext(ctx, `
		INSERT INTO records (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	return wrapErr("set", key, err)
}

func (d *DB) Remove(ctx context.Context, key string) error {
	_, err := d.DB.ExecContext(ctx, "DELETE FROM records WHERE key = ?", key)
	return wrapErr("remove", key, err)
}
