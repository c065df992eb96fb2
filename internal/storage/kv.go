// Package storage keeps small named settings in SQLite.
// If opening the DB or creating the table fails, values are kept in memory
// for the lifetime of the process instead.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	_ "github.com/glebarez/go-sqlite"

	"github.com/comigor/mishmish-go/internal/logger"
)

// KV is a string key/value store with at most one value per name.
type KV struct {
	db *sql.DB

	mu  sync.Mutex
	mem map[string]string
}

// Open opens (or creates) the settings database at path.
func Open(path string) *KV {
	kv := &KV{mem: make(map[string]string)}
	if path == "" {
		logger.L.Warn("no storage path configured; using in-memory settings")
		return kv
	}

	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(10000)")
	if err != nil {
		logger.L.Warn("sqlite open failed; using in-memory settings", "error", err)
		return kv
	}
	if _, err = db.Exec(`CREATE TABLE IF NOT EXISTS settings (
        name TEXT PRIMARY KEY,
        value TEXT NOT NULL,
        updated_at DATETIME
    );`); err != nil {
		logger.L.Warn("sqlite table creation failed; using in-memory settings", "error", err)
		_ = db.Close()
		return kv
	}
	logger.L.Info("sqlite settings DB initialized", "path", path)
	kv.db = db
	return kv
}

// Persistent reports whether values survive a restart.
func (kv *KV) Persistent() bool { return kv.db != nil }

// Get returns the value stored under name.
func (kv *KV) Get(ctx context.Context, name string) (string, bool, error) {
	if kv.db == nil {
		kv.mu.Lock()
		defer kv.mu.Unlock()
		v, ok := kv.mem[name]
		return v, ok, nil
	}

	var value string
	err := kv.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE name = ?;`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Put stores value under name, replacing any previous value.
func (kv *KV) Put(ctx context.Context, name, value string) error {
	if kv.db == nil {
		kv.mu.Lock()
		kv.mem[name] = value
		kv.mu.Unlock()
		return nil
	}

	_, err := kv.db.ExecContext(ctx, `INSERT INTO settings (name, value, updated_at) VALUES (?,?,?)
        ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`,
		name, value, time.Now().UTC())
	return err
}

// Delete removes name. Deleting a missing name is not an error.
func (kv *KV) Delete(ctx context.Context, name string) error {
	if kv.db == nil {
		kv.mu.Lock()
		delete(kv.mem, name)
		kv.mu.Unlock()
		return nil
	}

	_, err := kv.db.ExecContext(ctx, `DELETE FROM settings WHERE name = ?;`, name)
	return err
}

// Close releases the database handle.
func (kv *KV) Close() error {
	if kv.db == nil {
		return nil
	}
	return kv.db.Close()
}
