package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gym-tracker/storage"
)

var _ storage.Store = (*DB)(nil)

// Get reads the raw value stored under key
func (db *DB) Get(key string) ([]byte, bool, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key: %w", err)
	}
	return []byte(value), true, nil
}

// Set replaces the value under key in a single statement, so a failed
// write leaves the previous value untouched
func (db *DB) Set(key string, value []byte) error {
	_, err := db.Exec(`
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, string(value), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write key: %w", err)
	}
	return nil
}

// Keys lists every stored key with its last update time
func (db *DB) Keys() (map[string]time.Time, error) {
	rows, err := db.Query(`SELECT key, updated_at FROM kv_store ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	keys := make(map[string]time.Time)
	for rows.Next() {
		var key string
		var updatedAt time.Time
		if err := rows.Scan(&key, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys[key] = updatedAt
	}
	return keys, rows.Err()
}
