/*
Package db manages the embedded SQLite database that backs the local state store.

This file defines the KV type, the key → JSON document view over the storage
table that the state store persists through. Reads of absent keys are not
errors; callers fall back to seed data.
*/
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// KV is a thin key/value wrapper around the storage table. Values are JSON
// encoded on write and decoded on read.
type KV struct {
	db *sql.DB
}

// NewKV wraps an opened database in the key/value view.
func NewKV(sqlDB *sql.DB) *KV {
	return &KV{db: sqlDB}
}

// Get loads the JSON document stored under key into dst.
// It returns false with a nil error when the key is absent.
func (k *KV) Get(ctx context.Context, key string, dst any) (bool, error) {
	var raw []byte

	err := k.db.QueryRowContext(ctx, `SELECT value FROM storage WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read storage key %q: %w", key, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("failed to decode storage key %q: %w", key, err)
	}

	return true, nil
}

// Put stores v as a JSON document under key, replacing any previous value.
func (k *KV) Put(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode storage key %q: %w", key, err)
	}

	_, err = k.db.ExecContext(ctx, `
		INSERT INTO storage (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, raw)
	if err != nil {
		return fmt.Errorf("failed to write storage key %q: %w", key, err)
	}

	return nil
}

// Delete removes the document stored under key. Deleting an absent key is a
// no-op.
func (k *KV) Delete(ctx context.Context, key string) error {
	if _, err := k.db.ExecContext(ctx, `DELETE FROM storage WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete storage key %q: %w", key, err)
	}
	return nil
}
