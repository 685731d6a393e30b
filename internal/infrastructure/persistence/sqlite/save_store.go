// Package sqlite provides a SQLite-backed save store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/elemcraft/elemcraft/internal/application/ports"
	"github.com/elemcraft/elemcraft/internal/infrastructure/persistence/sqlite/migrations"
)

// Ensure interface compliance
var _ ports.SaveStore = (*SaveStore)(nil)

// SaveStore persists save slots in a single SQLite table.
type SaveStore struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens the database at path and applies embedded migrations.
func Open(ctx context.Context, path string) (*SaveStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &SaveStore{db: db, now: time.Now}, nil
}

// Close closes the database handle.
func (s *SaveStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Read returns the payload stored under key.
func (s *SaveStore) Read(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM save_slots WHERE slot_key = ?`, key,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read save slot %q: %w", key, err)
	}
	return payload, true, nil
}

// Write upserts the payload stored under key.
func (s *SaveStore) Write(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return fmt.Errorf("storage key is required")
	}
	if data == nil {
		data = []byte{}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO save_slots (slot_key, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(slot_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		key, data, s.now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("write save slot %q: %w", key, err)
	}
	return nil
}

// Remove deletes key.
func (s *SaveStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM save_slots WHERE slot_key = ?`, key); err != nil {
		return fmt.Errorf("remove save slot %q: %w", key, err)
	}
	return nil
}

// UpdatedAt returns when key was last written.
func (s *SaveStore) UpdatedAt(ctx context.Context, key string) (time.Time, bool, error) {
	var millis int64
	err := s.db.QueryRowContext(ctx,
		`SELECT updated_at FROM save_slots WHERE slot_key = ?`, key,
	).Scan(&millis)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("read save slot %q: %w", key, err)
	}
	return time.UnixMilli(millis).UTC(), true, nil
}
