// Package storage provides the SQLite-backed persistence gateway: one
// JSON ledger snapshot per user, read and replaced whole.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver

	"github.com/servisthird/coreledger/internal/model"
	"github.com/servisthird/coreledger/internal/store"
)

const schema = `
	CREATE TABLE IF NOT EXISTS user_ledgers (
		user_id    TEXT PRIMARY KEY,
		snapshot   TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)
`

// Ensure SQLiteGateway satisfies the store's persistence boundary.
var _ store.Gateway = (*SQLiteGateway)(nil)

// SQLiteGateway persists full ledger snapshots in a sqlite database.
type SQLiteGateway struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema.
// Use ":memory:" for an ephemeral store.
func Open(path string) (*SQLiteGateway, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating user_ledgers table: %w", err)
	}
	return &SQLiteGateway{db: db}, nil
}

// Close closes the underlying database.
func (g *SQLiteGateway) Close() error {
	return g.db.Close()
}

// Load reads the snapshot for userID, or store.ErrNotFound.
func (g *SQLiteGateway) Load(ctx context.Context, userID string) (*model.UserLedger, error) {
	var raw string
	err := g.db.QueryRowContext(ctx,
		`SELECT snapshot FROM user_ledgers WHERE user_id = ?`, userID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot for user %q: %w", userID, err)
	}

	var ledger model.UserLedger
	if err := json.Unmarshal([]byte(raw), &ledger); err != nil {
		return nil, fmt.Errorf("decoding snapshot for user %q: %w", userID, err)
	}
	return &ledger, nil
}

// Save replaces the snapshot for userID.
func (g *SQLiteGateway) Save(ctx context.Context, userID string, ledger *model.UserLedger) error {
	raw, err := json.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("encoding snapshot for user %q: %w", userID, err)
	}

	_, err = g.db.ExecContext(ctx, `
		INSERT INTO user_ledgers (user_id, snapshot, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			snapshot = excluded.snapshot,
			updated_at = excluded.updated_at
	`, userID, string(raw), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving snapshot for user %q: %w", userID, err)
	}
	return nil
}
