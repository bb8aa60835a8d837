package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgExecutor is satisfied by *pgxpool.Pool and *pgx.Conn.
type pgExecutor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresSlot struct {
	db pgExecutor
}

func NewPostgresSlot(db pgExecutor) *PostgresSlot {
	return &PostgresSlot{
		db: db,
	}
}

// EnsureSchema creates the slot table when it does not exist yet.
func (s *PostgresSlot) EnsureSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS storage_slots (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	if _, err := s.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create storage_slots table: %w", err)
	}
	return nil
}

func (s *PostgresSlot) Load(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRow(ctx, `SELECT value FROM storage_slots WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("failed to load slot %s: %w", key, err)
	}
	return []byte(value), nil
}

func (s *PostgresSlot) Save(ctx context.Context, key string, value []byte) error {
	query := `
	INSERT INTO storage_slots (key, value, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (key)
	DO UPDATE SET value = $2, updated_at = now()`
	_, err := s.db.Exec(ctx, query, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to save slot %s: %w", key, err)
	}
	return nil
}
