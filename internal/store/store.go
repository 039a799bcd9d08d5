package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the merit record database. The conversational surface only ever
// bulk-reads it; writes happen once, during CSV import.
type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

// EnsureSchema creates the merit_records table when it is missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS merit_records (
			university    TEXT NOT NULL DEFAULT '',
			campus        TEXT NOT NULL DEFAULT '',
			department    TEXT NOT NULL DEFAULT '',
			program       TEXT NOT NULL DEFAULT '',
			year          INTEGER NOT NULL DEFAULT 0,
			minimum_merit DOUBLE PRECISION NOT NULL DEFAULT 0,
			maximum_merit DOUBLE PRECISION NOT NULL DEFAULT 0
		)`)
	if err != nil {
		return fmt.Errorf("create merit_records: %w", err)
	}
	return nil
}
