package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Schema is the DDL for the table backing the postgres store.
const Schema = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key TEXT PRIMARY KEY,
		value JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
`

// postgresStore implements Store on a single PostgreSQL table.
type postgresStore struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresStore creates a PostgreSQL-backed store.
// Call EnsureSchema once before first use.
func NewPostgresStore(pool *pgxpool.Pool, logger zerolog.Logger) Store {
	return &postgresStore{
		pool:   pool,
		logger: logger.With().Str("store", "postgres").Logger(),
	}
}

// EnsureSchema creates the kv_store table if it does not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create kv_store schema: %w", err)
	}
	return nil
}

func (s *postgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM kv_store WHERE key = $1`

	var value []byte
	err := s.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Debug().Str("key", key).Msg("key not found")
			return nil, ErrKeyNotFound
		}
		s.logger.Error().Err(err).Str("key", key).Msg("failed to read key")
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}

	return value, nil
}

func (s *postgresStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to write key")
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}

	s.logger.Debug().Str("key", key).Int("bytes", len(value)).Msg("key written")
	return nil
}

func (s *postgresStore) Remove(ctx context.Context, key string) error {
	query := `DELETE FROM kv_store WHERE key = $1`

	if _, err := s.pool.Exec(ctx, query, key); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to remove key")
		return fmt.Errorf("failed to remove key %s: %w", key, err)
	}

	s.logger.Debug().Str("key", key).Msg("key removed")
	return nil
}
