package store

import (
	"context"
	"errors"
	"time"

	"seatbook/internal/infra"
	"seatbook/internal/pkg/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createStateTable = `
CREATE TABLE IF NOT EXISTS engine_state (
    key        text PRIMARY KEY,
    value      bytea NOT NULL,
    updated_at timestamptz NOT NULL DEFAULT now()
)`

const (
	loadStateQuery = `SELECT value FROM engine_state WHERE key = $1`
	saveStateQuery = `
INSERT INTO engine_state (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
)

// PostgresStore persists the record blobs in a single key-value table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, cfg config.DBConfig) (*PostgresStore, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to parse postgres config", err)
	}
	poolCfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create postgres pool", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, infra.WrapRepoErr("failed to ping postgres", err)
	}

	if _, err := pool.Exec(ctx, createStateTable); err != nil {
		pool.Close()
		return nil, infra.WrapRepoErr("failed to ensure state table", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var blob []byte
	err := s.pool.QueryRow(ctx, loadStateQuery, key).Scan(&blob)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr("failed to load state row", err)
	}
	return blob, true, nil
}

func (s *PostgresStore) Save(ctx context.Context, key string, blob []byte) error {
	if _, err := s.pool.Exec(ctx, saveStateQuery, key, blob); err != nil {
		return infra.WrapRepoErr("failed to upsert state row", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
