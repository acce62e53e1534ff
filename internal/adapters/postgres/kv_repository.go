package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"housing-insights-service/internal/contextkeys"
	"housing-insights-service/internal/core/domain"
	"housing-insights-service/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// KeyValueRepository implements KeyValueStorePort on top of a single
// key/value table. Values are stored as jsonb so they stay queryable from
// psql when debugging.
type KeyValueRepository struct {
	pool *pgxpool.Pool
}

func NewKeyValueRepository(ctx context.Context, pool *pgxpool.Pool) (*KeyValueRepository, error) {
	repo := &KeyValueRepository{pool: pool}
	if err := repo.ensureTable(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *KeyValueRepository) ensureTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS user_kv (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`

	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("creating user_kv table: %w", err)
	}
	return nil
}

func (r *KeyValueRepository) Get(ctx context.Context, key string) ([]byte, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "KeyValueRepository",
		"method":    "Get",
	})

	query := `SELECT value FROM user_kv WHERE key = $1`

	var value []byte
	err := r.pool.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("Failed to read key", err, port.Fields{"key": key})
		return nil, fmt.Errorf("%w: reading key %q: %v", domain.ErrStorageUnavailable, key, err)
	}

	return value, nil
}

func (r *KeyValueRepository) Put(ctx context.Context, key string, value []byte) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "KeyValueRepository",
		"method":    "Put",
	})

	query := `
		INSERT INTO user_kv (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()`

	if _, err := r.pool.Exec(ctx, query, key, value); err != nil {
		logger.Error("Failed to write key", err, port.Fields{"key": key})
		return fmt.Errorf("%w: writing key %q: %v", domain.ErrStorageUnavailable, key, err)
	}

	return nil
}

func (r *KeyValueRepository) Delete(ctx context.Context, key string) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "KeyValueRepository",
		"method":    "Delete",
	})

	query := `DELETE FROM user_kv WHERE key = $1`

	if _, err := r.pool.Exec(ctx, query, key); err != nil {
		logger.Error("Failed to delete key", err, port.Fields{"key": key})
		return fmt.Errorf("%w: deleting key %q: %v", domain.ErrStorageUnavailable, key, err)
	}

	return nil
}
