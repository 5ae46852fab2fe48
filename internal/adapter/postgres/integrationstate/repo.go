// Package integrationstate implements the key-value store backing sync
// checkpoints (integration_state table).
package integrationstate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/empirepm/ecc-backend/internal/adapter/postgres"
	"github.com/empirepm/ecc-backend/internal/domain"
)

const table = "integration_state"

// Repo provides integration state persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new integration state repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get reads the JSON value stored under key.
// Returns domain.ErrNotFound when the key has never been written.
func (r *Repo) Get(ctx context.Context, key string) (json.RawMessage, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("value").
		From(table).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get integration_state: %w", err)
	}

	var value json.RawMessage
	if err := pgxscan.Get(ctx, q, &value, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("integration_state %s: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get integration_state %s: %w", key, err)
	}
	return value, nil
}

// Set writes the JSON value under key, overwriting any previous value.
func (r *Repo) Set(ctx context.Context, key string, value json.RawMessage) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("key", "value", "updated_at").
		Values(key, value, squirrel.Expr("now()")).
		Suffix(`ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = now()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set integration_state: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("set integration_state %s: %w", key, err)
	}
	return nil
}
