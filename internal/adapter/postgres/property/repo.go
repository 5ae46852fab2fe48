// Package property implements the slice of the properties table the
// transfer core needs: ownership lookups and the batched ownership update
// performed by transfer execution.
package property

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/empirepm/ecc-backend/internal/adapter/postgres"
	"github.com/empirepm/ecc-backend/internal/domain"
)

const table = "properties"

type row struct {
	ID      uuid.UUID `db:"id"`
	OwnerID uuid.UUID `db:"owner_id"`
	Name    string    `db:"name"`
	Address string    `db:"address"`
}

// Repo provides property persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new property repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByIDs returns the properties with the given ids. Missing ids are
// simply absent from the result; the caller decides whether that is an
// error.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Property, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("id", "owner_id", "name", "address").
		From(table).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select properties: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select properties: %w", err)
	}

	properties := make([]domain.Property, len(rows))
	for i, rw := range rows {
		properties[i] = domain.Property{
			ID:      rw.ID,
			OwnerID: rw.OwnerID,
			Name:    rw.Name,
			Address: rw.Address,
		}
	}
	return properties, nil
}

// ReassignOwner updates owner_id for every given property in a single
// batched statement and returns the number of rows changed. The transfer
// service runs it inside the execution transaction.
func (r *Repo) ReassignOwner(ctx context.Context, ids []uuid.UUID, newOwnerID uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("owner_id", newOwnerID).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build reassign owner: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("reassign owner: %w", err)
	}
	return tag.RowsAffected(), nil
}
