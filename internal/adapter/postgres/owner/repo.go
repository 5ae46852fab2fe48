// Package owner implements the owners repository using PostgreSQL.
// Owners are maintained by the DoorLoop sync job: batches are upserted
// keyed on doorloop_owner_id, followed by a display_name repair pass.
package owner

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/empirepm/ecc-backend/internal/adapter/postgres"
	"github.com/empirepm/ecc-backend/internal/domain"
)

const table = "owners"

type row struct {
	ID              uuid.UUID `db:"id"`
	DoorloopOwnerID string    `db:"doorloop_owner_id"`
	CompanyName     string    `db:"company_name"`
	FirstName       string    `db:"first_name"`
	LastName        string    `db:"last_name"`
	DisplayName     string    `db:"display_name"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// Repo provides owner persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new owner repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// UpsertBatch inserts or updates owners keyed on doorloop_owner_id and
// returns the number of rows written.
func (r *Repo) UpsertBatch(ctx context.Context, owners []domain.Owner) (int, error) {
	if len(owners) == 0 {
		return 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := postgres.Builder().
		Insert(table).
		Columns("id", "doorloop_owner_id", "company_name", "first_name",
			"last_name", "display_name", "updated_at")
	for _, o := range owners {
		builder = builder.Values(o.ID, o.DoorloopOwnerID, o.CompanyName,
			o.FirstName, o.LastName, o.DisplayName, o.UpdatedAt)
	}
	builder = builder.Suffix(`ON CONFLICT (doorloop_owner_id) DO UPDATE SET
		company_name = EXCLUDED.company_name,
		first_name   = EXCLUDED.first_name,
		last_name    = EXCLUDED.last_name,
		display_name = EXCLUDED.display_name,
		updated_at   = EXCLUDED.updated_at`)

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build upsert owners: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("upsert owners: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// RepairDisplayNames recomputes display_name for rows where it is null or
// blank, using company name when set and "first last" otherwise. Returns
// the number of rows repaired.
func (r *Repo) RepairDisplayNames(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `
		UPDATE owners
		SET display_name = CASE
			WHEN btrim(company_name) <> '' THEN btrim(company_name)
			ELSE btrim(btrim(first_name) || ' ' || btrim(last_name))
		END
		WHERE display_name IS NULL OR btrim(display_name) = ''`)
	if err != nil {
		return 0, fmt.Errorf("repair display names: %w", err)
	}
	return tag.RowsAffected(), nil
}

// GetByDoorloopID returns an owner by upstream id.
// Returns domain.ErrNotFound if no such owner exists.
func (r *Repo) GetByDoorloopID(ctx context.Context, doorloopID string) (domain.Owner, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("id", "doorloop_owner_id", "company_name", "first_name",
			"last_name", "display_name", "updated_at").
		From(table).
		Where(squirrel.Eq{"doorloop_owner_id": doorloopID}).
		ToSql()
	if err != nil {
		return domain.Owner{}, fmt.Errorf("build select owner: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return domain.Owner{}, fmt.Errorf("owner %s: %w", doorloopID, domain.ErrNotFound)
		}
		return domain.Owner{}, fmt.Errorf("select owner %s: %w", doorloopID, err)
	}

	return domain.Owner{
		ID:              out.ID,
		DoorloopOwnerID: out.DoorloopOwnerID,
		CompanyName:     out.CompanyName,
		FirstName:       out.FirstName,
		LastName:        out.LastName,
		DisplayName:     out.DisplayName,
		UpdatedAt:       out.UpdatedAt,
	}, nil
}
