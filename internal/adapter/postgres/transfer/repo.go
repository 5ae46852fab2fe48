// Package transfer implements the owner-transfer repository using PostgreSQL.
// Transfers are append-only history: rows are inserted and their status
// advanced, never deleted.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/empirepm/ecc-backend/internal/adapter/postgres"
	"github.com/empirepm/ecc-backend/internal/domain"
)

const table = "owner_transfers"

var columns = []string{
	"id", "old_owner_id", "new_owner_id", "property_ids", "effective_date",
	"status", "notes", "initiated_by", "created_at", "executed_at",
}

// row mirrors the owner_transfers table for scany.
type row struct {
	ID            uuid.UUID             `db:"id"`
	OldOwnerID    uuid.UUID             `db:"old_owner_id"`
	NewOwnerID    uuid.UUID             `db:"new_owner_id"`
	PropertyIDs   []uuid.UUID           `db:"property_ids"`
	EffectiveDate time.Time             `db:"effective_date"`
	Status        domain.TransferStatus `db:"status"`
	Notes         *string               `db:"notes"`
	InitiatedBy   *string               `db:"initiated_by"`
	CreatedAt     time.Time             `db:"created_at"`
	ExecutedAt    *time.Time            `db:"executed_at"`
}

func (r row) toDomain() domain.Transfer {
	return domain.Transfer{
		ID:            r.ID,
		OldOwnerID:    r.OldOwnerID,
		NewOwnerID:    r.NewOwnerID,
		PropertyIDs:   r.PropertyIDs,
		EffectiveDate: r.EffectiveDate,
		Status:        r.Status,
		Notes:         r.Notes,
		InitiatedBy:   r.InitiatedBy,
		CreatedAt:     r.CreatedAt,
		ExecutedAt:    r.ExecutedAt,
	}
}

// Repo provides owner-transfer persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new transfer repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new transfer row and returns the persisted record.
func (r *Repo) Create(ctx context.Context, t domain.Transfer) (domain.Transfer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "old_owner_id", "new_owner_id", "property_ids",
			"effective_date", "status", "notes", "initiated_by", "created_at").
		Values(t.ID, t.OldOwnerID, t.NewOwnerID, t.PropertyIDs,
			t.EffectiveDate, t.Status, t.Notes, t.InitiatedBy, t.CreatedAt).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return domain.Transfer{}, fmt.Errorf("build insert transfer: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return domain.Transfer{}, mapError(err, t.ID)
	}
	return out.toDomain(), nil
}

// GetByID returns a transfer by primary key.
// Returns domain.ErrNotFound if the transfer does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Transfer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Transfer{}, fmt.Errorf("build select transfer: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return domain.Transfer{}, mapError(err, id)
	}
	return out.toDomain(), nil
}

// AdvanceStatus atomically moves a transfer from an expected status to the
// next one. Returns false (and no error) when the row was not in the
// expected status, which is how concurrent executions lose the race.
func (r *Repo) AdvanceStatus(ctx context.Context, id uuid.UUID, from, to domain.TransferStatus) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("status", to).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build advance status: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return false, mapError(err, id)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkExecuted atomically completes a transfer: READY_EXECUTION → COMPLETE
// with executed_at stamped. Same compare-and-set contract as AdvanceStatus.
func (r *Repo) MarkExecuted(ctx context.Context, id uuid.UUID, executedAt time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("status", domain.TransferStatusComplete).
		Set("executed_at", executedAt).
		Where(squirrel.Eq{"id": id, "status": domain.TransferStatusReadyExecution}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build mark executed: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return false, mapError(err, id)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkFailed voids a transfer from any non-terminal status.
// Returns false when the transfer was already terminal.
func (r *Repo) MarkFailed(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("status", domain.TransferStatusFailed).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": []domain.TransferStatus{
			domain.TransferStatusComplete, domain.TransferStatusFailed,
		}}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build mark failed: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return false, mapError(err, id)
	}
	return tag.RowsAffected() == 1, nil
}

// ListDue returns up to limit transfers in READY_EXECUTION whose effective
// date has arrived by dueBy (inclusive), oldest effective date first.
func (r *Repo) ListDue(ctx context.Context, dueBy time.Time, limit int) ([]domain.Transfer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": domain.TransferStatusReadyExecution}).
		Where(squirrel.LtOrEq{"effective_date": dueBy}).
		OrderBy("effective_date ASC", "created_at ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list due transfers: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list due transfers: %w", err)
	}

	transfers := make([]domain.Transfer, len(rows))
	for i, rw := range rows {
		transfers[i] = rw.toDomain()
	}
	return transfers, nil
}

func joinColumns() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("owner_transfer %s: %w", id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("owner_transfer %s: %w", id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("owner_transfer %s: %w", id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("owner_transfer %s: %w", id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("owner_transfer %s: %w", id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("owner_transfer %s: %w", id, err)
}
