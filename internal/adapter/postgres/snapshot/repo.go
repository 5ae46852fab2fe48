// Package snapshot implements the transfer-snapshot repository using
// PostgreSQL. Snapshot rows are write-once: inserted during transfer
// initiation and never updated.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/empirepm/ecc-backend/internal/adapter/postgres"
	"github.com/empirepm/ecc-backend/internal/domain"
)

const table = "owner_transfer_snapshots"

// sourceTables maps entity types to the table they are captured from and
// the column used to restrict the capture to the transferred properties.
var sourceTables = map[domain.EntityType]struct {
	table     string
	filterCol string
}{
	domain.EntityTypeProperty: {"properties", "id"},
	domain.EntityTypeUnit:     {"units", "property_id"},
	domain.EntityTypeLease:    {"leases", "property_id"},
	domain.EntityTypeTenant:   {"tenants", "property_id"},
}

type row struct {
	TransferID uuid.UUID         `db:"transfer_id"`
	EntityType domain.EntityType `db:"entity_type"`
	EntityID   uuid.UUID         `db:"entity_id"`
	Raw        json.RawMessage   `db:"raw"`
	CapturedAt time.Time         `db:"captured_at"`
}

// Repo provides snapshot persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new snapshot repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// CaptureSource fetches full rows of the given entity type for the
// transferred properties as opaque JSON, one Snapshot per row. The
// capture is read-only; Insert persists the result.
func (r *Repo) CaptureSource(ctx context.Context, entityType domain.EntityType, propertyIDs []uuid.UUID) ([]domain.Snapshot, error) {
	src, ok := sourceTables[entityType]
	if !ok {
		return nil, fmt.Errorf("capture source: unknown entity type %q", entityType)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	// row_to_json keeps the capture schema-agnostic: whatever columns the
	// CRUD layer adds later are snapshotted without changes here.
	sql, args, err := postgres.Builder().
		Select("id", "row_to_json("+src.table+".*) AS raw").
		From(src.table).
		Where(squirrel.Eq{src.filterCol: propertyIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build capture %s: %w", src.table, err)
	}

	var captured []struct {
		ID  uuid.UUID       `db:"id"`
		Raw json.RawMessage `db:"raw"`
	}
	if err := pgxscan.Select(ctx, q, &captured, sql, args...); err != nil {
		return nil, fmt.Errorf("capture %s: %w", src.table, err)
	}

	snapshots := make([]domain.Snapshot, len(captured))
	for i, c := range captured {
		snapshots[i] = domain.Snapshot{
			EntityType: entityType,
			EntityID:   c.ID,
			Raw:        c.Raw,
		}
	}
	return snapshots, nil
}

// Insert persists a batch of snapshot rows. Duplicate
// (transfer_id, entity_type, entity_id) rows are left untouched, keeping
// snapshots write-once.
func (r *Repo) Insert(ctx context.Context, snapshots []domain.Snapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := postgres.Builder().
		Insert(table).
		Columns("transfer_id", "entity_type", "entity_id", "raw", "captured_at")
	for _, s := range snapshots {
		builder = builder.Values(s.TransferID, s.EntityType, s.EntityID, s.Raw, s.CapturedAt)
	}
	builder = builder.Suffix("ON CONFLICT (transfer_id, entity_type, entity_id) DO NOTHING")

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build insert snapshots: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert snapshots: %w", err)
	}
	return nil
}

// ListByTransfer returns all snapshots captured for a transfer.
func (r *Repo) ListByTransfer(ctx context.Context, transferID uuid.UUID) ([]domain.Snapshot, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("transfer_id", "entity_type", "entity_id", "raw", "captured_at").
		From(table).
		Where(squirrel.Eq{"transfer_id": transferID}).
		OrderBy("entity_type ASC", "entity_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list snapshots: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	snapshots := make([]domain.Snapshot, len(rows))
	for i, rw := range rows {
		snapshots[i] = domain.Snapshot{
			TransferID: rw.TransferID,
			EntityType: rw.EntityType,
			EntityID:   rw.EntityID,
			Raw:        rw.Raw,
			CapturedAt: rw.CapturedAt,
		}
	}
	return snapshots, nil
}
