// Package audit implements the audit-event repository using PostgreSQL.
// It provides append-only operations: events are inserted and read,
// never updated or deleted.
package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/empirepm/ecc-backend/internal/adapter/postgres"
	"github.com/empirepm/ecc-backend/internal/domain"
)

const table = "audit_events"

type row struct {
	ID        uuid.UUID       `db:"id"`
	EventType string          `db:"event_type"`
	RefTable  string          `db:"ref_table"`
	RefID     uuid.UUID       `db:"ref_id"`
	Payload   json.RawMessage `db:"payload"`
	Label     *string         `db:"label"`
	CreatedAt time.Time       `db:"created_at"`
}

// Repo provides audit event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new audit event and returns the persisted record.
func (r *Repo) Create(ctx context.Context, event domain.AuditEvent) (domain.AuditEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	payloadJSON, err := json.Marshal(event.Payload)
	if err != nil {
		return domain.AuditEvent{}, fmt.Errorf("audit_event marshal payload: %w", err)
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "event_type", "ref_table", "ref_id", "payload", "label", "created_at").
		Values(event.ID, event.EventType, event.RefTable, event.RefID, payloadJSON, event.Label, event.CreatedAt).
		Suffix("RETURNING id, event_type, ref_table, ref_id, payload, label, created_at").
		ToSql()
	if err != nil {
		return domain.AuditEvent{}, fmt.Errorf("build insert audit_event: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return domain.AuditEvent{}, fmt.Errorf("insert audit_event: %w", err)
	}
	return toDomain(out)
}

// Log creates an audit event without returning it (fire-and-forget).
// Satisfies the transfer service's auditLogger.
func (r *Repo) Log(ctx context.Context, event domain.AuditEvent) error {
	_, err := r.Create(ctx, event)
	return err
}

// ListByRef returns the event history for a referenced row, oldest first.
func (r *Repo) ListByRef(ctx context.Context, refTable string, refID uuid.UUID) ([]domain.AuditEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("id", "event_type", "ref_table", "ref_id", "payload", "label", "created_at").
		From(table).
		Where(squirrel.Eq{"ref_table": refTable, "ref_id": refID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list audit_events: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("list audit_events: %w", err)
	}

	events := make([]domain.AuditEvent, len(rows))
	for i, rw := range rows {
		event, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		events[i] = event
	}
	return events, nil
}

func toDomain(rw row) (domain.AuditEvent, error) {
	event := domain.AuditEvent{
		ID:        rw.ID,
		EventType: rw.EventType,
		RefTable:  rw.RefTable,
		RefID:     rw.RefID,
		Label:     rw.Label,
		CreatedAt: rw.CreatedAt,
	}

	if len(rw.Payload) > 0 {
		payload := make(map[string]any)
		if err := json.Unmarshal(rw.Payload, &payload); err != nil {
			return domain.AuditEvent{}, fmt.Errorf("audit_event %s unmarshal payload: %w", rw.ID, err)
		}
		event.Payload = payload
	}

	return event, nil
}
