// Package transfer implements the owner-transfer workflow: a multi-stage
// state machine (initiate → accounting approval → execution authorization →
// execution) with point-in-time snapshots, an append-only audit trail, and
// a scheduler tick that executes due transfers unattended.
package transfer

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/empirepm/ecc-backend/internal/domain"
)

// refTable is the ref_table value for all transfer audit events.
const refTable = "owner_transfers"

const DefaultDueBatchSize = 20

type transferRepo interface {
	Create(ctx context.Context, t domain.Transfer) (domain.Transfer, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Transfer, error)
	AdvanceStatus(ctx context.Context, id uuid.UUID, from, to domain.TransferStatus) (bool, error)
	MarkExecuted(ctx context.Context, id uuid.UUID, executedAt time.Time) (bool, error)
	MarkFailed(ctx context.Context, id uuid.UUID) (bool, error)
	ListDue(ctx context.Context, dueBy time.Time, limit int) ([]domain.Transfer, error)
}

type snapshotRepo interface {
	CaptureSource(ctx context.Context, entityType domain.EntityType, propertyIDs []uuid.UUID) ([]domain.Snapshot, error)
	Insert(ctx context.Context, snapshots []domain.Snapshot) error
}

type auditRepo interface {
	Create(ctx context.Context, event domain.AuditEvent) (domain.AuditEvent, error)
	Log(ctx context.Context, event domain.AuditEvent) error
	ListByRef(ctx context.Context, refTable string, refID uuid.UUID) ([]domain.AuditEvent, error)
}

type propertyRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Property, error)
	ReassignOwner(ctx context.Context, ids []uuid.UUID, newOwnerID uuid.UUID) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds transfer service tunables.
type Config struct {
	DueBatchSize int
}

// Service provides owner-transfer workflow operations.
type Service struct {
	log        *slog.Logger
	transfers  transferRepo
	snapshots  snapshotRepo
	audit      auditRepo
	properties propertyRepo
	tx         txManager
	cfg        Config

	now func() time.Time
}

// NewService creates a new transfer service.
func NewService(
	log *slog.Logger,
	transfers transferRepo,
	snapshots snapshotRepo,
	audit auditRepo,
	properties propertyRepo,
	tx txManager,
	cfg Config,
) *Service {
	if cfg.DueBatchSize <= 0 {
		cfg.DueBatchSize = DefaultDueBatchSize
	}
	return &Service{
		log:        log.With("service", "transfer"),
		transfers:  transfers,
		snapshots:  snapshots,
		audit:      audit,
		properties: properties,
		tx:         tx,
		cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// logAudit records an audit event fire-and-forget: a failed insert is
// logged but never fails the operation that produced it.
func (s *Service) logAudit(ctx context.Context, eventType string, refID uuid.UUID, payload map[string]any) {
	err := s.audit.Log(ctx, domain.AuditEvent{
		ID:        uuid.New(),
		EventType: eventType,
		RefTable:  refTable,
		RefID:     refID,
		Payload:   payload,
		CreatedAt: s.now(),
	})
	if err != nil {
		s.log.WarnContext(ctx, "audit insert failed",
			slog.String("event_type", eventType),
			slog.String("transfer_id", refID.String()),
			slog.String("error", err.Error()),
		)
	}
}
