package domain

import (
	"time"

	"github.com/google/uuid"
)

// Audit event types emitted by the transfer state machine. Exactly one
// event is recorded per state transition.
const (
	AuditTransferInitiated          = "OWNER_TRANSFER_INITIATED"
	AuditTransferSubmitted          = "OWNER_TRANSFER_SUBMITTED"
	AuditTransferApprovedAccounting = "OWNER_TRANSFER_APPROVED_ACCOUNTING"
	AuditTransferReadyExecution     = "OWNER_TRANSFER_READY_EXECUTION"
	AuditTransferExecuted           = "OWNER_TRANSFER_EXECUTED"
	AuditTransferFailed             = "OWNER_TRANSFER_FAILED"
)

// AuditEvent is an append-only record of a significant action. Events are
// never updated or deleted.
type AuditEvent struct {
	ID        uuid.UUID
	EventType string
	RefTable  string
	RefID     uuid.UUID
	Payload   map[string]any
	Label     *string
	CreatedAt time.Time
}
