package transfer

import (
	"github.com/google/uuid"

	"github.com/empirepm/ecc-backend/internal/domain"
)

// InitiateResult is returned by Initiate.
type InitiateResult struct {
	TransferID uuid.UUID
	Status     domain.TransferStatus
}

// GetResult bundles a transfer with its audit trail.
type GetResult struct {
	Transfer domain.Transfer
	Audit    []domain.AuditEvent
}

// TickResult summarizes one due-transfer scheduler tick.
type TickResult struct {
	Due      int
	Executed int
	Failed   int
}
