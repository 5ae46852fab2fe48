package transfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/empirepm/ecc-backend/internal/domain"
)

// ApproveAccounting moves a transfer from PENDING_ACCOUNTING to
// APPROVED_ACCOUNTING. Any other current status is rejected.
func (s *Service) ApproveAccounting(ctx context.Context, id uuid.UUID) error {
	return s.advance(ctx, id,
		domain.TransferStatusPendingAccounting,
		domain.TransferStatusApprovedAccounting,
		domain.AuditTransferApprovedAccounting,
	)
}

// Authorize moves a transfer from APPROVED_ACCOUNTING to READY_EXECUTION,
// clearing it for execution by an operator or the scheduler.
func (s *Service) Authorize(ctx context.Context, id uuid.UUID) error {
	return s.advance(ctx, id,
		domain.TransferStatusApprovedAccounting,
		domain.TransferStatusReadyExecution,
		domain.AuditTransferReadyExecution,
	)
}

// advance performs a guarded status transition. The compare-and-set
// update is the guard: when it affects no row, the current status is
// fetched only to produce an accurate error.
func (s *Service) advance(ctx context.Context, id uuid.UUID, from, to domain.TransferStatus, eventType string) error {
	moved, err := s.transfers.AdvanceStatus(ctx, id, from, to)
	if err != nil {
		return fmt.Errorf("advance transfer status: %w", err)
	}
	if !moved {
		return s.statusMismatch(ctx, id, from)
	}

	s.logAudit(ctx, eventType, id, map[string]any{
		"from": from.String(),
		"to":   to.String(),
	})

	s.log.InfoContext(ctx, "transfer status advanced",
		slog.String("transfer_id", id.String()),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)
	return nil
}

// statusMismatch builds the error for a failed conditional transition:
// ErrNotFound when the transfer does not exist, otherwise a
// ValidationError naming the actual status.
func (s *Service) statusMismatch(ctx context.Context, id uuid.UUID, expected domain.TransferStatus) error {
	current, err := s.transfers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("transfer %s: %w", id, domain.ErrNotFound)
		}
		return fmt.Errorf("load transfer %s: %w", id, err)
	}
	return domain.NewValidationError("status",
		fmt.Sprintf("transfer is %s, expected %s", current.Status, expected))
}
