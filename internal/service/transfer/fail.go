package transfer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/empirepm/ecc-backend/internal/domain"
)

// Fail voids a transfer from any non-terminal status. FAILED is terminal:
// the transfer stays as an audit record but can never be executed.
func (s *Service) Fail(ctx context.Context, id uuid.UUID, reason string) error {
	failed, err := s.transfers.MarkFailed(ctx, id)
	if err != nil {
		return fmt.Errorf("mark transfer failed: %w", err)
	}
	if !failed {
		current, err := s.transfers.GetByID(ctx, id)
		if err != nil {
			return err
		}
		return domain.NewValidationError("status",
			fmt.Sprintf("transfer is %s and cannot be failed", current.Status))
	}

	payload := map[string]any{}
	if reason != "" {
		payload["reason"] = reason
	}
	s.logAudit(ctx, domain.AuditTransferFailed, id, payload)

	s.log.InfoContext(ctx, "transfer failed",
		slog.String("transfer_id", id.String()),
		slog.String("reason", reason),
	)
	return nil
}
