package transfer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/empirepm/ecc-backend/internal/domain"
)

// Execute completes a transfer: it reassigns every listed property to the
// new owner and marks the transfer COMPLETE with executed_at stamped.
//
// The status check and the mutations run in one transaction, with the
// transition done as a conditional update on the expected prior status.
// Two concurrent executions of the same transfer therefore cannot both
// succeed: the loser's update affects zero rows and it backs out without
// touching any property. A failure while reassigning properties rolls the
// whole transaction back, leaving the transfer in READY_EXECUTION and safe
// to retry.
func (s *Service) Execute(ctx context.Context, id uuid.UUID) error {
	var executed domain.Transfer

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		transfer, err := s.transfers.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		completed, err := s.transfers.MarkExecuted(txCtx, id, s.now())
		if err != nil {
			return fmt.Errorf("mark transfer executed: %w", err)
		}
		if !completed {
			// Lost the race or never authorized; report the status we read.
			return domain.NewValidationError("status",
				fmt.Sprintf("transfer is %s, expected %s",
					transfer.Status, domain.TransferStatusReadyExecution))
		}

		reassigned, err := s.properties.ReassignOwner(txCtx, transfer.PropertyIDs, transfer.NewOwnerID)
		if err != nil {
			return fmt.Errorf("reassign properties: %w", err)
		}
		if reassigned != int64(len(transfer.PropertyIDs)) {
			s.log.WarnContext(txCtx, "reassign count mismatch",
				slog.String("transfer_id", id.String()),
				slog.Int("expected", len(transfer.PropertyIDs)),
				slog.Int64("updated", reassigned),
			)
		}

		executed = transfer
		return nil
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, domain.AuditTransferExecuted, id, map[string]any{
		"old_owner_id": executed.OldOwnerID.String(),
		"new_owner_id": executed.NewOwnerID.String(),
		"property_ids": uuidStrings(executed.PropertyIDs),
	})

	s.log.InfoContext(ctx, "transfer executed",
		slog.String("transfer_id", id.String()),
		slog.String("new_owner_id", executed.NewOwnerID.String()),
		slog.Int("properties", len(executed.PropertyIDs)),
	)
	return nil
}
