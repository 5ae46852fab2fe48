package transfer

import (
	"context"
	"fmt"
	"log/slog"
)

// RunDueTransfersTick executes every due transfer: READY_EXECUTION with an
// effective date that has arrived, limited to the configured batch size,
// oldest first. Each execution failure is logged and skipped so one bad
// transfer does not block the rest of the batch.
//
// The tick is idempotent: executed transfers leave READY_EXECUTION, so a
// re-run with no new authorizations finds nothing to do.
func (s *Service) RunDueTransfersTick(ctx context.Context) (int, error) {
	due, err := s.transfers.ListDue(ctx, s.now(), s.cfg.DueBatchSize)
	if err != nil {
		return 0, fmt.Errorf("list due transfers: %w", err)
	}
	if len(due) == 0 {
		return 0, nil
	}

	s.log.InfoContext(ctx, "due transfers found", slog.Int("count", len(due)))

	executed := 0
	for _, transfer := range due {
		if err := ctx.Err(); err != nil {
			return executed, err
		}
		if err := s.Execute(ctx, transfer.ID); err != nil {
			s.log.WarnContext(ctx, "due transfer execution failed",
				slog.String("transfer_id", transfer.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		executed++
	}
	return executed, nil
}
