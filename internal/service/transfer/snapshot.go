package transfer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/empirepm/ecc-backend/internal/domain"
)

// snapshotEntityTypes is the capture order: the property rows themselves,
// then everything hanging off them.
var snapshotEntityTypes = []domain.EntityType{
	domain.EntityTypeProperty,
	domain.EntityTypeUnit,
	domain.EntityTypeLease,
	domain.EntityTypeTenant,
}

// snapshotForTransfer captures a point-in-time copy of every entity tied
// to the transferred properties. Each entity type is captured
// independently and best-effort: one table failing does not abort the
// others or the initiation. Failures are logged so they stay observable.
// Returns the per-type row counts for the initiation audit payload.
func (s *Service) snapshotForTransfer(ctx context.Context, transferID uuid.UUID, propertyIDs []uuid.UUID) map[string]int {
	counts := make(map[string]int, len(snapshotEntityTypes))
	capturedAt := s.now()

	for _, entityType := range snapshotEntityTypes {
		snapshots, err := s.snapshots.CaptureSource(ctx, entityType, propertyIDs)
		if err != nil {
			s.log.WarnContext(ctx, "snapshot capture failed",
				slog.String("transfer_id", transferID.String()),
				slog.String("entity_type", entityType.String()),
				slog.String("error", err.Error()),
			)
			continue
		}

		for i := range snapshots {
			snapshots[i].TransferID = transferID
			snapshots[i].CapturedAt = capturedAt
		}

		if err := s.snapshots.Insert(ctx, snapshots); err != nil {
			s.log.WarnContext(ctx, "snapshot insert failed",
				slog.String("transfer_id", transferID.String()),
				slog.String("entity_type", entityType.String()),
				slog.String("error", err.Error()),
			)
			continue
		}

		counts[entityType.String()] = len(snapshots)
	}

	return counts
}
