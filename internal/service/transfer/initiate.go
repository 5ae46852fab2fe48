package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/empirepm/ecc-backend/internal/domain"
)

// Initiate validates ownership, creates the transfer row, captures
// snapshots of all dependent entities, and records the initiation audit
// event. The transfer row is committed before snapshotting starts because
// snapshot rows reference it.
//
// A validation failure happens before any insert, so a rejected initiation
// leaves nothing behind.
func (s *Service) Initiate(ctx context.Context, input InitiateInput) (*InitiateResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	propertyIDs := dedupe(input.PropertyIDs)

	if err := s.checkOwnership(ctx, input.OldOwnerID, propertyIDs); err != nil {
		return nil, err
	}

	status := domain.TransferStatusPendingAccounting
	if input.Draft {
		status = domain.TransferStatusDraft
	}

	now := s.now()
	created, err := s.transfers.Create(ctx, domain.Transfer{
		ID:            uuid.New(),
		OldOwnerID:    input.OldOwnerID,
		NewOwnerID:    input.NewOwnerID,
		PropertyIDs:   propertyIDs,
		EffectiveDate: input.EffectiveDate,
		Status:        status,
		Notes:         input.Notes,
		InitiatedBy:   input.InitiatedBy,
		CreatedAt:     now,
	})
	if err != nil {
		return nil, fmt.Errorf("create transfer: %w", err)
	}

	snapshotted := s.snapshotForTransfer(ctx, created.ID, propertyIDs)

	payload := map[string]any{
		"old_owner_id":   input.OldOwnerID.String(),
		"new_owner_id":   input.NewOwnerID.String(),
		"property_ids":   uuidStrings(propertyIDs),
		"effective_date": input.EffectiveDate.Format("2006-01-02"),
		"timing":         string(created.Timing(now)),
		"snapshots":      snapshotted,
	}
	if input.Notes != nil {
		payload["notes"] = *input.Notes
	}
	if input.InitiatedBy != nil {
		payload["initiated_by"] = *input.InitiatedBy
	}
	s.logAudit(ctx, domain.AuditTransferInitiated, created.ID, payload)

	s.log.InfoContext(ctx, "transfer initiated",
		slog.String("transfer_id", created.ID.String()),
		slog.String("status", created.Status.String()),
		slog.Int("properties", len(propertyIDs)),
	)

	return &InitiateResult{TransferID: created.ID, Status: created.Status}, nil
}

// Submit promotes a draft transfer into accounting review.
func (s *Service) Submit(ctx context.Context, id uuid.UUID) error {
	return s.advance(ctx, id,
		domain.TransferStatusDraft,
		domain.TransferStatusPendingAccounting,
		domain.AuditTransferSubmitted,
	)
}

// checkOwnership verifies every property currently belongs to oldOwnerID.
// Properties owned by someone else, or missing entirely, fail validation
// with their ids in the message.
func (s *Service) checkOwnership(ctx context.Context, oldOwnerID uuid.UUID, propertyIDs []uuid.UUID) error {
	properties, err := s.properties.GetByIDs(ctx, propertyIDs)
	if err != nil {
		return fmt.Errorf("load properties: %w", err)
	}

	ownerByID := make(map[uuid.UUID]uuid.UUID, len(properties))
	for _, p := range properties {
		ownerByID[p.ID] = p.OwnerID
	}

	var offending []string
	for _, id := range propertyIDs {
		owner, found := ownerByID[id]
		if !found || owner != oldOwnerID {
			offending = append(offending, id.String())
		}
	}
	if len(offending) > 0 {
		sort.Strings(offending)
		return domain.NewValidationError("property_ids",
			"not owned by old owner: "+strings.Join(offending, ", "))
	}
	return nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
