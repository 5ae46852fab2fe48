package transfer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/empirepm/ecc-backend/internal/domain"
)

// Get returns a transfer together with its audit trail, oldest event first.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*GetResult, error) {
	transfer, err := s.transfers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	audit, err := s.audit.ListByRef(ctx, refTable, id)
	if err != nil {
		return nil, fmt.Errorf("load audit trail: %w", err)
	}

	return &GetResult{Transfer: transfer, Audit: audit}, nil
}

// AddAudit appends a manual audit event to a transfer's trail. The
// transfer must exist; the event itself is freeform.
func (s *Service) AddAudit(ctx context.Context, id uuid.UUID, input AddAuditInput) (*domain.AuditEvent, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.transfers.GetByID(ctx, id); err != nil {
		return nil, err
	}

	payload := map[string]any{}
	if input.Actor != nil {
		payload["actor"] = *input.Actor
	}
	if input.Detail != nil {
		payload["detail"] = *input.Detail
	}

	event, err := s.audit.Create(ctx, domain.AuditEvent{
		ID:        uuid.New(),
		EventType: input.Action,
		RefTable:  refTable,
		RefID:     id,
		Payload:   payload,
		Label:     input.Actor,
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("insert audit event: %w", err)
	}
	return &event, nil
}
