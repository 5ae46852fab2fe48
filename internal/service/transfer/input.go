package transfer

import (
	"time"

	"github.com/google/uuid"

	"github.com/empirepm/ecc-backend/internal/domain"
)

// InitiateInput carries the parameters for initiating a transfer.
type InitiateInput struct {
	OldOwnerID    uuid.UUID
	NewOwnerID    uuid.UUID
	PropertyIDs   []uuid.UUID
	EffectiveDate time.Time
	Notes         *string
	InitiatedBy   *string
	// Draft saves the transfer without submitting it for accounting review.
	Draft bool
}

// Validate checks the structural preconditions. Ownership of the listed
// properties is checked against the database by Initiate itself.
func (in InitiateInput) Validate() error {
	var errs []domain.FieldError

	if in.OldOwnerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "old_owner_id", Message: "required"})
	}
	if in.NewOwnerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "new_owner_id", Message: "required"})
	}
	if in.OldOwnerID != uuid.Nil && in.OldOwnerID == in.NewOwnerID {
		errs = append(errs, domain.FieldError{Field: "new_owner_id", Message: "new owner must be different"})
	}
	if len(in.PropertyIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "property_ids", Message: "no properties selected"})
	}
	if in.EffectiveDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "effective_date", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// dedupe returns the property ids with duplicates removed, first
// occurrence order preserved.
func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// AddAuditInput carries the parameters for appending a manual audit event
// to a transfer.
type AddAuditInput struct {
	Action string
	Actor  *string
	Detail *string
}

func (in AddAuditInput) Validate() error {
	if in.Action == "" {
		return domain.NewValidationError("action", "required")
	}
	return nil
}
