package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Owner is a property owner record, synced incrementally from DoorLoop.
// DoorloopOwnerID is the upstream identity and the upsert conflict key.
type Owner struct {
	ID              uuid.UUID
	DoorloopOwnerID string
	CompanyName     string
	FirstName       string
	LastName        string
	DisplayName     string
	UpdatedAt       time.Time
}

// DeriveDisplayName computes the display name: the trimmed company name if
// non-empty, otherwise "first last" trimmed. Returns "" when no source
// field is set; the repair pass re-derives blanks after every upsert batch.
func DeriveDisplayName(companyName, firstName, lastName string) string {
	if c := strings.TrimSpace(companyName); c != "" {
		return c
	}
	return strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
}
