package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EntityType identifies the kind of entity captured in a transfer snapshot.
type EntityType string

const (
	EntityTypeProperty EntityType = "PROPERTY"
	EntityTypeUnit     EntityType = "UNIT"
	EntityTypeLease    EntityType = "LEASE"
	EntityTypeTenant   EntityType = "TENANT"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeProperty, EntityTypeUnit, EntityTypeLease, EntityTypeTenant:
		return true
	}
	return false
}

// Snapshot is a write-once point-in-time copy of an entity affected by a
// transfer, kept indefinitely for audit and rollback. One row per
// (transfer_id, entity_type, entity_id).
type Snapshot struct {
	TransferID uuid.UUID
	EntityType EntityType
	EntityID   uuid.UUID
	Raw        json.RawMessage // full-row capture, opaque to the core
	CapturedAt time.Time
}
