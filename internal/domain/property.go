package domain

import "github.com/google/uuid"

// Property is owned by exactly one Owner at any time. OwnerID is the only
// field the transfer core mutates; the full schema belongs to the CRUD
// layer outside this service.
type Property struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
	Address string
}
