package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/empirepm/ecc-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedOwner creates an owner row and returns the filled domain.Owner.
func SeedOwner(t *testing.T, pool *pgxpool.Pool) domain.Owner {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	owner := domain.Owner{
		ID:              uuid.New(),
		DoorloopOwnerID: "dl-" + suffix,
		FirstName:       "Test",
		LastName:        "Owner " + suffix,
		DisplayName:     "Test Owner " + suffix,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO owners (id, doorloop_owner_id, company_name, first_name, last_name, display_name, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		owner.ID, owner.DoorloopOwnerID, owner.CompanyName, owner.FirstName, owner.LastName, owner.DisplayName, owner.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOwner insert: %v", err)
	}

	return owner
}

// SeedProperty creates a property belonging to the given owner.
func SeedProperty(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Property {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	property := domain.Property{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Name:    "Property " + suffix,
		Address: suffix + " Main St",
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO properties (id, owner_id, name, address)
		 VALUES ($1, $2, $3, $4)`,
		property.ID, property.OwnerID, property.Name, property.Address,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProperty insert: %v", err)
	}

	return property
}

// SeedUnit creates a unit under the given property and returns its id.
func SeedUnit(t *testing.T, pool *pgxpool.Pool, propertyID uuid.UUID) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	id := uuid.New()
	_, err := pool.Exec(ctx,
		`INSERT INTO units (id, property_id, name) VALUES ($1, $2, $3)`,
		id, propertyID, "Unit "+uniqueSuffix(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUnit insert: %v", err)
	}
	return id
}

// SeedTransfer creates a transfer row in the given status.
func SeedTransfer(t *testing.T, pool *pgxpool.Pool, oldOwnerID, newOwnerID uuid.UUID, propertyIDs []uuid.UUID, status domain.TransferStatus) domain.Transfer {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	transfer := domain.Transfer{
		ID:            uuid.New(),
		OldOwnerID:    oldOwnerID,
		NewOwnerID:    newOwnerID,
		PropertyIDs:   propertyIDs,
		EffectiveDate: now,
		Status:        status,
		CreatedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO owner_transfers (id, old_owner_id, new_owner_id, property_ids, effective_date, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		transfer.ID, transfer.OldOwnerID, transfer.NewOwnerID, transfer.PropertyIDs,
		transfer.EffectiveDate, transfer.Status, transfer.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTransfer insert: %v", err)
	}

	return transfer
}
