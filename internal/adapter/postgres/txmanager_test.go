package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/empirepm/ecc-backend/internal/adapter/postgres"
	"github.com/empirepm/ecc-backend/internal/adapter/postgres/testhelper"
)

// ownerExists checks whether an owner row with the given ID exists in the database.
func ownerExists(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(
		context.Background(),
		`SELECT EXISTS(SELECT 1 FROM owners WHERE id = $1)`,
		ownerID,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("ownerExists query: %v", err)
	}
	return exists
}

func insertOwner(ctx context.Context, q postgres.Querier, ownerID uuid.UUID, dlID string) error {
	_, err := q.Exec(ctx,
		`INSERT INTO owners (id, doorloop_owner_id, company_name, first_name, last_name, display_name, updated_at)
		 VALUES ($1, $2, '', 'Tx', 'Test', 'Tx Test', now())`,
		ownerID, dlID,
	)
	return err
}

func TestRunInTx_Commit(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	ownerID := uuid.New()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		return insertOwner(ctx, q, ownerID, "dl-commit-"+ownerID.String())
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	if !ownerExists(t, pool, ownerID) {
		t.Fatal("expected owner to exist after committed transaction")
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	ownerID := uuid.New()
	sentinel := errors.New("business logic error")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		if execErr := insertOwner(ctx, q, ownerID, "dl-rollback-"+ownerID.String()); execErr != nil {
			t.Fatalf("insert inside tx failed: %v", execErr)
		}
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}

	if ownerExists(t, pool, ownerID) {
		t.Fatal("expected owner NOT to exist after rolled-back transaction")
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	ownerID := uuid.New()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic to be re-raised")
		}
		if r != "test panic" {
			t.Fatalf("expected panic value %q, got %v", "test panic", r)
		}

		// Verify data was rolled back.
		if ownerExists(t, pool, ownerID) {
			t.Fatal("expected owner NOT to exist after panic-rolled-back transaction")
		}
	}()

	_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		if err := insertOwner(ctx, q, ownerID, "dl-panic-"+ownerID.String()); err != nil {
			t.Fatalf("insert inside tx failed: %v", err)
		}
		panic("test panic")
	})
}

func TestRunInTx_QuerierFromCtx_UsesTx(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	ownerID := uuid.New()

	// Insert inside a transaction, then verify it's visible within the same tx
	// but NOT outside until commit.
	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		if err := insertOwner(ctx, q, ownerID, "dl-ctx-"+ownerID.String()); err != nil {
			return err
		}

		// Should be visible within the transaction.
		var exists bool
		err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM owners WHERE id = $1)`, ownerID).Scan(&exists)
		if err != nil {
			return err
		}
		if !exists {
			t.Fatal("expected owner to be visible within the transaction")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	// After commit, also visible outside.
	if !ownerExists(t, pool, ownerID) {
		t.Fatal("expected owner to exist after committed transaction")
	}
}
