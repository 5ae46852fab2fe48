// Command run-due-transfers executes one due-transfer scheduler tick and
// exits. It is intended for external cron setups where running the
// in-process scheduler is not wanted.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/empirepm/ecc-backend/internal/adapter/postgres"
	auditrepo "github.com/empirepm/ecc-backend/internal/adapter/postgres/audit"
	propertyrepo "github.com/empirepm/ecc-backend/internal/adapter/postgres/property"
	snapshotrepo "github.com/empirepm/ecc-backend/internal/adapter/postgres/snapshot"
	transferrepo "github.com/empirepm/ecc-backend/internal/adapter/postgres/transfer"
	"github.com/empirepm/ecc-backend/internal/app"
	"github.com/empirepm/ecc-backend/internal/config"
	"github.com/empirepm/ecc-backend/internal/service/transfer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := transfer.NewService(
		logger,
		transferrepo.New(pool),
		snapshotrepo.New(pool),
		auditrepo.New(pool),
		propertyrepo.New(pool),
		postgres.NewTxManager(pool),
		transfer.Config{DueBatchSize: cfg.Scheduler.BatchSize},
	)

	executed, err := svc.RunDueTransfersTick(ctx)
	if err != nil {
		logger.Error("due-transfer tick failed",
			slog.String("error", err.Error()),
			slog.Int("executed", executed),
		)
		os.Exit(1)
	}

	logger.Info("due-transfer tick completed", slog.Int("executed", executed))
}
