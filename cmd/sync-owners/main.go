// Command sync-owners runs one incremental DoorLoop owners sync and exits.
// The checkpoint in integration_state makes repeated runs fetch only the
// delta since the last success.
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
	staterepo "github.com/empirepm/ecc-backend/internal/adapter/postgres/integrationstate"
	ownerrepo "github.com/empirepm/ecc-backend/internal/adapter/postgres/owner"
	"github.com/empirepm/ecc-backend/internal/adapter/provider/doorloop"
	"github.com/empirepm/ecc-backend/internal/app"
	"github.com/empirepm/ecc-backend/internal/config"
	"github.com/empirepm/ecc-backend/internal/service/ownersync"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.DoorLoop.APIKey == "" {
		logger.Error("DOORLOOP_API_KEY is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := ownersync.NewService(
		logger,
		doorloop.NewClient(cfg.DoorLoop, logger),
		ownerrepo.New(pool),
		staterepo.New(pool),
		ownersync.Config{SinceDays: cfg.DoorLoop.SinceDays},
	)

	result, err := svc.Run(ctx)
	if err != nil {
		logger.Error("owners sync failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("owners sync completed",
		slog.Time("since", result.Since),
		slog.Int("fetched", result.Fetched),
		slog.Int("upserted", result.Upserted),
		slog.Int64("repaired", result.Repaired),
	)
}
