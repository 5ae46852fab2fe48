package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/empirepm/ecc-backend/internal/adapter/postgres"
	auditrepo "github.com/empirepm/ecc-backend/internal/adapter/postgres/audit"
	propertyrepo "github.com/empirepm/ecc-backend/internal/adapter/postgres/property"
	snapshotrepo "github.com/empirepm/ecc-backend/internal/adapter/postgres/snapshot"
	transferrepo "github.com/empirepm/ecc-backend/internal/adapter/postgres/transfer"
	"github.com/empirepm/ecc-backend/internal/config"
	"github.com/empirepm/ecc-backend/internal/service/transfer"
	"github.com/empirepm/ecc-backend/internal/transport/middleware"
	"github.com/empirepm/ecc-backend/internal/transport/rest"
)

// Run is the application entry point for the API server. It loads
// configuration, connects to the database, wires repositories, services,
// and HTTP transport, starts the due-transfer ticker when enabled, and
// serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	transferSvc := transfer.NewService(
		logger,
		transferrepo.New(pool),
		snapshotrepo.New(pool),
		auditrepo.New(pool),
		propertyrepo.New(pool),
		txManager,
		transfer.Config{DueBatchSize: cfg.Scheduler.BatchSize},
	)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()

	healthHandler := rest.NewHealthHandler(pool, BuildVersion())
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	transferHandler := rest.NewTransferHandler(transferSvc, logger)
	mux.HandleFunc("POST /api/owner-transfer/initiate", transferHandler.Initiate)
	mux.HandleFunc("GET /api/owner-transfer/{id}", transferHandler.Get)
	mux.HandleFunc("POST /api/owner-transfer/{id}/submit", transferHandler.Submit)
	mux.HandleFunc("POST /api/owner-transfer/{id}/audit", transferHandler.AddAudit)

	// Admin forwarding endpoints: origin allow-list + admin token +
	// optional bearer + per-IP rate limit, on top of the global chain.
	adminChain := middleware.Chain(
		middleware.RequireOrigin(cfg.CORS),
		middleware.AdminToken(cfg.Admin),
		rateLimiter.Limit(cfg.RateLimit.AdminPerMinute),
	)
	mux.Handle("POST /bff/owners/approvetransfer", adminChain(http.HandlerFunc(transferHandler.Approve)))
	mux.Handle("POST /bff/owners/authorizetransfer", adminChain(http.HandlerFunc(transferHandler.Authorize)))
	mux.Handle("POST /bff/owners/executetransfer", adminChain(http.HandlerFunc(transferHandler.Execute)))
	mux.Handle("POST /bff/owners/failtransfer", adminChain(http.HandlerFunc(transferHandler.Fail)))

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	if cfg.Scheduler.Enabled {
		go runDueTransferTicker(ctx, logger, transferSvc, cfg.Scheduler.Interval)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}

// runDueTransferTicker executes due transfers on a fixed interval until
// ctx is cancelled. Tick failures are logged and do not stop the ticker.
func runDueTransferTicker(ctx context.Context, logger *slog.Logger, svc *transfer.Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("due-transfer scheduler started", slog.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			logger.Info("due-transfer scheduler stopped")
			return
		case <-ticker.C:
			executed, err := svc.RunDueTransfersTick(ctx)
			if err != nil {
				logger.Error("due-transfer tick failed", slog.String("error", err.Error()))
				continue
			}
			if executed > 0 {
				logger.Info("due-transfer tick completed", slog.Int("executed", executed))
			}
		}
	}
}
