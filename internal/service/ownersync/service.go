// Package ownersync implements the incremental DoorLoop owners sync: fetch
// owners updated since the stored checkpoint, upsert them keyed on the
// upstream id, repair any blank display names, and advance the checkpoint.
package ownersync

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/empirepm/ecc-backend/internal/adapter/provider/doorloop"
	"github.com/empirepm/ecc-backend/internal/domain"
)

// DefaultSinceDays is the fallback lookback window when no checkpoint
// exists yet.
const DefaultSinceDays = 30

type ownerFetcher interface {
	FetchOwnersIncremental(ctx context.Context, since time.Time) ([]doorloop.UpstreamOwner, error)
}

type ownerRepo interface {
	UpsertBatch(ctx context.Context, owners []domain.Owner) (int, error)
	RepairDisplayNames(ctx context.Context) (int64, error)
}

type stateRepo interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
}

// Config holds owners sync tunables.
type Config struct {
	SinceDays int
}

// Result summarizes one sync run.
type Result struct {
	Since    time.Time
	Fetched  int
	Upserted int
	Repaired int64
}

// Service runs the owners sync.
type Service struct {
	log        *slog.Logger
	fetcher    ownerFetcher
	owners     ownerRepo
	checkpoint *Checkpoint
	cfg        Config

	now func() time.Time
}

// NewService creates a new owners sync service.
func NewService(
	log *slog.Logger,
	fetcher ownerFetcher,
	owners ownerRepo,
	state stateRepo,
	cfg Config,
) *Service {
	if cfg.SinceDays <= 0 {
		cfg.SinceDays = DefaultSinceDays
	}
	return &Service{
		log:        log.With("service", "ownersync"),
		fetcher:    fetcher,
		owners:     owners,
		checkpoint: NewCheckpoint(state),
		cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Run performs one sync pass. The cursor window starts at the stored
// checkpoint, or now minus the lookback window on the first ever run.
// An upstream failure aborts the run before the checkpoint moves, so the
// next run retries the same window. The checkpoint is set to this run's
// start time, not its end, so owners updated mid-run are fetched again
// rather than skipped.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	runStartedAt := s.now()

	since, found, err := s.checkpoint.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		since = runStartedAt.AddDate(0, 0, -s.cfg.SinceDays)
		s.log.InfoContext(ctx, "no checkpoint, using lookback window",
			slog.Int("since_days", s.cfg.SinceDays),
		)
	}

	s.log.InfoContext(ctx, "owners sync started", slog.Time("since", since))

	upstream, err := s.fetcher.FetchOwnersIncremental(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("fetch owners: %w", err)
	}

	result := &Result{Since: since, Fetched: len(upstream)}

	if len(upstream) > 0 {
		upserted, err := s.owners.UpsertBatch(ctx, mapOwners(upstream, runStartedAt))
		if err != nil {
			return nil, fmt.Errorf("upsert owners: %w", err)
		}
		result.Upserted = upserted

		// Best-effort: a failed repair never fails the run.
		repaired, err := s.owners.RepairDisplayNames(ctx)
		if err != nil {
			s.log.WarnContext(ctx, "display name repair failed",
				slog.String("error", err.Error()),
			)
		} else {
			result.Repaired = repaired
		}
	}

	if err := s.checkpoint.Save(ctx, runStartedAt); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "owners sync finished",
		slog.Int("fetched", result.Fetched),
		slog.Int("upserted", result.Upserted),
		slog.Int64("repaired", result.Repaired),
	)
	return result, nil
}

// mapOwners converts upstream records to domain owners, deriving the
// display name. Each owner gets a fresh id; on conflict the upsert keeps
// the stored row's id and only updates the name columns.
func mapOwners(upstream []doorloop.UpstreamOwner, now time.Time) []domain.Owner {
	out := make([]domain.Owner, 0, len(upstream))
	for _, u := range upstream {
		if u.ID == "" {
			continue
		}
		out = append(out, domain.Owner{
			ID:              uuid.New(),
			DoorloopOwnerID: u.ID,
			CompanyName:     u.CompanyName,
			FirstName:       u.FirstName,
			LastName:        u.LastName,
			DisplayName:     domain.DeriveDisplayName(u.CompanyName, u.FirstName, u.LastName),
			UpdatedAt:       now,
		})
	}
	return out
}
