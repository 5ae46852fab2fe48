package ownersync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/empirepm/ecc-backend/internal/domain"
)

// checkpointKey is the integration_state key for the owners sync cursor.
const checkpointKey = "doorloop_owners"

// checkpointState is the persisted cursor payload.
type checkpointState struct {
	LastSyncedAt time.Time `json:"last_synced_at"`
}

// Checkpoint is the sync cursor: the timestamp of the last successful run,
// persisted in integration_state so each run only fetches the delta since
// the previous one.
type Checkpoint struct {
	state stateRepo
}

// NewCheckpoint creates a Checkpoint over the given state store.
func NewCheckpoint(state stateRepo) *Checkpoint {
	return &Checkpoint{state: state}
}

// Load returns the stored cursor timestamp. found is false when no
// checkpoint has ever been saved; the caller falls back to a lookback
// window.
func (c *Checkpoint) Load(ctx context.Context) (t time.Time, found bool, err error) {
	raw, err := c.state.Get(ctx, checkpointKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("load checkpoint: %w", err)
	}

	var state checkpointState
	if err := json.Unmarshal(raw, &state); err != nil {
		return time.Time{}, false, fmt.Errorf("decode checkpoint: %w", err)
	}
	if state.LastSyncedAt.IsZero() {
		return time.Time{}, false, nil
	}
	return state.LastSyncedAt, true, nil
}

// Save persists t as the new cursor.
func (c *Checkpoint) Save(ctx context.Context, t time.Time) error {
	raw, err := json.Marshal(checkpointState{LastSyncedAt: t.UTC()})
	if err != nil {
		return fmt.Errorf("encode checkpoint: %w", err)
	}
	if err := c.state.Set(ctx, checkpointKey, raw); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	return nil
}
