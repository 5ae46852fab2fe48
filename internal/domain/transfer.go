package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransferStatus represents the lifecycle stage of an owner transfer.
type TransferStatus string

const (
	TransferStatusDraft              TransferStatus = "DRAFT"
	TransferStatusPendingAccounting  TransferStatus = "PENDING_ACCOUNTING"
	TransferStatusApprovedAccounting TransferStatus = "APPROVED_ACCOUNTING"
	TransferStatusReadyExecution     TransferStatus = "READY_EXECUTION"
	TransferStatusComplete           TransferStatus = "COMPLETE"
	TransferStatusFailed             TransferStatus = "FAILED"
)

func (s TransferStatus) String() string { return string(s) }

func (s TransferStatus) IsValid() bool {
	switch s {
	case TransferStatusDraft, TransferStatusPendingAccounting,
		TransferStatusApprovedAccounting, TransferStatusReadyExecution,
		TransferStatusComplete, TransferStatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s TransferStatus) IsTerminal() bool {
	return s == TransferStatusComplete || s == TransferStatusFailed
}

// CanTransitionTo reports whether moving from s to next is a legal
// forward step of the transfer state machine. FAILED is reachable from
// any non-terminal status (operator void path).
func (s TransferStatus) CanTransitionTo(next TransferStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == TransferStatusFailed {
		return true
	}
	switch s {
	case TransferStatusDraft:
		return next == TransferStatusPendingAccounting
	case TransferStatusPendingAccounting:
		return next == TransferStatusApprovedAccounting
	case TransferStatusApprovedAccounting:
		return next == TransferStatusReadyExecution
	case TransferStatusReadyExecution:
		return next == TransferStatusComplete
	}
	return false
}

// Transfer represents a proposed reassignment of one or more properties
// from one owner to another. Transfers are never deleted: completed rows
// form the append-only ownership history.
type Transfer struct {
	ID            uuid.UUID
	OldOwnerID    uuid.UUID
	NewOwnerID    uuid.UUID
	PropertyIDs   []uuid.UUID
	EffectiveDate time.Time // date-only semantics; time-of-day is ignored
	Status        TransferStatus
	Notes         *string
	InitiatedBy   *string
	CreatedAt     time.Time
	ExecutedAt    *time.Time
}

// TransferTiming tags whether a transfer's effective date is in the past
// or the future relative to initiation day.
type TransferTiming string

const (
	TransferTimingRetro  TransferTiming = "retro"
	TransferTimingFuture TransferTiming = "future"
)

// Timing compares the effective date with now, date-only (both sides
// normalized to midnight UTC). An effective date of today counts as retro.
func (t Transfer) Timing(now time.Time) TransferTiming {
	eff := midnightUTC(t.EffectiveDate)
	today := midnightUTC(now)
	if eff.After(today) {
		return TransferTimingFuture
	}
	return TransferTimingRetro
}

// DueBy reports whether the transfer's effective date has arrived by the
// given instant (inclusive, end-of-day boundary).
func (t Transfer) DueBy(now time.Time) bool {
	return !midnightUTC(t.EffectiveDate).After(midnightUTC(now))
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
