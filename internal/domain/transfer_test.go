package domain

import (
	"testing"
	"time"
)

func TestTransferStatus_IsValid(t *testing.T) {
	t.Parallel()

	valid := []TransferStatus{
		TransferStatusDraft, TransferStatusPendingAccounting,
		TransferStatusApprovedAccounting, TransferStatusReadyExecution,
		TransferStatusComplete, TransferStatusFailed,
	}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if TransferStatus("CANCELLED").IsValid() {
		t.Error("unknown status should be invalid")
	}
}

func TestTransferStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()

	forward := []struct {
		from, to TransferStatus
	}{
		{TransferStatusDraft, TransferStatusPendingAccounting},
		{TransferStatusPendingAccounting, TransferStatusApprovedAccounting},
		{TransferStatusApprovedAccounting, TransferStatusReadyExecution},
		{TransferStatusReadyExecution, TransferStatusComplete},
	}
	for _, tc := range forward {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Errorf("%s -> %s should be allowed", tc.from, tc.to)
		}
	}

	// No skipping ahead or moving backward.
	if TransferStatusPendingAccounting.CanTransitionTo(TransferStatusComplete) {
		t.Error("PENDING_ACCOUNTING -> COMPLETE should be rejected")
	}
	if TransferStatusReadyExecution.CanTransitionTo(TransferStatusPendingAccounting) {
		t.Error("READY_EXECUTION -> PENDING_ACCOUNTING should be rejected")
	}

	// FAILED is reachable from every non-terminal status.
	for _, s := range []TransferStatus{
		TransferStatusDraft, TransferStatusPendingAccounting,
		TransferStatusApprovedAccounting, TransferStatusReadyExecution,
	} {
		if !s.CanTransitionTo(TransferStatusFailed) {
			t.Errorf("%s -> FAILED should be allowed", s)
		}
	}
}

func TestTransferStatus_TerminalStatesAreFinal(t *testing.T) {
	t.Parallel()

	all := []TransferStatus{
		TransferStatusDraft, TransferStatusPendingAccounting,
		TransferStatusApprovedAccounting, TransferStatusReadyExecution,
		TransferStatusComplete, TransferStatusFailed,
	}
	for _, terminal := range []TransferStatus{TransferStatusComplete, TransferStatusFailed} {
		if !terminal.IsTerminal() {
			t.Errorf("%s should be terminal", terminal)
		}
		for _, next := range all {
			if terminal.CanTransitionTo(next) {
				t.Errorf("%s -> %s should be rejected", terminal, next)
			}
		}
	}
}

func TestTransfer_Timing(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		name      string
		effective time.Time
		want      TransferTiming
	}{
		{"past date", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), TransferTimingRetro},
		{"same day counts as retro", time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC), TransferTimingRetro},
		{"future date", time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), TransferTimingFuture},
	}
	for _, tc := range tests {
		tr := Transfer{EffectiveDate: tc.effective}
		if got := tr.Timing(now); got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestTransfer_DueBy(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 0, 0, 1, 0, time.UTC)

	due := Transfer{EffectiveDate: time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)}
	if !due.DueBy(now) {
		t.Error("effective date today should be due regardless of time-of-day")
	}

	notDue := Transfer{EffectiveDate: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)}
	if notDue.DueBy(now) {
		t.Error("tomorrow's transfer should not be due")
	}
}
