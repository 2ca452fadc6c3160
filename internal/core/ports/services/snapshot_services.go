package services

import (
	"context"

	"github.com/centsible/centsible_backend/internal/core/domain"
)

// SnapshotSvcFacade records and serves month-close snapshots. CloseMonth is
// idempotent: a second close for the same cycle key returns the existing
// snapshot untouched.
type SnapshotSvcFacade interface {
	CloseMonth(ctx context.Context, userID string, cycleKey domain.CycleKey) (*domain.MonthCloseSnapshot, error)
	GetSnapshot(ctx context.Context, userID string, cycleKey domain.CycleKey) (*domain.MonthCloseSnapshot, error)
	ListSnapshots(ctx context.Context, userID string, limit int) ([]domain.MonthCloseSnapshot, error)
}
