package repositories

import (
	"context"

	"github.com/centsible/centsible_backend/internal/core/domain"
)

// SnapshotReader defines read operations for month-close snapshots.
type SnapshotReader interface {
	// FindSnapshot retrieves the snapshot for (user, cycle key), if any.
	FindSnapshot(ctx context.Context, userID string, cycleKey domain.CycleKey) (*domain.MonthCloseSnapshot, error)

	// ListSnapshotsByUser retrieves the user's snapshots, newest first.
	ListSnapshotsByUser(ctx context.Context, userID string, limit int) ([]domain.MonthCloseSnapshot, error)
}

// SnapshotWriter defines write operations for month-close snapshots.
type SnapshotWriter interface {
	// SaveSnapshot inserts a snapshot if none exists for its (user, cycle
	// key) and returns the stored row. When a snapshot already exists the
	// insert is a no-op and the existing row is returned; snapshots are
	// append-only and never mutated.
	SaveSnapshot(ctx context.Context, snapshot domain.MonthCloseSnapshot) (*domain.MonthCloseSnapshot, error)
}

// SnapshotRepositoryFacade combines all snapshot repository interfaces.
type SnapshotRepositoryFacade interface {
	SnapshotReader
	SnapshotWriter
}
