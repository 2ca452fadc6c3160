package services

import (
	"context"

	"github.com/centsible/centsible_backend/internal/core/domain"
)

// RunCycleCommand carries the trigger parameters for one cycle run attempt.
type RunCycleCommand struct {
	UserID         string
	CycleKey       domain.CycleKey
	Source         domain.CycleSource
	IdempotencyKey *string
	CloseMonth     bool
}

// CycleSvcFacade is the cycle run coordinator surface. RunCycle is idempotent
// by (user, cycle key) and by idempotency key; callers always receive a
// terminal run, completed or failed, never a half state.
type CycleSvcFacade interface {
	RunCycle(ctx context.Context, cmd RunCycleCommand) (*domain.CycleRun, error)
	GetRunForCycle(ctx context.Context, userID string, cycleKey domain.CycleKey) (*domain.CycleRun, error)
	ListRuns(ctx context.Context, userID string, limit int) ([]domain.CycleRun, error)
	ListAuditRecords(ctx context.Context, userID string, limit int) ([]domain.AuditLogRecord, error)
}
