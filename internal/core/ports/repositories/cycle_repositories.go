package repositories

import (
	"context"
	"time"

	"github.com/centsible/centsible_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountCycleUpdate is one staged account mutation of a cycle apply.
type AccountCycleUpdate struct {
	AccountID   string
	NewBalance  decimal.Decimal
	LastCycleAt time.Time
}

// PurchaseStatementUpdate stages a pending purchase moving to POSTED with
// its statement month assigned.
type PurchaseStatementUpdate struct {
	PurchaseID     string
	StatementMonth domain.CycleKey
}

// CycleApply bundles everything a completed cycle run writes. ApplyCycle
// persists the whole bundle in a single database transaction: either every
// account update, ledger entry, purchase update, the run row and the audit
// row land together, or none of them do.
type CycleApply struct {
	Run             domain.CycleRun
	Audit           domain.AuditLogRecord
	AccountUpdates  []AccountCycleUpdate
	Entries         []domain.LedgerEntry
	PurchaseUpdates []PurchaseStatementUpdate
}

// CycleRunReader defines read operations for cycle run data.
type CycleRunReader interface {
	// FindCompletedRun retrieves the completed run for (user, cycle key), if any.
	FindCompletedRun(ctx context.Context, userID string, cycleKey domain.CycleKey) (*domain.CycleRun, error)

	// FindRunByIdempotencyKey retrieves any run (completed or failed)
	// recorded under the caller-supplied idempotency key.
	FindRunByIdempotencyKey(ctx context.Context, userID string, idempotencyKey string) (*domain.CycleRun, error)

	// FindRunByID retrieves a run by its identifier.
	FindRunByID(ctx context.Context, runID string) (*domain.CycleRun, error)

	// ListRunsByUser retrieves the user's runs, newest first.
	ListRunsByUser(ctx context.Context, userID string, limit int) ([]domain.CycleRun, error)
}

// CycleRunWriter defines write operations for cycle run data.
type CycleRunWriter interface {
	// ApplyCycle persists a completed run and all of its staged writes
	// atomically. It returns apperrors.ErrConflict when another writer has
	// already completed a run for the same (user, cycle key) or reused the
	// idempotency key; nothing is written in that case.
	ApplyCycle(ctx context.Context, apply CycleApply) error

	// SaveFailedRun records a failed attempt. Failed runs carry a reason
	// and no staged mutations.
	SaveFailedRun(ctx context.Context, run domain.CycleRun) error
}

// AuditReader defines read access to the long-term audit trail.
type AuditReader interface {
	// ListAuditRecordsByUser retrieves audit records, newest first.
	ListAuditRecordsByUser(ctx context.Context, userID string, limit int) ([]domain.AuditLogRecord, error)
}

// CycleRunRepositoryFacade combines all cycle run repository interfaces.
type CycleRunRepositoryFacade interface {
	CycleRunReader
	CycleRunWriter
	AuditReader
}
