package repositories

import (
	"context"

	"github.com/centsible/centsible_backend/internal/core/domain"
)

// BudgetReader supplies the snapshot recorder with the user's recurring
// income and obligations. The editing side of these records lives outside
// the cycle engine.
type BudgetReader interface {
	// ListActiveIncomeSources retrieves the user's active income streams.
	ListActiveIncomeSources(ctx context.Context, userID string) ([]domain.IncomeSource, error)

	// ListActiveBills retrieves the user's active recurring bills.
	ListActiveBills(ctx context.Context, userID string) ([]domain.Bill, error)
}
