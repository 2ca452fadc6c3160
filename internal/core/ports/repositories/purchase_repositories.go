package repositories

import (
	"context"
	"time"

	"github.com/centsible/centsible_backend/internal/core/domain"
)

// PurchaseReader defines read operations for purchase data.
type PurchaseReader interface {
	// FindPurchaseByID retrieves a purchase by its identifier.
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)

	// ListPurchasesByUser retrieves the user's purchases, newest first,
	// optionally filtered to one reconciliation status.
	ListPurchasesByUser(ctx context.Context, userID string, status *domain.PurchaseStatus, limit int) ([]domain.Purchase, error)

	// ListPendingPurchasesByAccounts retrieves PENDING purchases on the
	// given card accounts, ordered by purchase time then ID.
	ListPendingPurchasesByAccounts(ctx context.Context, userID string, accountIDs []string) ([]domain.Purchase, error)
}

// PurchaseWriter defines write operations for purchase data.
type PurchaseWriter interface {
	// SavePurchaseWithEntry persists a purchase together with its balanced
	// ledger entry and the card balance delta in one transaction.
	SavePurchaseWithEntry(ctx context.Context, purchase domain.Purchase, entry domain.LedgerEntry, accountID string) error

	// ReversePurchaseWithEntry marks a purchase reversed, persists the
	// reversal entry and restores the card balance in one transaction.
	ReversePurchaseWithEntry(ctx context.Context, purchase domain.Purchase, entry domain.LedgerEntry, accountID string) error

	// UpdatePurchaseStatus advances the reconciliation status of a purchase.
	UpdatePurchaseStatus(ctx context.Context, purchaseID string, status domain.PurchaseStatus, statementMonth *domain.CycleKey, userID string, now time.Time) error
}

// PurchaseRepositoryFacade combines all purchase repository interfaces.
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}
