package repositories

import (
	"context"
	"time"

	"github.com/centsible/centsible_backend/internal/core/domain"
)

// AccountReader defines read operations for financial account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccountsByUser retrieves every active account owned by the user.
	ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error)

	// ListDueLiabilityAccounts retrieves the user's active cards and loans
	// whose last cycle predates the cutoff, ordered by creation time then
	// account ID so cycle processing is reproducible.
	ListDueLiabilityAccounts(ctx context.Context, userID string, cutoff time.Time) ([]domain.Account, error)
}

// AccountWriter defines write operations for financial account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
