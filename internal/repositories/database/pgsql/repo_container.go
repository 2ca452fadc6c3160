package pgsql

import (
	portsrepo "github.com/centsible/centsible_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	cycleRepo := newPgxCycleRunRepository(dbPool, accountRepo)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	snapshotRepo := newPgxSnapshotRepository(dbPool)
	purchaseRepo := newPgxPurchaseRepository(dbPool, accountRepo)
	budgetRepo := newPgxBudgetRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:  accountRepo,
		CycleRepo:    cycleRepo,
		LedgerRepo:   ledgerRepo,
		SnapshotRepo: snapshotRepo,
		PurchaseRepo: purchaseRepo,
		BudgetRepo:   budgetRepo,
		UserRepo:     userRepo,
	}
}
