package services

import (
	portsrepo "github.com/centsible/centsible_backend/internal/core/ports/repositories"
	portssvc "github.com/centsible/centsible_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Account = NewAccountService(repos.AccountRepo)
	container.Ledger = NewLedgerService(repos.LedgerRepo)
	container.Purchase = NewPurchaseService(repos.PurchaseRepo, repos.AccountRepo)

	// Snapshot service first: the cycle coordinator closes the month
	// through it after a completed run.
	container.Snapshot = NewSnapshotService(repos.AccountRepo, repos.BudgetRepo, repos.SnapshotRepo)
	container.Cycle = NewCycleService(repos.AccountRepo, repos.CycleRepo, repos.PurchaseRepo, repos.UserRepo, container.Snapshot)

	return container
}
