package services

// ServiceContainer holds every service facade the handlers need.
type ServiceContainer struct {
	User     UserSvcFacade
	Account  AccountSvcFacade
	Cycle    CycleSvcFacade
	Ledger   LedgerSvcFacade
	Snapshot SnapshotSvcFacade
	Purchase PurchaseSvcFacade
}
