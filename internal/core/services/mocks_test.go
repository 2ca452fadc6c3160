package services_test

import (
	"context"
	"time"

	"github.com/centsible/centsible_backend/internal/core/domain"
	portsrepo "github.com/centsible/centsible_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListDueLiabilityAccounts(ctx context.Context, userID string, cutoff time.Time) ([]domain.Account, error) {
	args := m.Called(ctx, userID, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

// MockCycleRunRepository is a mock type for the CycleRunRepositoryFacade interface
type MockCycleRunRepository struct {
	mock.Mock
}

func (m *MockCycleRunRepository) FindCompletedRun(ctx context.Context, userID string, cycleKey domain.CycleKey) (*domain.CycleRun, error) {
	args := m.Called(ctx, userID, cycleKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CycleRun), args.Error(1)
}

func (m *MockCycleRunRepository) FindRunByIdempotencyKey(ctx context.Context, userID string, idempotencyKey string) (*domain.CycleRun, error) {
	args := m.Called(ctx, userID, idempotencyKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CycleRun), args.Error(1)
}

func (m *MockCycleRunRepository) FindRunByID(ctx context.Context, runID string) (*domain.CycleRun, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CycleRun), args.Error(1)
}

func (m *MockCycleRunRepository) ListRunsByUser(ctx context.Context, userID string, limit int) ([]domain.CycleRun, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CycleRun), args.Error(1)
}

func (m *MockCycleRunRepository) ApplyCycle(ctx context.Context, apply portsrepo.CycleApply) error {
	args := m.Called(ctx, apply)
	return args.Error(0)
}

func (m *MockCycleRunRepository) SaveFailedRun(ctx context.Context, run domain.CycleRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockCycleRunRepository) ListAuditRecordsByUser(ctx context.Context, userID string, limit int) ([]domain.AuditLogRecord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLogRecord), args.Error(1)
}

// MockPurchaseRepository is a mock type for the PurchaseRepositoryFacade interface
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	args := m.Called(ctx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListPurchasesByUser(ctx context.Context, userID string, status *domain.PurchaseStatus, limit int) ([]domain.Purchase, error) {
	args := m.Called(ctx, userID, status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListPendingPurchasesByAccounts(ctx context.Context, userID string, accountIDs []string) ([]domain.Purchase, error) {
	args := m.Called(ctx, userID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) SavePurchaseWithEntry(ctx context.Context, purchase domain.Purchase, entry domain.LedgerEntry, accountID string) error {
	args := m.Called(ctx, purchase, entry, accountID)
	return args.Error(0)
}

func (m *MockPurchaseRepository) ReversePurchaseWithEntry(ctx context.Context, purchase domain.Purchase, entry domain.LedgerEntry, accountID string) error {
	args := m.Called(ctx, purchase, entry, accountID)
	return args.Error(0)
}

func (m *MockPurchaseRepository) UpdatePurchaseStatus(ctx context.Context, purchaseID string, status domain.PurchaseStatus, statementMonth *domain.CycleKey, userID string, now time.Time) error {
	args := m.Called(ctx, purchaseID, status, statementMonth, userID, now)
	return args.Error(0)
}

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockSnapshotRepository is a mock type for the SnapshotRepositoryFacade interface
type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) FindSnapshot(ctx context.Context, userID string, cycleKey domain.CycleKey) (*domain.MonthCloseSnapshot, error) {
	args := m.Called(ctx, userID, cycleKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthCloseSnapshot), args.Error(1)
}

func (m *MockSnapshotRepository) ListSnapshotsByUser(ctx context.Context, userID string, limit int) ([]domain.MonthCloseSnapshot, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthCloseSnapshot), args.Error(1)
}

func (m *MockSnapshotRepository) SaveSnapshot(ctx context.Context, snapshot domain.MonthCloseSnapshot) (*domain.MonthCloseSnapshot, error) {
	args := m.Called(ctx, snapshot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthCloseSnapshot), args.Error(1)
}

// MockBudgetRepository is a mock type for the BudgetReader interface
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) ListActiveIncomeSources(ctx context.Context, userID string) ([]domain.IncomeSource, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IncomeSource), args.Error(1)
}

func (m *MockBudgetRepository) ListActiveBills(ctx context.Context, userID string) ([]domain.Bill, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

// MockLedgerRepository is a mock type for the LedgerRepositoryFacade interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListEntriesByUser(ctx context.Context, userID string, cycleKey *domain.CycleKey, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, userID, cycleKey, limit, nextToken)
	var entries []domain.LedgerEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.LedgerEntry)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return entries, token, args.Error(2)
}

func (m *MockLedgerRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.LedgerLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerLine), args.Error(1)
}

// MockSnapshotService is a mock type for the SnapshotSvcFacade interface
type MockSnapshotService struct {
	mock.Mock
}

func (m *MockSnapshotService) CloseMonth(ctx context.Context, userID string, cycleKey domain.CycleKey) (*domain.MonthCloseSnapshot, error) {
	args := m.Called(ctx, userID, cycleKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthCloseSnapshot), args.Error(1)
}

func (m *MockSnapshotService) GetSnapshot(ctx context.Context, userID string, cycleKey domain.CycleKey) (*domain.MonthCloseSnapshot, error) {
	args := m.Called(ctx, userID, cycleKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthCloseSnapshot), args.Error(1)
}

func (m *MockSnapshotService) ListSnapshots(ctx context.Context, userID string, limit int) ([]domain.MonthCloseSnapshot, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthCloseSnapshot), args.Error(1)
}
