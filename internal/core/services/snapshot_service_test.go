package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/centsible/centsible_backend/internal/apperrors"
	"github.com/centsible/centsible_backend/internal/core/domain"
	portssvc "github.com/centsible/centsible_backend/internal/core/ports/services"
	"github.com/centsible/centsible_backend/internal/core/services"
)

type SnapshotServiceTestSuite struct {
	suite.Suite
	ctx              context.Context
	mockAccountRepo  *MockAccountRepository
	mockBudgetRepo   *MockBudgetRepository
	mockSnapshotRepo *MockSnapshotRepository
	service          portssvc.SnapshotSvcFacade

	userID   string
	cycleKey domain.CycleKey
}

func (suite *SnapshotServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockSnapshotRepo = new(MockSnapshotRepository)
	suite.service = services.NewSnapshotService(suite.mockAccountRepo, suite.mockBudgetRepo, suite.mockSnapshotRepo)
	suite.userID = "user-1"
	suite.cycleKey = domain.CycleKey("2025-07")
}

func (suite *SnapshotServiceTestSuite) expectNoExistingSnapshot() {
	suite.mockSnapshotRepo.On("FindSnapshot", suite.ctx, suite.userID, suite.cycleKey).
		Return(nil, apperrors.ErrNotFound).Once()
}

// SaveSnapshot echoes the computed snapshot back, the way the append-only
// insert does on first close.
func (suite *SnapshotServiceTestSuite) expectSaveEchoesSnapshot() {
	stored := new(domain.MonthCloseSnapshot)
	suite.mockSnapshotRepo.On("SaveSnapshot", suite.ctx, mock.AnythingOfType("domain.MonthCloseSnapshot")).
		Run(func(args mock.Arguments) {
			*stored = args.Get(1).(domain.MonthCloseSnapshot)
		}).
		Return(stored, nil).Once()
}

func (suite *SnapshotServiceTestSuite) TestCloseMonth_ComputesSnapshot() {
	cardAPR := decimal.RequireFromString("24")
	loanAPR := decimal.RequireFromString("12")
	accounts := []domain.Account{
		{AccountID: "chk-1", AccountType: domain.AccountChecking, Balance: decimal.RequireFromString("5000")},
		{AccountID: "inv-1", AccountType: domain.AccountInvestment, Balance: decimal.RequireFromString("10000")},
		{
			AccountID:       "card-1",
			AccountType:     domain.AccountCreditCard,
			Balance:         decimal.RequireFromString("1000"),
			InterestRateAPR: &cardAPR,
			MinPayment: domain.MinPaymentPolicy{
				Kind:        domain.MinPaymentPercentPlusInterest,
				FixedAmount: decimal.RequireFromString("25"),
				Percent:     decimal.RequireFromString("2"),
			},
			RecurringSpend: decimal.RequireFromString("100"),
		},
		{
			AccountID:       "loan-1",
			AccountType:     domain.AccountLoan,
			Balance:         decimal.RequireFromString("1200"),
			InterestRateAPR: &loanAPR,
			MinPayment: domain.MinPaymentPolicy{
				Kind:        domain.MinPaymentFixed,
				FixedAmount: decimal.RequireFromString("100"),
			},
		},
	}
	incomes := []domain.IncomeSource{
		{IncomeID: "inc-1", Amount: decimal.RequireFromString("3000"), Schedule: domain.Schedule{Cadence: domain.CadenceMonthly}},
	}
	bills := []domain.Bill{
		{BillID: "bill-1", Amount: decimal.RequireFromString("500"), Schedule: domain.Schedule{Cadence: domain.CadenceMonthly}},
		{BillID: "bill-2", Amount: decimal.RequireFromString("50"), Schedule: domain.Schedule{Cadence: domain.CadenceWeekly}},
	}

	suite.expectNoExistingSnapshot()
	suite.mockAccountRepo.On("ListAccountsByUser", suite.ctx, suite.userID).Return(accounts, nil).Once()
	suite.mockBudgetRepo.On("ListActiveIncomeSources", suite.ctx, suite.userID).Return(incomes, nil).Once()
	suite.mockBudgetRepo.On("ListActiveBills", suite.ctx, suite.userID).Return(bills, nil).Once()
	suite.expectSaveEchoesSnapshot()

	snapshot, err := suite.service.CloseMonth(suite.ctx, suite.userID, suite.cycleKey)

	suite.Require().NoError(err)
	suite.Require().NotNil(snapshot)
	suite.Equal(suite.cycleKey, snapshot.CycleKey)
	suite.Equal("3000.00", snapshot.MonthlyIncome.StringFixed(2))
	// 500 monthly + 50 weekly at 4.33 weeks per month.
	suite.Equal("716.50", snapshot.MonthlyBills.StringFixed(2))
	suite.Equal("100.00", snapshot.MonthlyCardSpend.StringFixed(2))
	// 2% of 1000 plus 20.00 interest.
	suite.Equal("40.00", snapshot.MonthlyCardMinimums.StringFixed(2))
	suite.Equal("100.00", snapshot.MonthlyLoanPayments.StringFixed(2))
	suite.Equal("856.50", snapshot.MonthlyCommitments.StringFixed(2))
	suite.Equal("5000.00", snapshot.LiquidAssets.StringFixed(2))
	suite.Equal("10000.00", snapshot.InvestmentAssets.StringFixed(2))
	suite.Equal("15000.00", snapshot.TotalAssets.StringFixed(2))
	suite.Equal("2200.00", snapshot.TotalLiabilities.StringFixed(2))
	suite.Equal("12800.00", snapshot.NetWorth.StringFixed(2))
	// Income covers commitments: runway is unbounded.
	suite.Nil(snapshot.RunwayMonths)

	suite.mockSnapshotRepo.AssertExpectations(suite.T())
}

func (suite *SnapshotServiceTestSuite) TestCloseMonth_RunwayUnderNetBurn() {
	accounts := []domain.Account{
		{AccountID: "sav-1", AccountType: domain.AccountSavings, Balance: decimal.RequireFromString("4000")},
	}
	bills := []domain.Bill{
		{BillID: "bill-1", Amount: decimal.RequireFromString("500"), Schedule: domain.Schedule{Cadence: domain.CadenceMonthly}},
	}

	suite.expectNoExistingSnapshot()
	suite.mockAccountRepo.On("ListAccountsByUser", suite.ctx, suite.userID).Return(accounts, nil).Once()
	suite.mockBudgetRepo.On("ListActiveIncomeSources", suite.ctx, suite.userID).Return([]domain.IncomeSource{}, nil).Once()
	suite.mockBudgetRepo.On("ListActiveBills", suite.ctx, suite.userID).Return(bills, nil).Once()
	suite.expectSaveEchoesSnapshot()

	snapshot, err := suite.service.CloseMonth(suite.ctx, suite.userID, suite.cycleKey)

	suite.Require().NoError(err)
	suite.Require().NotNil(snapshot.RunwayMonths)
	suite.Equal("8.00", snapshot.RunwayMonths.StringFixed(2))
	suite.Equal("4000.00", snapshot.NetWorth.StringFixed(2))
}

func (suite *SnapshotServiceTestSuite) TestCloseMonth_ExistingSnapshotIsReturned() {
	existing := &domain.MonthCloseSnapshot{
		SnapshotID: "snap-1",
		UserID:     suite.userID,
		CycleKey:   suite.cycleKey,
		NetWorth:   decimal.RequireFromString("12800"),
	}
	suite.mockSnapshotRepo.On("FindSnapshot", suite.ctx, suite.userID, suite.cycleKey).
		Return(existing, nil).Once()

	snapshot, err := suite.service.CloseMonth(suite.ctx, suite.userID, suite.cycleKey)

	suite.Require().NoError(err)
	suite.Equal(existing, snapshot)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "ListAccountsByUser")
	suite.mockSnapshotRepo.AssertNotCalled(suite.T(), "SaveSnapshot")
}

func (suite *SnapshotServiceTestSuite) TestCloseMonth_MalformedCycleKey() {
	_, err := suite.service.CloseMonth(suite.ctx, suite.userID, domain.CycleKey("2025/07"))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SnapshotServiceTestSuite) TestListSnapshots_AppliesDefaultLimit() {
	suite.mockSnapshotRepo.On("ListSnapshotsByUser", suite.ctx, suite.userID, 12).
		Return([]domain.MonthCloseSnapshot{}, nil).Once()

	_, err := suite.service.ListSnapshots(suite.ctx, suite.userID, 0)
	suite.Require().NoError(err)
	suite.mockSnapshotRepo.AssertExpectations(suite.T())
}

func TestSnapshotServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SnapshotServiceTestSuite))
}
