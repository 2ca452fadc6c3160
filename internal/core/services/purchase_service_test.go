package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/centsible/centsible_backend/internal/apperrors"
	"github.com/centsible/centsible_backend/internal/core/domain"
	portssvc "github.com/centsible/centsible_backend/internal/core/ports/services"
	"github.com/centsible/centsible_backend/internal/core/services"
	"github.com/centsible/centsible_backend/internal/dto"
)

type PurchaseServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	mockPurchRepo   *MockPurchaseRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.PurchaseSvcFacade

	userID string
}

func (suite *PurchaseServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockPurchRepo = new(MockPurchaseRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewPurchaseService(suite.mockPurchRepo, suite.mockAccountRepo)
	suite.userID = "user-1"
}

func (suite *PurchaseServiceTestSuite) activeCard() *domain.Account {
	return &domain.Account{
		AccountID:   "card-1",
		UserID:      suite.userID,
		Name:        "Everyday Card",
		AccountType: domain.AccountCreditCard,
		Balance:     decimal.RequireFromString("250"),
		IsActive:    true,
	}
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_Success() {
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, "card-1").
		Return(suite.activeCard(), nil).Once()

	var savedEntry domain.LedgerEntry
	suite.mockPurchRepo.On("SavePurchaseWithEntry", suite.ctx, mock.AnythingOfType("domain.Purchase"), mock.AnythingOfType("domain.LedgerEntry"), "card-1").
		Run(func(args mock.Arguments) {
			savedEntry = args.Get(2).(domain.LedgerEntry)
		}).
		Return(nil).Once()

	purchase, err := suite.service.CreatePurchase(suite.ctx, suite.userID, dto.CreatePurchaseRequest{
		AccountID:   "card-1",
		Description: "Groceries",
		Amount:      decimal.RequireFromString("42.505"),
	})

	suite.Require().NoError(err)
	suite.Equal(domain.PurchasePending, purchase.Status)
	suite.Equal("42.51", purchase.Amount.StringFixed(2))
	suite.False(purchase.Reversed)
	suite.Nil(purchase.StatementMonth)

	suite.Equal(domain.EntryPurchase, savedEntry.EntryType)
	suite.Require().NotNil(savedEntry.ReferenceID)
	suite.Equal(purchase.PurchaseID, *savedEntry.ReferenceID)
	suite.Require().Len(savedEntry.Lines, 2)
	suite.Equal(domain.CodePurchasesExpense, savedEntry.Lines[0].AccountCode)
	suite.Equal(domain.CodeCardLiability, savedEntry.Lines[1].AccountCode)

	suite.mockPurchRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_HonorsPurchasedAt() {
	purchasedAt := time.Date(2025, 7, 3, 14, 0, 0, 0, time.UTC)
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, "card-1").
		Return(suite.activeCard(), nil).Once()
	suite.mockPurchRepo.On("SavePurchaseWithEntry", suite.ctx, mock.AnythingOfType("domain.Purchase"), mock.AnythingOfType("domain.LedgerEntry"), "card-1").
		Return(nil).Once()

	purchase, err := suite.service.CreatePurchase(suite.ctx, suite.userID, dto.CreatePurchaseRequest{
		AccountID:   "card-1",
		Description: "Flight",
		Amount:      decimal.RequireFromString("310"),
		PurchasedAt: &purchasedAt,
	})

	suite.Require().NoError(err)
	suite.True(purchasedAt.Equal(purchase.PurchasedAt))
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_RejectsNonPositiveAmount() {
	_, err := suite.service.CreatePurchase(suite.ctx, suite.userID, dto.CreatePurchaseRequest{
		AccountID:   "card-1",
		Description: "Refund",
		Amount:      decimal.RequireFromString("-10"),
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByID")
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_HidesForeignAccount() {
	card := suite.activeCard()
	card.UserID = "someone-else"
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, "card-1").Return(card, nil).Once()

	_, err := suite.service.CreatePurchase(suite.ctx, suite.userID, dto.CreatePurchaseRequest{
		AccountID:   "card-1",
		Description: "Groceries",
		Amount:      decimal.RequireFromString("10"),
	})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_RejectsNonCardAccount() {
	checking := suite.activeCard()
	checking.AccountType = domain.AccountChecking
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, "card-1").Return(checking, nil).Once()

	_, err := suite.service.CreatePurchase(suite.ctx, suite.userID, dto.CreatePurchaseRequest{
		AccountID:   "card-1",
		Description: "Groceries",
		Amount:      decimal.RequireFromString("10"),
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_RejectsInactiveAccount() {
	card := suite.activeCard()
	card.IsActive = false
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, "card-1").Return(card, nil).Once()

	_, err := suite.service.CreatePurchase(suite.ctx, suite.userID, dto.CreatePurchaseRequest{
		AccountID:   "card-1",
		Description: "Groceries",
		Amount:      decimal.RequireFromString("10"),
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PurchaseServiceTestSuite) TestReconcile_PostedPurchase() {
	month := domain.CycleKey("2025-07")
	posted := &domain.Purchase{
		PurchaseID:     "purch-1",
		UserID:         suite.userID,
		AccountID:      "card-1",
		Status:         domain.PurchasePosted,
		StatementMonth: &month,
	}
	suite.mockPurchRepo.On("FindPurchaseByID", suite.ctx, "purch-1").Return(posted, nil).Once()
	suite.mockPurchRepo.On("UpdatePurchaseStatus", suite.ctx, "purch-1", domain.PurchaseReconciled, &month, suite.userID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	purchase, err := suite.service.Reconcile(suite.ctx, suite.userID, "purch-1")

	suite.Require().NoError(err)
	suite.Equal(domain.PurchaseReconciled, purchase.Status)
	suite.mockPurchRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestReconcile_RejectsPendingPurchase() {
	pending := &domain.Purchase{
		PurchaseID: "purch-1",
		UserID:     suite.userID,
		Status:     domain.PurchasePending,
	}
	suite.mockPurchRepo.On("FindPurchaseByID", suite.ctx, "purch-1").Return(pending, nil).Once()

	_, err := suite.service.Reconcile(suite.ctx, suite.userID, "purch-1")
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPurchRepo.AssertNotCalled(suite.T(), "UpdatePurchaseStatus")
}

func (suite *PurchaseServiceTestSuite) TestReconcile_RejectsAlreadyReconciled() {
	done := &domain.Purchase{
		PurchaseID: "purch-1",
		UserID:     suite.userID,
		Status:     domain.PurchaseReconciled,
	}
	suite.mockPurchRepo.On("FindPurchaseByID", suite.ctx, "purch-1").Return(done, nil).Once()

	_, err := suite.service.Reconcile(suite.ctx, suite.userID, "purch-1")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PurchaseServiceTestSuite) TestReversePurchase_Success() {
	posted := &domain.Purchase{
		PurchaseID:  "purch-1",
		UserID:      suite.userID,
		AccountID:   "card-1",
		Description: "Groceries",
		Amount:      decimal.RequireFromString("42.50"),
		Status:      domain.PurchasePosted,
	}
	suite.mockPurchRepo.On("FindPurchaseByID", suite.ctx, "purch-1").Return(posted, nil).Once()

	var reversalEntry domain.LedgerEntry
	suite.mockPurchRepo.On("ReversePurchaseWithEntry", suite.ctx, mock.AnythingOfType("domain.Purchase"), mock.AnythingOfType("domain.LedgerEntry"), "card-1").
		Run(func(args mock.Arguments) {
			reversalEntry = args.Get(2).(domain.LedgerEntry)
		}).
		Return(nil).Once()

	purchase, err := suite.service.ReversePurchase(suite.ctx, suite.userID, "purch-1")

	suite.Require().NoError(err)
	suite.True(purchase.Reversed)
	// The reconciliation status is untouched; reversal is a correction, not
	// a transition.
	suite.Equal(domain.PurchasePosted, purchase.Status)

	suite.Equal(domain.EntryPurchaseReversal, reversalEntry.EntryType)
	suite.Require().Len(reversalEntry.Lines, 2)
	suite.Equal(domain.CodeCardLiability, reversalEntry.Lines[0].AccountCode)
	suite.Equal(domain.CodePurchasesExpense, reversalEntry.Lines[1].AccountCode)
	suite.Equal("42.50", reversalEntry.Lines[0].Amount.StringFixed(2))
}

func (suite *PurchaseServiceTestSuite) TestReversePurchase_AlreadyReversed() {
	reversed := &domain.Purchase{
		PurchaseID: "purch-1",
		UserID:     suite.userID,
		Reversed:   true,
	}
	suite.mockPurchRepo.On("FindPurchaseByID", suite.ctx, "purch-1").Return(reversed, nil).Once()

	_, err := suite.service.ReversePurchase(suite.ctx, suite.userID, "purch-1")
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockPurchRepo.AssertNotCalled(suite.T(), "ReversePurchaseWithEntry")
}

func (suite *PurchaseServiceTestSuite) TestReversePurchase_LostRace() {
	posted := &domain.Purchase{
		PurchaseID: "purch-1",
		UserID:     suite.userID,
		AccountID:  "card-1",
		Amount:     decimal.RequireFromString("42.50"),
		Status:     domain.PurchasePosted,
	}
	suite.mockPurchRepo.On("FindPurchaseByID", suite.ctx, "purch-1").Return(posted, nil).Once()
	suite.mockPurchRepo.On("ReversePurchaseWithEntry", suite.ctx, mock.AnythingOfType("domain.Purchase"), mock.AnythingOfType("domain.LedgerEntry"), "card-1").
		Return(apperrors.ErrConflict).Once()

	_, err := suite.service.ReversePurchase(suite.ctx, suite.userID, "purch-1")
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *PurchaseServiceTestSuite) TestGetPurchase_HidesForeignPurchase() {
	foreign := &domain.Purchase{PurchaseID: "purch-1", UserID: "someone-else"}
	suite.mockPurchRepo.On("FindPurchaseByID", suite.ctx, "purch-1").Return(foreign, nil).Once()

	_, err := suite.service.GetPurchase(suite.ctx, suite.userID, "purch-1")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PurchaseServiceTestSuite) TestListPurchases_AppliesDefaultLimit() {
	status := domain.PurchasePending
	suite.mockPurchRepo.On("ListPurchasesByUser", suite.ctx, suite.userID, &status, 50).
		Return([]domain.Purchase{}, nil).Once()

	_, err := suite.service.ListPurchases(suite.ctx, suite.userID, &status, 0)
	suite.Require().NoError(err)
	suite.mockPurchRepo.AssertExpectations(suite.T())
}

func TestPurchaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseServiceTestSuite))
}
