package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/centsible/centsible_backend/internal/apperrors"
	"github.com/centsible/centsible_backend/internal/core/domain"
	portssvc "github.com/centsible/centsible_backend/internal/core/ports/services"
	"github.com/centsible/centsible_backend/internal/core/services"
	"github.com/centsible/centsible_backend/internal/dto"
	"github.com/centsible/centsible_backend/internal/utils/accounting"
)

func TestBuildLedgerEntry_Polarity(t *testing.T) {
	testCases := []struct {
		entryType  domain.EntryType
		debitCode  domain.LedgerAccountCode
		creditCode domain.LedgerAccountCode
	}{
		{domain.EntryPurchase, domain.CodePurchasesExpense, domain.CodeCardLiability},
		{domain.EntryPurchaseReversal, domain.CodeCardLiability, domain.CodePurchasesExpense},
		{domain.EntryCycleCardSpend, domain.CodeSpendExpense, domain.CodeCardLiability},
		{domain.EntryCycleCardInterest, domain.CodeInterestExpense, domain.CodeCardLiability},
		{domain.EntryCycleCardPayment, domain.CodeCardLiability, domain.CodeCash},
		{domain.EntryCycleLoanInterest, domain.CodeInterestExpense, domain.CodeLoanLiability},
		{domain.EntryCycleLoanPayment, domain.CodeLoanLiability, domain.CodeCash},
	}

	now := time.Date(2025, 7, 31, 12, 0, 0, 0, time.UTC)
	for _, tc := range testCases {
		t.Run(string(tc.entryType), func(t *testing.T) {
			entry, err := services.BuildLedgerEntry("user-1", services.PostingIntent{
				EntryType:   tc.entryType,
				Amount:      decimal.RequireFromString("55.25"),
				Description: "test posting",
				OccurredAt:  now,
			}, "user-1", now)
			require.NoError(t, err)

			require.Len(t, entry.Lines, 2)
			assert.Equal(t, domain.Debit, entry.Lines[0].LineType)
			assert.Equal(t, tc.debitCode, entry.Lines[0].AccountCode)
			assert.Equal(t, domain.Credit, entry.Lines[1].LineType)
			assert.Equal(t, tc.creditCode, entry.Lines[1].AccountCode)
			assert.Equal(t, entry.EntryID, entry.Lines[0].EntryID)
			assert.NoError(t, accounting.ValidateEntryBalance(entry.Lines))
		})
	}
}

func TestBuildLedgerEntry_RejectsBadIntents(t *testing.T) {
	now := time.Now().UTC()

	_, err := services.BuildLedgerEntry("user-1", services.PostingIntent{
		EntryType: domain.EntryType("TRANSFER"),
		Amount:    decimal.RequireFromString("10"),
	}, "user-1", now)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = services.BuildLedgerEntry("user-1", services.PostingIntent{
		EntryType: domain.EntryPurchase,
		Amount:    decimal.Zero,
	}, "user-1", now)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

type LedgerServiceTestSuite struct {
	suite.Suite
	ctx            context.Context
	mockLedgerRepo *MockLedgerRepository
	service        portssvc.LedgerSvcFacade

	userID string
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewLedgerService(suite.mockLedgerRepo)
	suite.userID = "user-1"
}

func (suite *LedgerServiceTestSuite) TestGetEntry() {
	entry := &domain.LedgerEntry{EntryID: "entry-1", UserID: suite.userID, EntryType: domain.EntryPurchase}
	suite.mockLedgerRepo.On("FindEntryByID", suite.ctx, "entry-1").Return(entry, nil).Once()

	got, err := suite.service.GetEntry(suite.ctx, suite.userID, "entry-1")
	suite.Require().NoError(err)
	suite.Equal(entry, got)
}

func (suite *LedgerServiceTestSuite) TestGetEntry_HidesForeignEntry() {
	entry := &domain.LedgerEntry{EntryID: "entry-1", UserID: "someone-else"}
	suite.mockLedgerRepo.On("FindEntryByID", suite.ctx, "entry-1").Return(entry, nil).Once()

	_, err := suite.service.GetEntry(suite.ctx, suite.userID, "entry-1")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestListEntries_PassesCycleKeyFilter() {
	key := domain.CycleKey("2025-07")
	entries := []domain.LedgerEntry{{EntryID: "entry-1", UserID: suite.userID}}
	token := "b2s="
	suite.mockLedgerRepo.On("ListEntriesByUser", suite.ctx, suite.userID, &key, 20, (*string)(nil)).
		Return(entries, &token, nil).Once()

	raw := key.String()
	resp, err := suite.service.ListEntries(suite.ctx, suite.userID, dto.ListLedgerEntriesParams{CycleKey: &raw})

	suite.Require().NoError(err)
	suite.Len(resp.Entries, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(token, *resp.NextToken)
}

func (suite *LedgerServiceTestSuite) TestListEntries_RejectsMalformedCycleKey() {
	raw := "Q3-2025"
	_, err := suite.service.ListEntries(suite.ctx, suite.userID, dto.ListLedgerEntriesParams{CycleKey: &raw})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "ListEntriesByUser")
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
