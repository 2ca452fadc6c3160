package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/centsible_backend/internal/apperrors"
	"github.com/centsible/centsible_backend/internal/core/domain"
	portsrepo "github.com/centsible/centsible_backend/internal/core/ports/repositories"
	portssvc "github.com/centsible/centsible_backend/internal/core/ports/services"
	"github.com/centsible/centsible_backend/internal/middleware"
	"github.com/centsible/centsible_backend/internal/utils/accounting"
)

// snapshotService freezes point-in-time financial summaries at month close.
type snapshotService struct {
	accountRepo  portsrepo.AccountReader
	budgetRepo   portsrepo.BudgetReader
	snapshotRepo portsrepo.SnapshotRepositoryFacade
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(accountRepo portsrepo.AccountReader, budgetRepo portsrepo.BudgetReader, snapshotRepo portsrepo.SnapshotRepositoryFacade) portssvc.SnapshotSvcFacade {
	return &snapshotService{
		accountRepo:  accountRepo,
		budgetRepo:   budgetRepo,
		snapshotRepo: snapshotRepo,
	}
}

var _ portssvc.SnapshotSvcFacade = (*snapshotService)(nil)

// CloseMonth computes and persists the month-close snapshot for (user,
// cycle key). Creation is append-only: a second close for the same key is a
// no-op returning the existing snapshot.
func (s *snapshotService) CloseMonth(ctx context.Context, userID string, cycleKey domain.CycleKey) (*domain.MonthCloseSnapshot, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := domain.ParseCycleKey(cycleKey.String()); err != nil {
		return nil, err
	}

	// Fast path: the month is already closed.
	if existing, err := s.snapshotRepo.FindSnapshot(ctx, userID, cycleKey); err == nil {
		return existing, nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up snapshot: %w", err)
	}

	accounts, err := s.accountRepo.ListAccountsByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to load accounts for month close", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	incomes, err := s.budgetRepo.ListActiveIncomeSources(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load income sources: %w", err)
	}
	bills, err := s.budgetRepo.ListActiveBills(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bills: %w", err)
	}

	snapshot := buildSnapshot(userID, cycleKey, accounts, incomes, bills, time.Now().UTC())

	stored, err := s.snapshotRepo.SaveSnapshot(ctx, snapshot)
	if err != nil {
		logger.Error("Failed to persist month-close snapshot", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}

	logger.Info("Month closed",
		slog.String("cycle_key", cycleKey.String()),
		slog.String("net_worth", stored.NetWorth.String()),
	)
	return stored, nil
}

// buildSnapshot aggregates the frozen financial summary. Pure apart from
// the minted snapshot ID.
func buildSnapshot(userID string, cycleKey domain.CycleKey, accounts []domain.Account, incomes []domain.IncomeSource, bills []domain.Bill, now time.Time) domain.MonthCloseSnapshot {
	liquid := decimal.Zero
	invested := decimal.Zero
	liabilities := decimal.Zero
	cardSpend := decimal.Zero
	cardMinimums := decimal.Zero
	loanPayments := decimal.Zero

	for _, acc := range accounts {
		switch {
		case acc.AccountType == domain.AccountCreditCard:
			liabilities = liabilities.Add(acc.Balance)
			cardSpend = cardSpend.Add(accounting.CardSpendForCycle(acc.RecurringSpend))
			interest := accounting.AccrueCardInterest(acc.Balance, acc.InterestRateAPR)
			cardMinimums = cardMinimums.Add(accounting.CardPayment(acc.Balance, interest, acc.MinPayment))
		case acc.AccountType == domain.AccountLoan:
			liabilities = liabilities.Add(acc.Balance)
			_, payment := accounting.LoanInterestAndPayment(acc.Balance, acc.InterestRateAPR, acc.MinPayment.FixedAmount)
			loanPayments = loanPayments.Add(payment)
		case acc.IsLiquidAsset():
			liquid = liquid.Add(acc.Balance)
		case acc.IsInvestment():
			invested = invested.Add(acc.Balance)
		}
	}

	monthlyIncome := decimal.Zero
	for _, inc := range incomes {
		monthlyIncome = monthlyIncome.Add(inc.Amount.Mul(inc.Schedule.MonthlyFactor()))
	}
	monthlyBills := decimal.Zero
	for _, bill := range bills {
		monthlyBills = monthlyBills.Add(bill.Amount.Mul(bill.Schedule.MonthlyFactor()))
	}

	monthlyIncome = monthlyIncome.Round(2)
	monthlyBills = monthlyBills.Round(2)
	commitments := monthlyBills.Add(cardMinimums).Add(loanPayments)

	totalAssets := liquid.Add(invested)
	netWorth := totalAssets.Sub(liabilities)

	// Runway: months of liquid assets at the current net burn. Unbounded
	// (nil) when income covers commitments.
	var runway *decimal.Decimal
	burn := commitments.Sub(monthlyIncome)
	if burn.GreaterThan(decimal.Zero) {
		months := liquid.Div(burn).Round(2)
		runway = &months
	}

	return domain.MonthCloseSnapshot{
		SnapshotID:          uuid.NewString(),
		UserID:              userID,
		CycleKey:            cycleKey,
		MonthlyIncome:       monthlyIncome,
		MonthlyBills:        monthlyBills,
		MonthlyCardSpend:    cardSpend,
		MonthlyCardMinimums: cardMinimums,
		MonthlyLoanPayments: loanPayments,
		MonthlyCommitments:  commitments,
		LiquidAssets:        liquid,
		InvestmentAssets:    invested,
		TotalAssets:         totalAssets,
		TotalLiabilities:    liabilities,
		NetWorth:            netWorth,
		RunwayMonths:        runway,
		CreatedAt:           now,
	}
}

// GetSnapshot retrieves the snapshot for a cycle key.
func (s *snapshotService) GetSnapshot(ctx context.Context, userID string, cycleKey domain.CycleKey) (*domain.MonthCloseSnapshot, error) {
	snapshot, err := s.snapshotRepo.FindSnapshot(ctx, userID, cycleKey)
	if err != nil {
		return nil, fmt.Errorf("failed to find snapshot for %s: %w", cycleKey, err)
	}
	return snapshot, nil
}

// ListSnapshots retrieves the user's snapshots, newest first.
func (s *snapshotService) ListSnapshots(ctx context.Context, userID string, limit int) ([]domain.MonthCloseSnapshot, error) {
	if limit <= 0 {
		limit = 12
	}
	snapshots, err := s.snapshotRepo.ListSnapshotsByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snapshots, nil
}
