package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/centsible_backend/internal/apperrors"
	"github.com/centsible/centsible_backend/internal/core/domain"
	portsrepo "github.com/centsible/centsible_backend/internal/core/ports/repositories"
	portssvc "github.com/centsible/centsible_backend/internal/core/ports/services"
	"github.com/centsible/centsible_backend/internal/dto"
	"github.com/centsible/centsible_backend/internal/middleware"
)

// accountService manages the financial account store. Between cycles the
// engine only reads accounts; balances of liability accounts are mutated
// exclusively by the cycle coordinator.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount validates and persists a new account.
func (s *accountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}
	if req.Balance.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: balance must not be negative", apperrors.ErrValidation)
	}

	cadence := req.Cadence
	if cadence == "" {
		cadence = domain.CadenceMonthly
	}
	if !cadence.IsValid() {
		return nil, fmt.Errorf("%w: unknown cadence %q", apperrors.ErrValidation, cadence)
	}
	if cadence == domain.CadenceCustom && req.CustomEvery <= 0 {
		return nil, fmt.Errorf("%w: custom cadence requires a positive interval", apperrors.ErrValidation)
	}

	minPayment := domain.MinPaymentPolicy{Kind: domain.MinPaymentFixed, FixedAmount: decimal.Zero, Percent: decimal.Zero}
	if req.MinPaymentKind != nil {
		minPayment.Kind = domain.MinPaymentKind(*req.MinPaymentKind)
	}
	if req.MinPaymentFixed != nil {
		if req.MinPaymentFixed.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: minimum payment must not be negative", apperrors.ErrValidation)
		}
		minPayment.FixedAmount = *req.MinPaymentFixed
	}
	if req.MinPaymentPct != nil {
		if req.MinPaymentPct.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: minimum payment percent must not be negative", apperrors.ErrValidation)
		}
		minPayment.Percent = *req.MinPaymentPct
	}

	recurringSpend := decimal.Zero
	if req.RecurringSpend != nil {
		recurringSpend = *req.RecurringSpend
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		UserID:          userID,
		Name:            req.Name,
		AccountType:     req.AccountType,
		CurrencyCode:    req.CurrencyCode,
		Balance:         req.Balance.Round(2),
		CreditLimit:     req.CreditLimit,
		InterestRateAPR: req.InterestRateAPR,
		MinPayment:      minPayment,
		RecurringSpend:  recurringSpend,
		Schedule: domain.Schedule{
			Cadence:     cadence,
			CustomEvery: req.CustomEvery,
			CustomUnit:  req.CustomUnit,
		},
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

// GetAccount retrieves one account owned by the user.
func (s *accountService) GetAccount(ctx context.Context, userID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	if account.UserID != userID {
		// Obscure existence across owners
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

// ListAccounts retrieves every active account owned by the user.
func (s *accountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccountsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
