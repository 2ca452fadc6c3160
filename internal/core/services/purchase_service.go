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
	"github.com/centsible/centsible_backend/internal/dto"
	"github.com/centsible/centsible_backend/internal/middleware"
)

// purchaseService tracks card purchases through the reconciliation flow:
// PENDING -> POSTED -> RECONCILED, forward-only.
type purchaseService struct {
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	accountRepo  portsrepo.AccountReader
}

// NewPurchaseService creates a new PurchaseService.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.PurchaseSvcFacade {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		accountRepo:  accountRepo,
	}
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

// CreatePurchase records a purchase on a card, writing the purchase row, a
// balanced PURCHASE ledger entry and the card balance bump in one
// transaction.
func (s *purchaseService) CreatePurchase(ctx context.Context, userID string, req dto.CreatePurchaseRequest) (*domain.Purchase, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: purchase amount must be positive", apperrors.ErrValidation)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", req.AccountID, err)
	}
	if account.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	if account.AccountType != domain.AccountCreditCard {
		return nil, fmt.Errorf("%w: purchases can only be recorded on credit cards", apperrors.ErrValidation)
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, req.AccountID)
	}

	now := time.Now().UTC()
	purchasedAt := now
	if req.PurchasedAt != nil {
		purchasedAt = req.PurchasedAt.UTC()
	}

	purchaseID := uuid.NewString()
	purchase := domain.Purchase{
		PurchaseID:  purchaseID,
		UserID:      userID,
		AccountID:   req.AccountID,
		Description: req.Description,
		Amount:      req.Amount.Round(2),
		Status:      domain.PurchasePending,
		PurchasedAt: purchasedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	entry, err := BuildLedgerEntry(userID, PostingIntent{
		EntryType:   domain.EntryPurchase,
		Amount:      purchase.Amount,
		Description: fmt.Sprintf("Purchase: %s", req.Description),
		ReferenceID: &purchaseID,
		OccurredAt:  purchasedAt,
	}, userID, now)
	if err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.SavePurchaseWithEntry(ctx, purchase, entry, account.AccountID); err != nil {
		logger.Error("Failed to save purchase", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save purchase: %w", err)
	}

	logger.Info("Purchase recorded", slog.String("purchase_id", purchaseID), slog.String("account_id", account.AccountID))
	return &purchase, nil
}

// GetPurchase retrieves one purchase owned by the user.
func (s *purchaseService) GetPurchase(ctx context.Context, userID string, purchaseID string) (*domain.Purchase, error) {
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find purchase %s: %w", purchaseID, err)
	}
	if purchase.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return purchase, nil
}

// ListPurchases retrieves the user's purchases, optionally by status.
func (s *purchaseService) ListPurchases(ctx context.Context, userID string, status *domain.PurchaseStatus, limit int) ([]domain.Purchase, error) {
	if limit <= 0 {
		limit = 50
	}
	purchases, err := s.purchaseRepo.ListPurchasesByUser(ctx, userID, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return purchases, nil
}

// Reconcile confirms a posted purchase. Only the forward step
// POSTED -> RECONCILED is allowed; anything else is rejected.
func (s *purchaseService) Reconcile(ctx context.Context, userID string, purchaseID string) (*domain.Purchase, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	purchase, err := s.GetPurchase(ctx, userID, purchaseID)
	if err != nil {
		return nil, err
	}

	if !purchase.Status.CanTransitionTo(domain.PurchaseReconciled) {
		return nil, fmt.Errorf("%w: cannot reconcile purchase in status %s", apperrors.ErrValidation, purchase.Status)
	}

	now := time.Now().UTC()
	if err := s.purchaseRepo.UpdatePurchaseStatus(ctx, purchaseID, domain.PurchaseReconciled, purchase.StatementMonth, userID, now); err != nil {
		logger.Error("Failed to reconcile purchase", slog.String("error", err.Error()), slog.String("purchase_id", purchaseID))
		return nil, fmt.Errorf("failed to reconcile purchase: %w", err)
	}

	purchase.Status = domain.PurchaseReconciled
	purchase.LastUpdatedAt = now
	purchase.LastUpdatedBy = userID
	logger.Info("Purchase reconciled", slog.String("purchase_id", purchaseID))
	return purchase, nil
}

// ReversePurchase corrects a purchase by writing a superseding
// PURCHASE_REVERSAL entry and restoring the card balance. The original
// entry and the purchase's reconciliation status are left untouched; the
// correction is an audited override outside the normal flow.
func (s *purchaseService) ReversePurchase(ctx context.Context, userID string, purchaseID string) (*domain.Purchase, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	purchase, err := s.GetPurchase(ctx, userID, purchaseID)
	if err != nil {
		return nil, err
	}
	if purchase.Reversed {
		return nil, fmt.Errorf("%w: purchase %s is already reversed", apperrors.ErrConflict, purchaseID)
	}

	now := time.Now().UTC()
	entry, err := BuildLedgerEntry(userID, PostingIntent{
		EntryType:   domain.EntryPurchaseReversal,
		Amount:      purchase.Amount,
		Description: fmt.Sprintf("Reversal of purchase: %s", purchase.Description),
		ReferenceID: &purchase.PurchaseID,
		OccurredAt:  now,
	}, userID, now)
	if err != nil {
		return nil, err
	}

	purchase.Reversed = true
	purchase.LastUpdatedAt = now
	purchase.LastUpdatedBy = userID

	if err := s.purchaseRepo.ReversePurchaseWithEntry(ctx, *purchase, entry, purchase.AccountID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: purchase %s was reversed concurrently", apperrors.ErrConflict, purchaseID)
		}
		logger.Error("Failed to reverse purchase", slog.String("error", err.Error()), slog.String("purchase_id", purchaseID))
		return nil, fmt.Errorf("failed to reverse purchase: %w", err)
	}

	logger.Info("Purchase reversed", slog.String("purchase_id", purchaseID))
	return purchase, nil
}
