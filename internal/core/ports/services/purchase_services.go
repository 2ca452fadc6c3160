package services

import (
	"context"

	"github.com/centsible/centsible_backend/internal/core/domain"
	"github.com/centsible/centsible_backend/internal/dto"
)

// PurchaseSvcFacade tracks purchases through the reconciliation flow.
type PurchaseSvcFacade interface {
	CreatePurchase(ctx context.Context, userID string, req dto.CreatePurchaseRequest) (*domain.Purchase, error)
	GetPurchase(ctx context.Context, userID string, purchaseID string) (*domain.Purchase, error)
	ListPurchases(ctx context.Context, userID string, status *domain.PurchaseStatus, limit int) ([]domain.Purchase, error)
	Reconcile(ctx context.Context, userID string, purchaseID string) (*domain.Purchase, error)
	ReversePurchase(ctx context.Context, userID string, purchaseID string) (*domain.Purchase, error)
}
