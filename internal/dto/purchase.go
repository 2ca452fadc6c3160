package dto

import (
	"time"

	"github.com/centsible/centsible_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest records a card purchase for the authenticated user.
type CreatePurchaseRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PurchasedAt *time.Time      `json:"purchasedAt"` // defaults to now
}

// PurchaseResponse defines the data returned for a purchase.
type PurchaseResponse struct {
	PurchaseID     string          `json:"purchaseID"`
	AccountID      string          `json:"accountID"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status"`
	StatementMonth *string         `json:"statementMonth,omitempty"`
	Reversed       bool            `json:"reversed"`
	PurchasedAt    time.Time       `json:"purchasedAt"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToPurchaseResponse converts a domain.Purchase to its DTO.
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	resp := PurchaseResponse{
		PurchaseID:  p.PurchaseID,
		AccountID:   p.AccountID,
		Description: p.Description,
		Amount:      p.Amount,
		Status:      string(p.Status),
		Reversed:    p.Reversed,
		PurchasedAt: p.PurchasedAt,
		CreatedAt:   p.CreatedAt,
	}
	if p.StatementMonth != nil {
		month := p.StatementMonth.String()
		resp.StatementMonth = &month
	}
	return resp
}

// ToPurchaseResponses converts a slice of purchases to DTOs.
func ToPurchaseResponses(purchases []domain.Purchase) []PurchaseResponse {
	responses := make([]PurchaseResponse, len(purchases))
	for i := range purchases {
		responses[i] = ToPurchaseResponse(&purchases[i])
	}
	return responses
}
