package mapping

import (
	"github.com/centsible/centsible_backend/internal/core/domain"
	"github.com/centsible/centsible_backend/internal/models"
)

// ToModelPurchase converts a domain Purchase to a model Purchase
func ToModelPurchase(d domain.Purchase) models.Purchase {
	var statementMonth *string
	if d.StatementMonth != nil {
		s := string(*d.StatementMonth)
		statementMonth = &s
	}
	return models.Purchase{
		PurchaseID:     d.PurchaseID,
		UserID:         d.UserID,
		AccountID:      d.AccountID,
		Description:    d.Description,
		Amount:         d.Amount,
		Status:         string(d.Status),
		StatementMonth: statementMonth,
		Reversed:       d.Reversed,
		PurchasedAt:    d.PurchasedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchase converts a model Purchase to a domain Purchase
func ToDomainPurchase(m models.Purchase) domain.Purchase {
	var statementMonth *domain.CycleKey
	if m.StatementMonth != nil {
		k := domain.CycleKey(*m.StatementMonth)
		statementMonth = &k
	}
	return domain.Purchase{
		PurchaseID:     m.PurchaseID,
		UserID:         m.UserID,
		AccountID:      m.AccountID,
		Description:    m.Description,
		Amount:         m.Amount,
		Status:         domain.PurchaseStatus(m.Status),
		StatementMonth: statementMonth,
		Reversed:       m.Reversed,
		PurchasedAt:    m.PurchasedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPurchaseSlice converts a slice of model Purchases to a slice of domain Purchases
func ToDomainPurchaseSlice(ms []models.Purchase) []domain.Purchase {
	ds := make([]domain.Purchase, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPurchase(m)
	}
	return ds
}
