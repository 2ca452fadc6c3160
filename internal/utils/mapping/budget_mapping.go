package mapping

import (
	"github.com/centsible/centsible_backend/internal/core/domain"
	"github.com/centsible/centsible_backend/internal/models"
)

// ToDomainIncomeSource converts a model IncomeSource to a domain IncomeSource
func ToDomainIncomeSource(m models.IncomeSource) domain.IncomeSource {
	return domain.IncomeSource{
		IncomeID: m.IncomeID,
		UserID:   m.UserID,
		Name:     m.Name,
		Amount:   m.Amount,
		Schedule: domain.Schedule{
			Cadence:     domain.Cadence(m.Cadence),
			CustomEvery: m.CustomEvery,
			CustomUnit:  domain.IntervalUnit(m.CustomUnit),
		},
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainIncomeSourceSlice converts a slice of model IncomeSources to a slice of domain IncomeSources
func ToDomainIncomeSourceSlice(ms []models.IncomeSource) []domain.IncomeSource {
	ds := make([]domain.IncomeSource, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainIncomeSource(m)
	}
	return ds
}

// ToDomainBill converts a model Bill to a domain Bill
func ToDomainBill(m models.Bill) domain.Bill {
	return domain.Bill{
		BillID: m.BillID,
		UserID: m.UserID,
		Name:   m.Name,
		Amount: m.Amount,
		Schedule: domain.Schedule{
			Cadence:     domain.Cadence(m.Cadence),
			CustomEvery: m.CustomEvery,
			CustomUnit:  domain.IntervalUnit(m.CustomUnit),
		},
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBillSlice converts a slice of model Bills to a slice of domain Bills
func ToDomainBillSlice(ms []models.Bill) []domain.Bill {
	ds := make([]domain.Bill, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBill(m)
	}
	return ds
}
