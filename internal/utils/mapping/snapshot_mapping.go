package mapping

import (
	"github.com/centsible/centsible_backend/internal/core/domain"
	"github.com/centsible/centsible_backend/internal/models"
)

// ToModelSnapshot converts a domain MonthCloseSnapshot to a model MonthCloseSnapshot
func ToModelSnapshot(d domain.MonthCloseSnapshot) models.MonthCloseSnapshot {
	return models.MonthCloseSnapshot{
		SnapshotID:          d.SnapshotID,
		UserID:              d.UserID,
		CycleKey:            string(d.CycleKey),
		MonthlyIncome:       d.MonthlyIncome,
		MonthlyBills:        d.MonthlyBills,
		MonthlyCardSpend:    d.MonthlyCardSpend,
		MonthlyCardMinimums: d.MonthlyCardMinimums,
		MonthlyLoanPayments: d.MonthlyLoanPayments,
		MonthlyCommitments:  d.MonthlyCommitments,
		LiquidAssets:        d.LiquidAssets,
		InvestmentAssets:    d.InvestmentAssets,
		TotalAssets:         d.TotalAssets,
		TotalLiabilities:    d.TotalLiabilities,
		NetWorth:            d.NetWorth,
		RunwayMonths:        d.RunwayMonths,
		CreatedAt:           d.CreatedAt,
	}
}

// ToDomainSnapshot converts a model MonthCloseSnapshot to a domain MonthCloseSnapshot
func ToDomainSnapshot(m models.MonthCloseSnapshot) domain.MonthCloseSnapshot {
	return domain.MonthCloseSnapshot{
		SnapshotID:          m.SnapshotID,
		UserID:              m.UserID,
		CycleKey:            domain.CycleKey(m.CycleKey),
		MonthlyIncome:       m.MonthlyIncome,
		MonthlyBills:        m.MonthlyBills,
		MonthlyCardSpend:    m.MonthlyCardSpend,
		MonthlyCardMinimums: m.MonthlyCardMinimums,
		MonthlyLoanPayments: m.MonthlyLoanPayments,
		MonthlyCommitments:  m.MonthlyCommitments,
		LiquidAssets:        m.LiquidAssets,
		InvestmentAssets:    m.InvestmentAssets,
		TotalAssets:         m.TotalAssets,
		TotalLiabilities:    m.TotalLiabilities,
		NetWorth:            m.NetWorth,
		RunwayMonths:        m.RunwayMonths,
		CreatedAt:           m.CreatedAt,
	}
}

// ToDomainSnapshotSlice converts a slice of model MonthCloseSnapshots to a slice of domain MonthCloseSnapshots
func ToDomainSnapshotSlice(ms []models.MonthCloseSnapshot) []domain.MonthCloseSnapshot {
	ds := make([]domain.MonthCloseSnapshot, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSnapshot(m)
	}
	return ds
}
