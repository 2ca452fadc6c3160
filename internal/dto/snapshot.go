package dto

import (
	"time"

	"github.com/centsible/centsible_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SnapshotResponse defines the data returned for a month-close snapshot.
type SnapshotResponse struct {
	SnapshotID          string           `json:"snapshotID"`
	CycleKey            string           `json:"cycleKey"`
	MonthlyIncome       decimal.Decimal  `json:"monthlyIncome"`
	MonthlyBills        decimal.Decimal  `json:"monthlyBills"`
	MonthlyCardSpend    decimal.Decimal  `json:"monthlyCardSpend"`
	MonthlyCardMinimums decimal.Decimal  `json:"monthlyCardMinimums"`
	MonthlyLoanPayments decimal.Decimal  `json:"monthlyLoanPayments"`
	MonthlyCommitments  decimal.Decimal  `json:"monthlyCommitments"`
	LiquidAssets        decimal.Decimal  `json:"liquidAssets"`
	InvestmentAssets    decimal.Decimal  `json:"investmentAssets"`
	TotalAssets         decimal.Decimal  `json:"totalAssets"`
	TotalLiabilities    decimal.Decimal  `json:"totalLiabilities"`
	NetWorth            decimal.Decimal  `json:"netWorth"`
	RunwayMonths        *decimal.Decimal `json:"runwayMonths,omitempty"`
	CreatedAt           time.Time        `json:"createdAt"`
}

// ToSnapshotResponse converts a domain.MonthCloseSnapshot to its DTO.
func ToSnapshotResponse(s *domain.MonthCloseSnapshot) SnapshotResponse {
	return SnapshotResponse{
		SnapshotID:          s.SnapshotID,
		CycleKey:            s.CycleKey.String(),
		MonthlyIncome:       s.MonthlyIncome,
		MonthlyBills:        s.MonthlyBills,
		MonthlyCardSpend:    s.MonthlyCardSpend,
		MonthlyCardMinimums: s.MonthlyCardMinimums,
		MonthlyLoanPayments: s.MonthlyLoanPayments,
		MonthlyCommitments:  s.MonthlyCommitments,
		LiquidAssets:        s.LiquidAssets,
		InvestmentAssets:    s.InvestmentAssets,
		TotalAssets:         s.TotalAssets,
		TotalLiabilities:    s.TotalLiabilities,
		NetWorth:            s.NetWorth,
		RunwayMonths:        s.RunwayMonths,
		CreatedAt:           s.CreatedAt,
	}
}

// ToSnapshotResponses converts a slice of snapshots to DTOs.
func ToSnapshotResponses(snaps []domain.MonthCloseSnapshot) []SnapshotResponse {
	responses := make([]SnapshotResponse, len(snaps))
	for i := range snaps {
		responses[i] = ToSnapshotResponse(&snaps[i])
	}
	return responses
}
