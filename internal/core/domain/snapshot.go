package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthCloseSnapshot is an immutable point-in-time financial summary frozen
// at month close. A new cycle key produces a new row; an existing row is
// never mutated.
type MonthCloseSnapshot struct {
	SnapshotID          string           `json:"snapshotID"`
	UserID              string           `json:"userID"`
	CycleKey            CycleKey         `json:"cycleKey"`
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
	RunwayMonths        *decimal.Decimal `json:"runwayMonths,omitempty"` // nil when burn <= 0 (unbounded)
	CreatedAt           time.Time        `json:"createdAt"`
}
