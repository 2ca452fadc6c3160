package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthCloseSnapshot is the database representation of a month-close summary.
type MonthCloseSnapshot struct {
	SnapshotID          string           `db:"snapshot_id"`
	UserID              string           `db:"user_id"`
	CycleKey            string           `db:"cycle_key"`
	MonthlyIncome       decimal.Decimal  `db:"monthly_income"`
	MonthlyBills        decimal.Decimal  `db:"monthly_bills"`
	MonthlyCardSpend    decimal.Decimal  `db:"monthly_card_spend"`
	MonthlyCardMinimums decimal.Decimal  `db:"monthly_card_minimums"`
	MonthlyLoanPayments decimal.Decimal  `db:"monthly_loan_payments"`
	MonthlyCommitments  decimal.Decimal  `db:"monthly_commitments"`
	LiquidAssets        decimal.Decimal  `db:"liquid_assets"`
	InvestmentAssets    decimal.Decimal  `db:"investment_assets"`
	TotalAssets         decimal.Decimal  `db:"total_assets"`
	TotalLiabilities    decimal.Decimal  `db:"total_liabilities"`
	NetWorth            decimal.Decimal  `db:"net_worth"`
	RunwayMonths        *decimal.Decimal `db:"runway_months"`
	CreatedAt           time.Time        `db:"created_at"`
}
