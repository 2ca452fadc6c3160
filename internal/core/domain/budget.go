package domain

import "github.com/shopspring/decimal"

// IncomeSource is a recurring income stream. The snapshot recorder
// normalizes its amount to a monthly figure via the schedule.
type IncomeSource struct {
	IncomeID string          `json:"incomeID"`
	UserID   string          `json:"userID"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Schedule Schedule        `json:"schedule"`
	IsActive bool            `json:"isActive"`
	AuditFields
}

// Bill is a recurring obligation counted into monthly commitments.
type Bill struct {
	BillID   string          `json:"billID"`
	UserID   string          `json:"userID"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Schedule Schedule        `json:"schedule"`
	IsActive bool            `json:"isActive"`
	AuditFields
}
