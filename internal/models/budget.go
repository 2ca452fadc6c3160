package models

import "github.com/shopspring/decimal"

// IncomeSource is the database representation of a recurring income stream.
type IncomeSource struct {
	IncomeID    string          `db:"income_id"`
	UserID      string          `db:"user_id"`
	Name        string          `db:"name"`
	Amount      decimal.Decimal `db:"amount"`
	Cadence     string          `db:"cadence"`
	CustomEvery int             `db:"custom_every"`
	CustomUnit  string          `db:"custom_unit"`
	IsActive    bool            `db:"is_active"`
	AuditFields
}

// Bill is the database representation of a recurring obligation.
type Bill struct {
	BillID      string          `db:"bill_id"`
	UserID      string          `db:"user_id"`
	Name        string          `db:"name"`
	Amount      decimal.Decimal `db:"amount"`
	Cadence     string          `db:"cadence"`
	CustomEvery int             `db:"custom_every"`
	CustomUnit  string          `db:"custom_unit"`
	IsActive    bool            `db:"is_active"`
	AuditFields
}
