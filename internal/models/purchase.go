package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is the database representation of a card purchase.
type Purchase struct {
	PurchaseID     string          `db:"purchase_id"`
	UserID         string          `db:"user_id"`
	AccountID      string          `db:"account_id"`
	Description    string          `db:"description"`
	Amount         decimal.Decimal `db:"amount"`
	Status         string          `db:"status"`
	StatementMonth *string         `db:"statement_month"`
	Reversed       bool            `db:"reversed"`
	PurchasedAt    time.Time       `db:"purchased_at"`
	AuditFields
}
