package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CycleRun is the database representation of a cycle advancement run.
type CycleRun struct {
	RunID           string          `db:"run_id"`
	UserID          string          `db:"user_id"`
	CycleKey        string          `db:"cycle_key"`
	Source          string          `db:"source"`
	Status          string          `db:"status"`
	IdempotencyKey  *string         `db:"idempotency_key"`
	FailureReason   *string         `db:"failure_reason"`
	AccountsUpdated int             `db:"accounts_updated"`
	CardCycles      int             `db:"card_cycles"`
	LoanCycles      int             `db:"loan_cycles"`
	PurchasesPosted int             `db:"purchases_posted"`
	InterestAccrued decimal.Decimal `db:"interest_accrued"`
	PaymentsApplied decimal.Decimal `db:"payments_applied"`
	SpendAdded      decimal.Decimal `db:"spend_added"`
	CreatedAt       time.Time       `db:"created_at"`
}

// AuditLogRecord is the database representation of a cycle audit entry.
type AuditLogRecord struct {
	AuditID         string          `db:"audit_id"`
	UserID          string          `db:"user_id"`
	RunID           string          `db:"run_id"`
	CycleKey        string          `db:"cycle_key"`
	Source          string          `db:"source"`
	AccountsUpdated int             `db:"accounts_updated"`
	CardCycles      int             `db:"card_cycles"`
	LoanCycles      int             `db:"loan_cycles"`
	InterestAccrued decimal.Decimal `db:"interest_accrued"`
	PaymentsApplied decimal.Decimal `db:"payments_applied"`
	SpendAdded      decimal.Decimal `db:"spend_added"`
	CreatedAt       time.Time       `db:"created_at"`
}
