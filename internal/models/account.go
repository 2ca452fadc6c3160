package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the database representation of a financial account.
type Account struct {
	AccountID       string           `db:"account_id"`
	UserID          string           `db:"user_id"`
	Name            string           `db:"name"`
	AccountType     string           `db:"account_type"`
	CurrencyCode    string           `db:"currency_code"`
	Balance         decimal.Decimal  `db:"balance"`
	CreditLimit     *decimal.Decimal `db:"credit_limit"`
	InterestRateAPR *decimal.Decimal `db:"interest_rate_apr"`
	MinPaymentKind  string           `db:"min_payment_kind"`
	MinPaymentFixed decimal.Decimal  `db:"min_payment_fixed"`
	MinPaymentPct   decimal.Decimal  `db:"min_payment_pct"`
	RecurringSpend  decimal.Decimal  `db:"recurring_spend"`
	Cadence         string           `db:"cadence"`
	CustomEvery     int              `db:"custom_every"`
	CustomUnit      string           `db:"custom_unit"`
	LastCycleAt     *time.Time       `db:"last_cycle_at"`
	IsActive        bool             `db:"is_active"`
	AuditFields
}
