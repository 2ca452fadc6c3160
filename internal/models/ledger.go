package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the database representation of an immutable ledger entry.
type LedgerEntry struct {
	EntryID     string    `db:"entry_id"`
	UserID      string    `db:"user_id"`
	EntryType   string    `db:"entry_type"`
	Description string    `db:"description"`
	OccurredAt  time.Time `db:"occurred_at"`
	ReferenceID *string   `db:"reference_id"`
	CycleKey    *string   `db:"cycle_key"`
	AuditFields
}

// LedgerLine is the database representation of one posting line.
type LedgerLine struct {
	LineID      string          `db:"line_id"`
	EntryID     string          `db:"entry_id"`
	UserID      string          `db:"user_id"`
	LineType    string          `db:"line_type"`
	AccountCode string          `db:"account_code"`
	Amount      decimal.Decimal `db:"amount"`
}
