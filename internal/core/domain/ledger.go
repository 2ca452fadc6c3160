package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies a ledger entry by the financial event it records.
type EntryType string

const (
	EntryPurchase          EntryType = "PURCHASE"
	EntryPurchaseReversal  EntryType = "PURCHASE_REVERSAL"
	EntryCycleCardSpend    EntryType = "CYCLE_CARD_SPEND"
	EntryCycleCardInterest EntryType = "CYCLE_CARD_INTEREST"
	EntryCycleCardPayment  EntryType = "CYCLE_CARD_PAYMENT"
	EntryCycleLoanInterest EntryType = "CYCLE_LOAN_INTEREST"
	EntryCycleLoanPayment  EntryType = "CYCLE_LOAN_PAYMENT"
)

// IsValid reports whether the entry type is one of the closed set.
func (t EntryType) IsValid() bool {
	switch t {
	case EntryPurchase, EntryPurchaseReversal, EntryCycleCardSpend,
		EntryCycleCardInterest, EntryCycleCardPayment,
		EntryCycleLoanInterest, EntryCycleLoanPayment:
		return true
	}
	return false
}

// LineType indicates whether a ledger line is a debit or a credit.
type LineType string

const (
	Debit  LineType = "DEBIT"
	Credit LineType = "CREDIT"
)

// LedgerAccountCode names a symbolic ledger account. These are bookkeeping
// buckets, not user-facing financial accounts.
type LedgerAccountCode string

const (
	CodeCash             LedgerAccountCode = "cash"
	CodeCardLiability    LedgerAccountCode = "card_liability"
	CodeLoanLiability    LedgerAccountCode = "loan_liability"
	CodeInterestExpense  LedgerAccountCode = "interest_expense"
	CodeSpendExpense     LedgerAccountCode = "spend_expense"
	CodePurchasesExpense LedgerAccountCode = "purchases_expense"
)

// LedgerEntry is one immutable financial event. It is never updated or
// deleted; a mistake is corrected by a superseding reversal entry.
type LedgerEntry struct {
	EntryID     string       `json:"entryID"`
	UserID      string       `json:"userID"`
	EntryType   EntryType    `json:"entryType"`
	Description string       `json:"description"`
	OccurredAt  time.Time    `json:"occurredAt"`
	ReferenceID *string      `json:"referenceID,omitempty"` // originating purchase/account
	CycleKey    *CycleKey    `json:"cycleKey,omitempty"`
	Lines       []LedgerLine `json:"lines,omitempty"`
	AuditFields
}

// LedgerLine is one posting belonging to exactly one entry. Amounts are
// always positive; the side is carried by LineType. For every entry the sum
// of debit amounts equals the sum of credit amounts.
type LedgerLine struct {
	LineID      string            `json:"lineID"`
	EntryID     string            `json:"entryID"`
	UserID      string            `json:"userID"`
	LineType    LineType          `json:"lineType"`
	AccountCode LedgerAccountCode `json:"accountCode"`
	Amount      decimal.Decimal   `json:"amount"`
}
