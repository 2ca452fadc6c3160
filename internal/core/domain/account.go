package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies a user-facing financial account. CREDIT_CARD and
// LOAN are the liability variants advanced by the cycle engine; the rest are
// asset accounts used for snapshot aggregation.
type AccountType string

const (
	AccountChecking   AccountType = "CHECKING"
	AccountSavings    AccountType = "SAVINGS"
	AccountCash       AccountType = "CASH"
	AccountInvestment AccountType = "INVESTMENT"
	AccountCreditCard AccountType = "CREDIT_CARD"
	AccountLoan       AccountType = "LOAN"
)

// IsValid reports whether the account type is one of the closed set.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountChecking, AccountSavings, AccountCash, AccountInvestment,
		AccountCreditCard, AccountLoan:
		return true
	}
	return false
}

// MinPaymentKind selects the minimum-payment policy of a liability account.
type MinPaymentKind string

const (
	MinPaymentFixed               MinPaymentKind = "FIXED"
	MinPaymentPercentPlusInterest MinPaymentKind = "PERCENT_PLUS_INTEREST"
)

// MinPaymentPolicy describes how the minimum payment of one cycle is derived.
// For FIXED only FixedAmount is read; PERCENT_PLUS_INTEREST uses Percent of
// the balance plus the cycle's accrued interest, floored at FixedAmount.
type MinPaymentPolicy struct {
	Kind        MinPaymentKind  `json:"kind"`
	FixedAmount decimal.Decimal `json:"fixedAmount"`
	Percent     decimal.Decimal `json:"percent"` // e.g. 2 means 2% of balance
}

// Account represents a financial account owned by a single user.
//
// Liability accounts (cards and loans) carry the cycle-relevant fields:
// InterestRateAPR (annual percentage, nil means 0%), MinPayment,
// RecurringSpend (cards: average monthly spend added each cycle; loans:
// subscription cost folded into commitments) and LastCycleAt. Balance on a
// liability is the amount owed and never goes negative.
type Account struct {
	AccountID       string           `json:"accountID"`
	UserID          string           `json:"userID"`
	Name            string           `json:"name"`
	AccountType     AccountType      `json:"accountType"`
	CurrencyCode    string           `json:"currencyCode"`
	Balance         decimal.Decimal  `json:"balance"`
	CreditLimit     *decimal.Decimal `json:"creditLimit,omitempty"` // cards only
	InterestRateAPR *decimal.Decimal `json:"interestRateAPR,omitempty"`
	MinPayment      MinPaymentPolicy `json:"minPayment"`
	RecurringSpend  decimal.Decimal  `json:"recurringSpend"`
	Schedule        Schedule         `json:"schedule"`
	LastCycleAt     *time.Time       `json:"lastCycleAt,omitempty"`
	IsActive        bool             `json:"isActive"`
	AuditFields
}

// IsLiability reports whether the account is advanced by the cycle engine.
func (a Account) IsLiability() bool {
	return a.AccountType == AccountCreditCard || a.AccountType == AccountLoan
}

// IsLiquidAsset reports whether the account counts toward runway.
func (a Account) IsLiquidAsset() bool {
	switch a.AccountType {
	case AccountChecking, AccountSavings, AccountCash:
		return true
	}
	return false
}

// IsInvestment reports whether the account is an investment asset.
func (a Account) IsInvestment() bool {
	return a.AccountType == AccountInvestment
}
