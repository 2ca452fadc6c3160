package dto

import (
	"time"

	"github.com/centsible/centsible_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name            string              `json:"name" binding:"required"`
	AccountType     domain.AccountType  `json:"accountType" binding:"required,oneof=CHECKING SAVINGS CASH INVESTMENT CREDIT_CARD LOAN"`
	CurrencyCode    string              `json:"currencyCode" binding:"required,len=3"`
	Balance         decimal.Decimal     `json:"balance"`
	CreditLimit     *decimal.Decimal    `json:"creditLimit"`     // cards only
	InterestRateAPR *decimal.Decimal    `json:"interestRateAPR"` // annual percentage
	MinPaymentKind  *string             `json:"minPaymentKind" binding:"omitempty,oneof=FIXED PERCENT_PLUS_INTEREST"`
	MinPaymentFixed *decimal.Decimal    `json:"minPaymentFixed"`
	MinPaymentPct   *decimal.Decimal    `json:"minPaymentPercent"`
	RecurringSpend  *decimal.Decimal    `json:"recurringSpend"`
	Cadence         domain.Cadence      `json:"cadence" binding:"omitempty,oneof=WEEKLY BIWEEKLY MONTHLY QUARTERLY YEARLY CUSTOM ONE_TIME"`
	CustomEvery     int                 `json:"customEvery"`
	CustomUnit      domain.IntervalUnit `json:"customUnit" binding:"omitempty,oneof=DAY WEEK MONTH YEAR"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string                  `json:"accountID"`
	Name            string                  `json:"name"`
	AccountType     domain.AccountType      `json:"accountType"`
	CurrencyCode    string                  `json:"currencyCode"`
	Balance         decimal.Decimal         `json:"balance"`
	CreditLimit     *decimal.Decimal        `json:"creditLimit,omitempty"`
	InterestRateAPR *decimal.Decimal        `json:"interestRateAPR,omitempty"`
	MinPayment      domain.MinPaymentPolicy `json:"minPayment"`
	RecurringSpend  decimal.Decimal         `json:"recurringSpend"`
	Cadence         domain.Cadence          `json:"cadence"`
	LastCycleAt     *time.Time              `json:"lastCycleAt,omitempty"`
	IsActive        bool                    `json:"isActive"`
	CreatedAt       time.Time               `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		Name:            acc.Name,
		AccountType:     acc.AccountType,
		CurrencyCode:    acc.CurrencyCode,
		Balance:         acc.Balance,
		CreditLimit:     acc.CreditLimit,
		InterestRateAPR: acc.InterestRateAPR,
		MinPayment:      acc.MinPayment,
		RecurringSpend:  acc.RecurringSpend,
		Cadence:         acc.Schedule.Cadence,
		LastCycleAt:     acc.LastCycleAt,
		IsActive:        acc.IsActive,
		CreatedAt:       acc.CreatedAt,
	}
}

// ToAccountResponses converts a slice of domain accounts to DTOs.
func ToAccountResponses(accs []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accs))
	for i := range accs {
		responses[i] = ToAccountResponse(&accs[i])
	}
	return responses
}
