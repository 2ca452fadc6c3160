package mapping

import (
	"github.com/centsible/centsible_backend/internal/core/domain"
	"github.com/centsible/centsible_backend/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:       d.AccountID,
		UserID:          d.UserID,
		Name:            d.Name,
		AccountType:     string(d.AccountType),
		CurrencyCode:    d.CurrencyCode,
		Balance:         d.Balance,
		CreditLimit:     d.CreditLimit,
		InterestRateAPR: d.InterestRateAPR,
		MinPaymentKind:  string(d.MinPayment.Kind),
		MinPaymentFixed: d.MinPayment.FixedAmount,
		MinPaymentPct:   d.MinPayment.Percent,
		RecurringSpend:  d.RecurringSpend,
		Cadence:         string(d.Schedule.Cadence),
		CustomEvery:     d.Schedule.CustomEvery,
		CustomUnit:      string(d.Schedule.CustomUnit),
		LastCycleAt:     d.LastCycleAt,
		IsActive:        d.IsActive,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		UserID:          m.UserID,
		Name:            m.Name,
		AccountType:     domain.AccountType(m.AccountType),
		CurrencyCode:    m.CurrencyCode,
		Balance:         m.Balance,
		CreditLimit:     m.CreditLimit,
		InterestRateAPR: m.InterestRateAPR,
		MinPayment: domain.MinPaymentPolicy{
			Kind:        domain.MinPaymentKind(m.MinPaymentKind),
			FixedAmount: m.MinPaymentFixed,
			Percent:     m.MinPaymentPct,
		},
		RecurringSpend: m.RecurringSpend,
		Schedule: domain.Schedule{
			Cadence:     domain.Cadence(m.Cadence),
			CustomEvery: m.CustomEvery,
			CustomUnit:  domain.IntervalUnit(m.CustomUnit),
		},
		LastCycleAt: m.LastCycleAt,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
