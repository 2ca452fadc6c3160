package accounting

import (
	"github.com/centsible/centsible_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Cycle math. Pure and deterministic: re-running the same inputs during a
// retry must stage identical postings, so nothing here reads clocks, IDs or
// randomness. All results are rounded to the currency minor unit (2 places)
// and are never negative.

var monthsPerYear = decimal.NewFromInt(12)
var hundred = decimal.NewFromInt(100)

// round2 rounds half-up to two decimal places.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// AccrueCardInterest computes one month of interest on a card balance at the
// given annual percentage rate. A nil or non-positive rate accrues nothing.
func AccrueCardInterest(balance decimal.Decimal, annualRatePct *decimal.Decimal) decimal.Decimal {
	if annualRatePct == nil || annualRatePct.LessThanOrEqual(decimal.Zero) || balance.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return round2(balance.Mul(*annualRatePct).Div(hundred).Div(monthsPerYear))
}

// CardPayment computes the payment applied to a card for one cycle, given
// the pre-cycle balance and the interest accrued this cycle. The payment is
// always capped at what is owed (balance plus this cycle's interest).
func CardPayment(balance decimal.Decimal, interest decimal.Decimal, policy domain.MinPaymentPolicy) decimal.Decimal {
	owed := balance.Add(interest)
	if owed.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	var payment decimal.Decimal
	switch policy.Kind {
	case domain.MinPaymentPercentPlusInterest:
		percentPart := round2(balance.Mul(policy.Percent).Div(hundred))
		payment = percentPart.Add(interest)
		if payment.LessThan(policy.FixedAmount) {
			payment = policy.FixedAmount
		}
	default: // FIXED
		payment = policy.FixedAmount
	}

	if payment.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if payment.GreaterThan(owed) {
		return owed
	}
	return round2(payment)
}

// LoanInterestAndPayment computes one cycle of loan interest and the payment
// applied against it. The payment never exceeds the outstanding balance plus
// the interest just accrued.
func LoanInterestAndPayment(balance decimal.Decimal, annualRatePct *decimal.Decimal, minimumPayment decimal.Decimal) (interest, payment decimal.Decimal) {
	interest = AccrueCardInterest(balance, annualRatePct)
	owed := balance.Add(interest)
	if owed.LessThanOrEqual(decimal.Zero) || minimumPayment.LessThanOrEqual(decimal.Zero) {
		return interest, decimal.Zero
	}
	if minimumPayment.GreaterThan(owed) {
		return interest, owed
	}
	return interest, round2(minimumPayment)
}

// CardSpendForCycle returns the flat recurring charge representing a card's
// average monthly spend. Negative configuration is treated as zero.
func CardSpendForCycle(spendPerMonth decimal.Decimal) decimal.Decimal {
	if spendPerMonth.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return round2(spendPerMonth)
}
