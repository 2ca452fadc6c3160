package accounting_test

import (
	"testing"

	"github.com/centsible/centsible_backend/internal/core/domain"
	"github.com/centsible/centsible_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestAccrueCardInterest(t *testing.T) {
	testCases := []struct {
		name     string
		balance  decimal.Decimal
		rate     *decimal.Decimal
		expected string
	}{
		{"StandardRate", dec("1000"), decPtr("24"), "20.00"},
		{"RoundsHalfUp", dec("1000.50"), decPtr("19.99"), "16.67"},
		{"NilRate", dec("1000"), nil, "0.00"},
		{"ZeroRate", dec("1000"), decPtr("0"), "0.00"},
		{"NegativeRate", dec("1000"), decPtr("-5"), "0.00"},
		{"ZeroBalance", dec("0"), decPtr("24"), "0.00"},
		{"SmallBalance", dec("0.01"), decPtr("24"), "0.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := accounting.AccrueCardInterest(tc.balance, tc.rate)
			assert.Equal(t, tc.expected, got.StringFixed(2))
		})
	}
}

func TestCardPayment_Fixed(t *testing.T) {
	policy := domain.MinPaymentPolicy{Kind: domain.MinPaymentFixed, FixedAmount: dec("50")}

	testCases := []struct {
		name     string
		balance  decimal.Decimal
		interest decimal.Decimal
		expected string
	}{
		{"UnderOwed", dec("500"), dec("10"), "50.00"},
		{"CappedAtOwed", dec("30"), dec("5"), "35.00"},
		{"NothingOwed", dec("0"), dec("0"), "0.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := accounting.CardPayment(tc.balance, tc.interest, policy)
			assert.Equal(t, tc.expected, got.StringFixed(2))
		})
	}
}

func TestCardPayment_NegativeFixedPaysNothing(t *testing.T) {
	policy := domain.MinPaymentPolicy{Kind: domain.MinPaymentFixed, FixedAmount: dec("-10")}
	got := accounting.CardPayment(dec("500"), dec("10"), policy)
	assert.Equal(t, "0.00", got.StringFixed(2))
}

func TestCardPayment_PercentPlusInterest(t *testing.T) {
	testCases := []struct {
		name     string
		balance  decimal.Decimal
		interest decimal.Decimal
		percent  string
		floor    string
		expected string
	}{
		{"PercentOfBalancePlusInterest", dec("1000"), dec("20"), "2", "0", "40.00"},
		{"FlooredAtFixedAmount", dec("100"), dec("2"), "2", "25", "25.00"},
		{"FloorStillCappedAtOwed", dec("10"), dec("0.20"), "2", "25", "10.20"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			policy := domain.MinPaymentPolicy{
				Kind:        domain.MinPaymentPercentPlusInterest,
				FixedAmount: dec(tc.floor),
				Percent:     dec(tc.percent),
			}
			got := accounting.CardPayment(tc.balance, tc.interest, policy)
			assert.Equal(t, tc.expected, got.StringFixed(2))
		})
	}
}

func TestLoanInterestAndPayment(t *testing.T) {
	testCases := []struct {
		name             string
		balance          decimal.Decimal
		rate             *decimal.Decimal
		minimum          decimal.Decimal
		expectedInterest string
		expectedPayment  string
	}{
		{"StandardLoan", dec("1200"), decPtr("12"), dec("100"), "12.00", "100.00"},
		{"PayoffCappedAtOwed", dec("1200"), decPtr("12"), dec("5000"), "12.00", "1212.00"},
		{"NoMinimumPaysNothing", dec("1200"), decPtr("12"), dec("0"), "12.00", "0.00"},
		{"ZeroBalance", dec("0"), decPtr("12"), dec("100"), "0.00", "0.00"},
		{"InterestFreeLoan", dec("600"), nil, dec("50"), "0.00", "50.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			interest, payment := accounting.LoanInterestAndPayment(tc.balance, tc.rate, tc.minimum)
			assert.Equal(t, tc.expectedInterest, interest.StringFixed(2))
			assert.Equal(t, tc.expectedPayment, payment.StringFixed(2))
		})
	}
}

func TestCardSpendForCycle(t *testing.T) {
	assert.Equal(t, "150.00", accounting.CardSpendForCycle(dec("150")).StringFixed(2))
	assert.Equal(t, "0.00", accounting.CardSpendForCycle(dec("-5")).StringFixed(2))
	assert.Equal(t, "0.00", accounting.CardSpendForCycle(dec("0")).StringFixed(2))
	assert.Equal(t, "50.00", accounting.CardSpendForCycle(dec("49.995")).StringFixed(2))
}
