package accounting_test

import (
	"testing"

	"github.com/centsible/centsible_backend/internal/core/domain"
	"github.com/centsible/centsible_backend/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSideSign(t *testing.T) {
	testCases := []struct {
		name     string
		lineType domain.LineType
		code     domain.LedgerAccountCode
		expected string
	}{
		{"DebitIncreasesCash", domain.Debit, domain.CodeCash, "1"},
		{"CreditDecreasesCash", domain.Credit, domain.CodeCash, "-1"},
		{"DebitIncreasesExpense", domain.Debit, domain.CodeInterestExpense, "1"},
		{"DebitDecreasesCardLiability", domain.Debit, domain.CodeCardLiability, "-1"},
		{"CreditIncreasesCardLiability", domain.Credit, domain.CodeCardLiability, "1"},
		{"CreditIncreasesLoanLiability", domain.Credit, domain.CodeLoanLiability, "1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sign, err := accounting.SideSign(tc.lineType, tc.code)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, sign.String())
		})
	}
}

func TestSideSign_UnknownCode(t *testing.T) {
	_, err := accounting.SideSign(domain.Debit, domain.LedgerAccountCode("goodwill"))
	assert.Error(t, err)
}

func TestValidateEntryBalance(t *testing.T) {
	line := func(lt domain.LineType, code domain.LedgerAccountCode, amount string) domain.LedgerLine {
		return domain.LedgerLine{LineType: lt, AccountCode: code, Amount: dec(amount)}
	}

	t.Run("BalancedPair", func(t *testing.T) {
		err := accounting.ValidateEntryBalance([]domain.LedgerLine{
			line(domain.Debit, domain.CodePurchasesExpense, "42.50"),
			line(domain.Credit, domain.CodeCardLiability, "42.50"),
		})
		assert.NoError(t, err)
	})

	t.Run("BalancedSplit", func(t *testing.T) {
		err := accounting.ValidateEntryBalance([]domain.LedgerLine{
			line(domain.Debit, domain.CodeInterestExpense, "10.00"),
			line(domain.Debit, domain.CodeSpendExpense, "90.00"),
			line(domain.Credit, domain.CodeCardLiability, "100.00"),
		})
		assert.NoError(t, err)
	})

	t.Run("Imbalanced", func(t *testing.T) {
		err := accounting.ValidateEntryBalance([]domain.LedgerLine{
			line(domain.Debit, domain.CodePurchasesExpense, "42.50"),
			line(domain.Credit, domain.CodeCardLiability, "42.00"),
		})
		assert.ErrorContains(t, err, "do not balance")
	})

	t.Run("SingleLine", func(t *testing.T) {
		err := accounting.ValidateEntryBalance([]domain.LedgerLine{
			line(domain.Debit, domain.CodeCash, "10.00"),
		})
		assert.ErrorContains(t, err, "at least two lines")
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		err := accounting.ValidateEntryBalance([]domain.LedgerLine{
			line(domain.Debit, domain.CodeCash, "0"),
			line(domain.Credit, domain.CodeCardLiability, "0"),
		})
		assert.ErrorContains(t, err, "must be positive")
	})

	t.Run("UnknownLineType", func(t *testing.T) {
		err := accounting.ValidateEntryBalance([]domain.LedgerLine{
			{LineType: domain.LineType("TRANSFER"), AccountCode: domain.CodeCash, Amount: dec("10")},
			line(domain.Credit, domain.CodeCardLiability, "10"),
		})
		assert.ErrorContains(t, err, "unknown line type")
	})
}
