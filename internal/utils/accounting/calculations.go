package accounting

import (
	"fmt"

	"github.com/centsible/centsible_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SideSign returns +1 or -1 for the effect of a line on a symbolic ledger
// account, following standard double-entry polarity:
// DEBIT increases asset/expense accounts, CREDIT increases liability accounts.
func SideSign(lineType domain.LineType, code domain.LedgerAccountCode) (decimal.Decimal, error) {
	isDebit := lineType == domain.Debit
	switch code {
	case domain.CodeCash, domain.CodeInterestExpense, domain.CodeSpendExpense, domain.CodePurchasesExpense:
		if isDebit {
			return decimal.NewFromInt(1), nil
		}
		return decimal.NewFromInt(-1), nil
	case domain.CodeCardLiability, domain.CodeLoanLiability:
		if isDebit {
			return decimal.NewFromInt(-1), nil
		}
		return decimal.NewFromInt(1), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown ledger account code %q", code)
	}
}

// ValidateEntryBalance checks the double-entry invariant for one entry's
// lines: at least two lines, all amounts positive, and the debit sum equal
// to the credit sum.
func ValidateEntryBalance(lines []domain.LedgerLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("ledger entry must have at least two lines, got %d", len(lines))
	}

	debits := decimal.Zero
	credits := decimal.Zero
	for _, line := range lines {
		if line.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("ledger line amount must be positive, got %s on %s", line.Amount, line.AccountCode)
		}
		switch line.LineType {
		case domain.Debit:
			debits = debits.Add(line.Amount)
		case domain.Credit:
			credits = credits.Add(line.Amount)
		default:
			return fmt.Errorf("unknown line type %q", line.LineType)
		}
	}

	if !debits.Equal(credits) {
		return fmt.Errorf("ledger lines do not balance: debits %s, credits %s", debits, credits)
	}
	return nil
}
