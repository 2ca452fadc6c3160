package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseStatus tracks a purchase through reconciliation. Transitions are
// monotonic forward-only: PENDING -> POSTED -> RECONCILED.
type PurchaseStatus string

const (
	PurchasePending    PurchaseStatus = "PENDING"
	PurchasePosted     PurchaseStatus = "POSTED"
	PurchaseReconciled PurchaseStatus = "RECONCILED"
)

// rank orders statuses along the reconciliation flow.
func (s PurchaseStatus) rank() int {
	switch s {
	case PurchasePending:
		return 0
	case PurchasePosted:
		return 1
	case PurchaseReconciled:
		return 2
	}
	return -1
}

// CanTransitionTo reports whether moving to next is a forward step.
func (s PurchaseStatus) CanTransitionTo(next PurchaseStatus) bool {
	sr, nr := s.rank(), next.rank()
	return sr >= 0 && nr >= 0 && nr == sr+1
}

// Purchase is a card purchase recorded by the user. It starts PENDING, is
// POSTED when a cycle boundary assigns its statement month, and becomes
// RECONCILED when the user or a matching rule confirms it.
type Purchase struct {
	PurchaseID     string          `json:"purchaseID"`
	UserID         string          `json:"userID"`
	AccountID      string          `json:"accountID"` // owning credit card
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	Status         PurchaseStatus  `json:"status"`
	StatementMonth *CycleKey       `json:"statementMonth,omitempty"`
	Reversed       bool            `json:"reversed"`
	PurchasedAt    time.Time       `json:"purchasedAt"`
	AuditFields
}
