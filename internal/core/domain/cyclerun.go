package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CycleSource records what triggered a cycle run.
type CycleSource string

const (
	SourceManual    CycleSource = "MANUAL"
	SourceAutomatic CycleSource = "AUTOMATIC"
)

// IsValid reports whether the source is one of the closed set.
func (s CycleSource) IsValid() bool {
	return s == SourceManual || s == SourceAutomatic
}

// CycleRunStatus is the terminal state of a cycle run attempt. There is no
// persisted in-progress state: a run row only appears once its outcome is known.
type CycleRunStatus string

const (
	RunCompleted CycleRunStatus = "COMPLETED"
	RunFailed    CycleRunStatus = "FAILED"
)

// CycleCounters aggregates what a run did, per account type.
type CycleCounters struct {
	AccountsUpdated int             `json:"accountsUpdated"`
	CardCycles      int             `json:"cardCycles"`
	LoanCycles      int             `json:"loanCycles"`
	PurchasesPosted int             `json:"purchasesPosted"`
	InterestAccrued decimal.Decimal `json:"interestAccrued"`
	PaymentsApplied decimal.Decimal `json:"paymentsApplied"`
	SpendAdded      decimal.Decimal `json:"spendAdded"`
}

// CycleRun is one attempt to advance all due liability accounts of a user by
// one billing cycle. At most one COMPLETED run may exist per (user, cycle
// key); failed attempts may accumulate.
type CycleRun struct {
	RunID          string         `json:"runID"`
	UserID         string         `json:"userID"`
	CycleKey       CycleKey       `json:"cycleKey"`
	Source         CycleSource    `json:"source"`
	Status         CycleRunStatus `json:"status"`
	IdempotencyKey *string        `json:"idempotencyKey,omitempty"`
	FailureReason  *string        `json:"failureReason,omitempty"`
	Counters       CycleCounters  `json:"counters"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// AuditLogRecord is a denormalized mirror of a completed run's counters,
// retained for long-term audit independently of the operational run rows.
type AuditLogRecord struct {
	AuditID         string          `json:"auditID"`
	UserID          string          `json:"userID"`
	RunID           string          `json:"runID"`
	CycleKey        CycleKey        `json:"cycleKey"`
	Source          CycleSource     `json:"source"`
	AccountsUpdated int             `json:"accountsUpdated"`
	CardCycles      int             `json:"cardCycles"`
	LoanCycles      int             `json:"loanCycles"`
	InterestAccrued decimal.Decimal `json:"interestAccrued"`
	PaymentsApplied decimal.Decimal `json:"paymentsApplied"`
	SpendAdded      decimal.Decimal `json:"spendAdded"`
	CreatedAt       time.Time       `json:"createdAt"`
}
