package dto

import (
	"time"

	"github.com/centsible/centsible_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RunCycleRequest triggers a cycle run for the authenticated user.
type RunCycleRequest struct {
	CycleKey       string  `json:"cycleKey" binding:"required,cyclekey"`
	Source         string  `json:"source" binding:"required,oneof=MANUAL AUTOMATIC"`
	IdempotencyKey *string `json:"idempotencyKey"`
	CloseMonth     *bool   `json:"closeMonth"` // defaults to true
}

// CycleRunResponse defines the data returned for a cycle run.
type CycleRunResponse struct {
	RunID           string          `json:"runID"`
	CycleKey        string          `json:"cycleKey"`
	Source          string          `json:"source"`
	Status          string          `json:"status"`
	FailureReason   *string         `json:"failureReason,omitempty"`
	AccountsUpdated int             `json:"accountsUpdated"`
	CardCycles      int             `json:"cardCycles"`
	LoanCycles      int             `json:"loanCycles"`
	PurchasesPosted int             `json:"purchasesPosted"`
	InterestAccrued decimal.Decimal `json:"interestAccrued"`
	PaymentsApplied decimal.Decimal `json:"paymentsApplied"`
	SpendAdded      decimal.Decimal `json:"spendAdded"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToCycleRunResponse converts a domain.CycleRun to CycleRunResponse DTO.
func ToCycleRunResponse(run *domain.CycleRun) CycleRunResponse {
	return CycleRunResponse{
		RunID:           run.RunID,
		CycleKey:        run.CycleKey.String(),
		Source:          string(run.Source),
		Status:          string(run.Status),
		FailureReason:   run.FailureReason,
		AccountsUpdated: run.Counters.AccountsUpdated,
		CardCycles:      run.Counters.CardCycles,
		LoanCycles:      run.Counters.LoanCycles,
		PurchasesPosted: run.Counters.PurchasesPosted,
		InterestAccrued: run.Counters.InterestAccrued,
		PaymentsApplied: run.Counters.PaymentsApplied,
		SpendAdded:      run.Counters.SpendAdded,
		CreatedAt:       run.CreatedAt,
	}
}

// ToCycleRunResponses converts a slice of domain runs to DTOs.
func ToCycleRunResponses(runs []domain.CycleRun) []CycleRunResponse {
	responses := make([]CycleRunResponse, len(runs))
	for i := range runs {
		responses[i] = ToCycleRunResponse(&runs[i])
	}
	return responses
}

// AuditRecordResponse defines the data returned for an audit log record.
type AuditRecordResponse struct {
	AuditID         string          `json:"auditID"`
	RunID           string          `json:"runID"`
	CycleKey        string          `json:"cycleKey"`
	Source          string          `json:"source"`
	AccountsUpdated int             `json:"accountsUpdated"`
	CardCycles      int             `json:"cardCycles"`
	LoanCycles      int             `json:"loanCycles"`
	InterestAccrued decimal.Decimal `json:"interestAccrued"`
	PaymentsApplied decimal.Decimal `json:"paymentsApplied"`
	SpendAdded      decimal.Decimal `json:"spendAdded"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToAuditRecordResponses converts audit records to DTOs.
func ToAuditRecordResponses(records []domain.AuditLogRecord) []AuditRecordResponse {
	responses := make([]AuditRecordResponse, len(records))
	for i, rec := range records {
		responses[i] = AuditRecordResponse{
			AuditID:         rec.AuditID,
			RunID:           rec.RunID,
			CycleKey:        rec.CycleKey.String(),
			Source:          string(rec.Source),
			AccountsUpdated: rec.AccountsUpdated,
			CardCycles:      rec.CardCycles,
			LoanCycles:      rec.LoanCycles,
			InterestAccrued: rec.InterestAccrued,
			PaymentsApplied: rec.PaymentsApplied,
			SpendAdded:      rec.SpendAdded,
			CreatedAt:       rec.CreatedAt,
		}
	}
	return responses
}
