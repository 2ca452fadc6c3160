package mapping

import (
	"github.com/centsible/centsible_backend/internal/core/domain"
	"github.com/centsible/centsible_backend/internal/models"
)

// ToModelCycleRun converts a domain CycleRun to a model CycleRun
func ToModelCycleRun(d domain.CycleRun) models.CycleRun {
	return models.CycleRun{
		RunID:           d.RunID,
		UserID:          d.UserID,
		CycleKey:        string(d.CycleKey),
		Source:          string(d.Source),
		Status:          string(d.Status),
		IdempotencyKey:  d.IdempotencyKey,
		FailureReason:   d.FailureReason,
		AccountsUpdated: d.Counters.AccountsUpdated,
		CardCycles:      d.Counters.CardCycles,
		LoanCycles:      d.Counters.LoanCycles,
		PurchasesPosted: d.Counters.PurchasesPosted,
		InterestAccrued: d.Counters.InterestAccrued,
		PaymentsApplied: d.Counters.PaymentsApplied,
		SpendAdded:      d.Counters.SpendAdded,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainCycleRun converts a model CycleRun to a domain CycleRun
func ToDomainCycleRun(m models.CycleRun) domain.CycleRun {
	return domain.CycleRun{
		RunID:          m.RunID,
		UserID:         m.UserID,
		CycleKey:       domain.CycleKey(m.CycleKey),
		Source:         domain.CycleSource(m.Source),
		Status:         domain.CycleRunStatus(m.Status),
		IdempotencyKey: m.IdempotencyKey,
		FailureReason:  m.FailureReason,
		Counters: domain.CycleCounters{
			AccountsUpdated: m.AccountsUpdated,
			CardCycles:      m.CardCycles,
			LoanCycles:      m.LoanCycles,
			PurchasesPosted: m.PurchasesPosted,
			InterestAccrued: m.InterestAccrued,
			PaymentsApplied: m.PaymentsApplied,
			SpendAdded:      m.SpendAdded,
		},
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainCycleRunSlice converts a slice of model CycleRuns to a slice of domain CycleRuns
func ToDomainCycleRunSlice(ms []models.CycleRun) []domain.CycleRun {
	ds := make([]domain.CycleRun, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCycleRun(m)
	}
	return ds
}

// ToModelAuditLogRecord converts a domain AuditLogRecord to a model AuditLogRecord
func ToModelAuditLogRecord(d domain.AuditLogRecord) models.AuditLogRecord {
	return models.AuditLogRecord{
		AuditID:         d.AuditID,
		UserID:          d.UserID,
		RunID:           d.RunID,
		CycleKey:        string(d.CycleKey),
		Source:          string(d.Source),
		AccountsUpdated: d.AccountsUpdated,
		CardCycles:      d.CardCycles,
		LoanCycles:      d.LoanCycles,
		InterestAccrued: d.InterestAccrued,
		PaymentsApplied: d.PaymentsApplied,
		SpendAdded:      d.SpendAdded,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainAuditLogRecord converts a model AuditLogRecord to a domain AuditLogRecord
func ToDomainAuditLogRecord(m models.AuditLogRecord) domain.AuditLogRecord {
	return domain.AuditLogRecord{
		AuditID:         m.AuditID,
		UserID:          m.UserID,
		RunID:           m.RunID,
		CycleKey:        domain.CycleKey(m.CycleKey),
		Source:          domain.CycleSource(m.Source),
		AccountsUpdated: m.AccountsUpdated,
		CardCycles:      m.CardCycles,
		LoanCycles:      m.LoanCycles,
		InterestAccrued: m.InterestAccrued,
		PaymentsApplied: m.PaymentsApplied,
		SpendAdded:      m.SpendAdded,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainAuditLogRecordSlice converts a slice of model AuditLogRecords to a slice of domain AuditLogRecords
func ToDomainAuditLogRecordSlice(ms []models.AuditLogRecord) []domain.AuditLogRecord {
	ds := make([]domain.AuditLogRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAuditLogRecord(m)
	}
	return ds
}
