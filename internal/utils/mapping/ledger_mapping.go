package mapping

import (
	"github.com/centsible/centsible_backend/internal/core/domain"
	"github.com/centsible/centsible_backend/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry.
// Lines are carried separately because they live in their own table.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	var cycleKey *string
	if d.CycleKey != nil {
		s := string(*d.CycleKey)
		cycleKey = &s
	}
	return models.LedgerEntry{
		EntryID:     d.EntryID,
		UserID:      d.UserID,
		EntryType:   string(d.EntryType),
		Description: d.Description,
		OccurredAt:  d.OccurredAt,
		ReferenceID: d.ReferenceID,
		CycleKey:    cycleKey,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	var cycleKey *domain.CycleKey
	if m.CycleKey != nil {
		k := domain.CycleKey(*m.CycleKey)
		cycleKey = &k
	}
	return domain.LedgerEntry{
		EntryID:     m.EntryID,
		UserID:      m.UserID,
		EntryType:   domain.EntryType(m.EntryType),
		Description: m.Description,
		OccurredAt:  m.OccurredAt,
		ReferenceID: m.ReferenceID,
		CycleKey:    cycleKey,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLedgerEntrySlice converts a slice of model LedgerEntries to a slice of domain LedgerEntries
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}

// ToModelLedgerLine converts a domain LedgerLine to a model LedgerLine
func ToModelLedgerLine(d domain.LedgerLine) models.LedgerLine {
	return models.LedgerLine{
		LineID:      d.LineID,
		EntryID:     d.EntryID,
		UserID:      d.UserID,
		LineType:    string(d.LineType),
		AccountCode: string(d.AccountCode),
		Amount:      d.Amount,
	}
}

// ToDomainLedgerLine converts a model LedgerLine to a domain LedgerLine
func ToDomainLedgerLine(m models.LedgerLine) domain.LedgerLine {
	return domain.LedgerLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		UserID:      m.UserID,
		LineType:    domain.LineType(m.LineType),
		AccountCode: domain.LedgerAccountCode(m.AccountCode),
		Amount:      m.Amount,
	}
}

// ToDomainLedgerLineSlice converts a slice of model LedgerLines to a slice of domain LedgerLines
func ToDomainLedgerLineSlice(ms []models.LedgerLine) []domain.LedgerLine {
	ds := make([]domain.LedgerLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerLine(m)
	}
	return ds
}
