package dto

import (
	"time"

	"github.com/centsible/centsible_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerLineResponse defines the data returned for one posting line.
type LedgerLineResponse struct {
	LineID      string          `json:"lineID"`
	LineType    string          `json:"lineType"`
	AccountCode string          `json:"accountCode"`
	Amount      decimal.Decimal `json:"amount"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID     string               `json:"entryID"`
	EntryType   string               `json:"entryType"`
	Description string               `json:"description"`
	OccurredAt  time.Time            `json:"occurredAt"`
	ReferenceID *string              `json:"referenceID,omitempty"`
	CycleKey    *string              `json:"cycleKey,omitempty"`
	Lines       []LedgerLineResponse `json:"lines,omitempty"`
}

// ListLedgerEntriesParams holds query parameters for listing entries.
type ListLedgerEntriesParams struct {
	CycleKey  *string `form:"cycleKey" binding:"omitempty,cyclekey"`
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListLedgerEntriesResponse is a page of ledger entries.
type ListLedgerEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its DTO.
func ToLedgerEntryResponse(entry *domain.LedgerEntry) LedgerEntryResponse {
	resp := LedgerEntryResponse{
		EntryID:     entry.EntryID,
		EntryType:   string(entry.EntryType),
		Description: entry.Description,
		OccurredAt:  entry.OccurredAt,
		ReferenceID: entry.ReferenceID,
	}
	if entry.CycleKey != nil {
		key := entry.CycleKey.String()
		resp.CycleKey = &key
	}
	if len(entry.Lines) > 0 {
		resp.Lines = make([]LedgerLineResponse, len(entry.Lines))
		for i, line := range entry.Lines {
			resp.Lines[i] = LedgerLineResponse{
				LineID:      line.LineID,
				LineType:    string(line.LineType),
				AccountCode: string(line.AccountCode),
				Amount:      line.Amount,
			}
		}
	}
	return resp
}

// ToLedgerEntryResponses converts a slice of domain entries to DTOs.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	responses := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToLedgerEntryResponse(&entries[i])
	}
	return responses
}
