package services

import (
	"context"

	"github.com/centsible/centsible_backend/internal/core/domain"
	"github.com/centsible/centsible_backend/internal/dto"
)

// LedgerSvcFacade exposes read access to the immutable ledger.
type LedgerSvcFacade interface {
	GetEntry(ctx context.Context, userID string, entryID string) (*domain.LedgerEntry, error)
	ListEntries(ctx context.Context, userID string, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error)
}
