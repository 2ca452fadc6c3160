package repositories

import (
	"context"

	"github.com/centsible/centsible_backend/internal/core/domain"
)

// LedgerReader defines read operations for ledger data.
type LedgerReader interface {
	// FindEntryByID retrieves one entry with its lines populated.
	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// ListEntriesByUser retrieves a page of the user's entries, newest
	// first, using token-based pagination. cycleKey optionally narrows the
	// page to entries linked to one cycle.
	ListEntriesByUser(ctx context.Context, userID string, cycleKey *domain.CycleKey, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)

	// FindLinesByEntryID retrieves the lines of one entry.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.LedgerLine, error)
}

// LedgerRepositoryFacade combines all ledger repository interfaces. The
// ledger has no standalone writer: entries are only written inside a cycle
// apply or a purchase save, both of which own their own transaction.
type LedgerRepositoryFacade interface {
	LedgerReader
}
