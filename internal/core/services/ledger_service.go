package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/centsible_backend/internal/apperrors"
	"github.com/centsible/centsible_backend/internal/core/domain"
	portsrepo "github.com/centsible/centsible_backend/internal/core/ports/repositories"
	portssvc "github.com/centsible/centsible_backend/internal/core/ports/services"
	"github.com/centsible/centsible_backend/internal/dto"
	"github.com/centsible/centsible_backend/internal/middleware"
	"github.com/centsible/centsible_backend/internal/utils/accounting"
)

// ErrLedgerImbalance signals that constructed ledger lines do not balance.
// The intent model makes this structurally impossible, so seeing it means a
// programming defect. It is fatal to the run that produced it.
var ErrLedgerImbalance = errors.New("ledger entry lines do not balance")

// PostingIntent describes one money movement to be recorded as a balanced
// ledger entry.
type PostingIntent struct {
	EntryType   domain.EntryType
	Amount      decimal.Decimal
	Description string
	ReferenceID *string
	CycleKey    *domain.CycleKey
	OccurredAt  time.Time
}

// BuildLedgerEntry turns one posting intent into a LedgerEntry with balanced
// debit/credit lines following standard polarity: asset/expense increases
// debit, liability increases credit. Deterministic given its inputs apart
// from freshly minted line IDs.
func BuildLedgerEntry(userID string, intent PostingIntent, createdBy string, now time.Time) (domain.LedgerEntry, error) {
	if !intent.EntryType.IsValid() {
		return domain.LedgerEntry{}, fmt.Errorf("%w: unknown entry type %q", apperrors.ErrValidation, intent.EntryType)
	}
	if intent.Amount.LessThanOrEqual(decimal.Zero) {
		return domain.LedgerEntry{}, fmt.Errorf("%w: entry amount must be positive, got %s", apperrors.ErrValidation, intent.Amount)
	}

	var debitCode, creditCode domain.LedgerAccountCode
	switch intent.EntryType {
	case domain.EntryPurchase:
		debitCode, creditCode = domain.CodePurchasesExpense, domain.CodeCardLiability
	case domain.EntryPurchaseReversal:
		debitCode, creditCode = domain.CodeCardLiability, domain.CodePurchasesExpense
	case domain.EntryCycleCardSpend:
		debitCode, creditCode = domain.CodeSpendExpense, domain.CodeCardLiability
	case domain.EntryCycleCardInterest:
		debitCode, creditCode = domain.CodeInterestExpense, domain.CodeCardLiability
	case domain.EntryCycleCardPayment:
		debitCode, creditCode = domain.CodeCardLiability, domain.CodeCash
	case domain.EntryCycleLoanInterest:
		debitCode, creditCode = domain.CodeInterestExpense, domain.CodeLoanLiability
	case domain.EntryCycleLoanPayment:
		debitCode, creditCode = domain.CodeLoanLiability, domain.CodeCash
	}

	entryID := uuid.NewString()
	entry := domain.LedgerEntry{
		EntryID:     entryID,
		UserID:      userID,
		EntryType:   intent.EntryType,
		Description: intent.Description,
		OccurredAt:  intent.OccurredAt,
		ReferenceID: intent.ReferenceID,
		CycleKey:    intent.CycleKey,
		Lines: []domain.LedgerLine{
			{
				LineID:      uuid.NewString(),
				EntryID:     entryID,
				UserID:      userID,
				LineType:    domain.Debit,
				AccountCode: debitCode,
				Amount:      intent.Amount,
			},
			{
				LineID:      uuid.NewString(),
				EntryID:     entryID,
				UserID:      userID,
				LineType:    domain.Credit,
				AccountCode: creditCode,
				Amount:      intent.Amount,
			},
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     createdBy,
			LastUpdatedAt: now,
			LastUpdatedBy: createdBy,
		},
	}

	if err := accounting.ValidateEntryBalance(entry.Lines); err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("%w: %v", ErrLedgerImbalance, err)
	}
	return entry, nil
}

// ledgerService serves read access to the immutable ledger.
type ledgerService struct {
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{ledgerRepo: ledgerRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// GetEntry retrieves one ledger entry with its lines.
func (s *ledgerService) GetEntry(ctx context.Context, userID string, entryID string) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find ledger entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, fmt.Errorf("failed to find ledger entry %s: %w", entryID, err)
	}
	if entry.UserID != userID {
		// Obscure existence across owners
		return nil, apperrors.ErrNotFound
	}
	return entry, nil
}

// ListEntries retrieves a page of the user's ledger entries.
func (s *ledgerService) ListEntries(ctx context.Context, userID string, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	var cycleKey *domain.CycleKey
	if params.CycleKey != nil {
		key, err := domain.ParseCycleKey(*params.CycleKey)
		if err != nil {
			return nil, err
		}
		cycleKey = &key
	}

	entries, nextToken, err := s.ledgerRepo.ListEntriesByUser(ctx, userID, cycleKey, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list ledger entries", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve ledger entries: %w", err)
	}

	return &dto.ListLedgerEntriesResponse{
		Entries:   dto.ToLedgerEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}
