package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/centsible/centsible_backend/internal/apperrors"
	"github.com/centsible/centsible_backend/internal/core/domain"
	portsrepo "github.com/centsible/centsible_backend/internal/core/ports/repositories"
	"github.com/centsible/centsible_backend/internal/models"
	"github.com/centsible/centsible_backend/internal/utils/mapping"
	"github.com/centsible/centsible_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ledgerEntryColumns = `entry_id, user_id, entry_type, description, occurred_at,
	reference_id, cycle_key, created_at, created_by, last_updated_at, last_updated_by`

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger data.
func newPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

func scanLedgerEntry(row rowScanner) (models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.EntryID,
		&m.UserID,
		&m.EntryType,
		&m.Description,
		&m.OccurredAt,
		&m.ReferenceID,
		&m.CycleKey,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindEntryByID retrieves one entry with its lines populated.
func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerEntryColumns + ` FROM ledger_entries WHERE entry_id = $1;`

	m, err := scanLedgerEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger entry %s: %w", entryID, err)
	}

	entry := mapping.ToDomainLedgerEntry(m)

	lines, err := r.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	entry.Lines = lines

	return &entry, nil
}

// FindLinesByEntryID retrieves the lines of one entry.
func (r *PgxLedgerRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.LedgerLine, error) {
	query := `
		SELECT line_id, entry_id, user_id, line_type, account_code, amount
		FROM ledger_lines
		WHERE entry_id = $1
		ORDER BY line_type, line_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	lines := []models.LedgerLine{}
	for rows.Next() {
		var m models.LedgerLine
		err := rows.Scan(
			&m.LineID,
			&m.EntryID,
			&m.UserID,
			&m.LineType,
			&m.AccountCode,
			&m.Amount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger line row for entry %s: %w", entryID, err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger line rows for entry %s: %w", entryID, err)
	}

	return mapping.ToDomainLedgerLineSlice(lines), nil
}

// ListEntriesByUser retrieves a page of the user's entries, newest first,
// using token-based pagination keyed on (occurred_at, entry_id).
func (r *PgxLedgerRepository) ListEntriesByUser(ctx context.Context, userID string, cycleKey *domain.CycleKey, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to decide whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + ledgerEntryColumns + `
		FROM ledger_entries
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	if cycleKey != nil {
		args = append(args, string(*cycleKey))
		baseQuery += ` AND cycle_key = $` + strconv.Itoa(len(args))
	}

	if nextToken != nil && *nextToken != "" {
		lastOccurredAt, lastEntryID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastOccurredAt, lastEntryID)
		baseQuery += ` AND (occurred_at, entry_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + `
		ORDER BY occurred_at DESC, entry_id DESC
		LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query ledger entries for user %s: %w", userID, err)
	}
	defer rows.Close()

	entries := []models.LedgerEntry{}
	for rows.Next() {
		m, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating ledger entry rows: %w", err)
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		t := pagination.EncodeToken(last.OccurredAt, last.EntryID)
		token = &t
	}

	return mapping.ToDomainLedgerEntrySlice(entries), token, nil
}
