package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/centsible/centsible_backend/internal/apperrors"
	"github.com/centsible/centsible_backend/internal/core/domain"
	portsrepo "github.com/centsible/centsible_backend/internal/core/ports/repositories"
	"github.com/centsible/centsible_backend/internal/models"
	"github.com/centsible/centsible_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const purchaseColumns = `purchase_id, user_id, account_id, description, amount, status,
	statement_month, reversed, purchased_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxPurchaseRepository struct {
	BaseRepository
	accountRepo *PgxAccountRepository
}

// newPgxPurchaseRepository creates a new repository for purchase data.
func newPgxPurchaseRepository(pool *pgxpool.Pool, accountRepo *PgxAccountRepository) *PgxPurchaseRepository {
	return &PgxPurchaseRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxPurchaseRepository implements portsrepo.PurchaseRepositoryFacade
var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

func scanPurchase(row rowScanner) (models.Purchase, error) {
	var m models.Purchase
	err := row.Scan(
		&m.PurchaseID,
		&m.UserID,
		&m.AccountID,
		&m.Description,
		&m.Amount,
		&m.Status,
		&m.StatementMonth,
		&m.Reversed,
		&m.PurchasedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func insertLedgerEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) error {
	me := mapping.ToModelLedgerEntry(entry)

	entryQuery := `
		INSERT INTO ledger_entries (entry_id, user_id, entry_type, description, occurred_at,
			reference_id, cycle_key, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := tx.Exec(ctx, entryQuery,
		me.EntryID, me.UserID, me.EntryType, me.Description, me.OccurredAt,
		me.ReferenceID, me.CycleKey, me.CreatedAt, me.CreatedBy, me.LastUpdatedAt, me.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ledger entry %s: %w", me.EntryID, err)
	}

	lineQuery := `
		INSERT INTO ledger_lines (line_id, entry_id, user_id, line_type, account_code, amount)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	batch := &pgx.Batch{}
	for _, line := range entry.Lines {
		ml := mapping.ToModelLedgerLine(line)
		batch.Queue(lineQuery, ml.LineID, ml.EntryID, ml.UserID, ml.LineType, ml.AccountCode, ml.Amount)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert ledger lines for entry %s: %w", me.EntryID, err)
	}
	return nil
}

// SavePurchaseWithEntry persists a purchase together with its balanced
// ledger entry and the card balance increase in one transaction.
func (r *PgxPurchaseRepository) SavePurchaseWithEntry(ctx context.Context, purchase domain.Purchase, entry domain.LedgerEntry, accountID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := r.accountRepo.lockAccountsForUpdate(ctx, tx, []string{accountID}); err != nil {
		return err
	}

	m := mapping.ToModelPurchase(purchase)
	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, query,
		m.PurchaseID,
		m.UserID,
		m.AccountID,
		m.Description,
		m.Amount,
		m.Status,
		m.StatementMonth,
		m.Reversed,
		m.PurchasedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: purchase %s already exists", apperrors.ErrDuplicate, m.PurchaseID)
		}
		return fmt.Errorf("failed to insert purchase %s: %w", m.PurchaseID, err)
	}

	if err := insertLedgerEntryInTx(ctx, tx, entry); err != nil {
		return err
	}

	if err := r.accountRepo.updateBalanceInTx(ctx, tx, accountID, purchase.Amount, purchase.UserID, purchase.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ReversePurchaseWithEntry marks a purchase reversed, persists the reversal
// entry and restores the card balance in one transaction. The conditional
// update arbitrates concurrent reversals: only one caller flips the flag.
func (r *PgxPurchaseRepository) ReversePurchaseWithEntry(ctx context.Context, purchase domain.Purchase, entry domain.LedgerEntry, accountID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := r.accountRepo.lockAccountsForUpdate(ctx, tx, []string{accountID}); err != nil {
		return err
	}

	query := `
		UPDATE purchases
		SET reversed = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE purchase_id = $1 AND reversed = FALSE;
	`
	tag, err := tx.Exec(ctx, query, purchase.PurchaseID, purchase.LastUpdatedAt, purchase.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to reverse purchase %s: %w", purchase.PurchaseID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: purchase %s already reversed", apperrors.ErrConflict, purchase.PurchaseID)
	}

	if err := insertLedgerEntryInTx(ctx, tx, entry); err != nil {
		return err
	}

	if err := r.accountRepo.updateBalanceInTx(ctx, tx, accountID, purchase.Amount.Neg(), purchase.UserID, purchase.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdatePurchaseStatus advances the reconciliation status of a purchase.
func (r *PgxPurchaseRepository) UpdatePurchaseStatus(ctx context.Context, purchaseID string, status domain.PurchaseStatus, statementMonth *domain.CycleKey, userID string, now time.Time) error {
	var month *string
	if statementMonth != nil {
		s := string(*statementMonth)
		month = &s
	}

	query := `
		UPDATE purchases
		SET status = $2, statement_month = COALESCE($3, statement_month),
		    last_updated_at = $4, last_updated_by = $5
		WHERE purchase_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, purchaseID, string(status), month, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update status of purchase %s: %w", purchaseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindPurchaseByID retrieves a purchase by its identifier.
func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE purchase_id = $1;`

	m, err := scanPurchase(r.Pool.QueryRow(ctx, query, purchaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase %s: %w", purchaseID, err)
	}

	purchase := mapping.ToDomainPurchase(m)
	return &purchase, nil
}

// ListPurchasesByUser retrieves the user's purchases, newest first,
// optionally filtered to one reconciliation status.
func (r *PgxPurchaseRepository) ListPurchasesByUser(ctx context.Context, userID string, status *domain.PurchaseStatus, limit int) ([]domain.Purchase, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT ` + purchaseColumns + `
		FROM purchases
		WHERE user_id = $1 AND ($2::text IS NULL OR status = $2)
		ORDER BY purchased_at DESC, purchase_id DESC
		LIMIT $3;
	`
	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}

	rows, err := r.Pool.Query(ctx, query, userID, statusArg, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases for user %s: %w", userID, err)
	}
	defer rows.Close()

	purchases := []models.Purchase{}
	for rows.Next() {
		m, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		purchases = append(purchases, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase rows: %w", err)
	}

	return mapping.ToDomainPurchaseSlice(purchases), nil
}

// ListPendingPurchasesByAccounts retrieves PENDING purchases on the given
// card accounts, ordered by purchase time then ID.
func (r *PgxPurchaseRepository) ListPendingPurchasesByAccounts(ctx context.Context, userID string, accountIDs []string) ([]domain.Purchase, error) {
	if len(accountIDs) == 0 {
		return []domain.Purchase{}, nil
	}

	query := `
		SELECT ` + purchaseColumns + `
		FROM purchases
		WHERE user_id = $1 AND account_id = ANY($2) AND status = 'PENDING'
		ORDER BY purchased_at, purchase_id;
	`
	rows, err := r.Pool.Query(ctx, query, userID, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending purchases for user %s: %w", userID, err)
	}
	defer rows.Close()

	purchases := []models.Purchase{}
	for rows.Next() {
		m, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		purchases = append(purchases, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase rows: %w", err)
	}

	return mapping.ToDomainPurchaseSlice(purchases), nil
}
