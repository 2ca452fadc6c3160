package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/centsible/centsible_backend/internal/apperrors"
	"github.com/centsible/centsible_backend/internal/core/domain"
	portsrepo "github.com/centsible/centsible_backend/internal/core/ports/repositories"
	"github.com/centsible/centsible_backend/internal/models"
	"github.com/centsible/centsible_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const cycleRunColumns = `run_id, user_id, cycle_key, source, status, idempotency_key,
	failure_reason, accounts_updated, card_cycles, loan_cycles, purchases_posted,
	interest_accrued, payments_applied, spend_added, created_at`

type PgxCycleRunRepository struct {
	BaseRepository
	accountRepo *PgxAccountRepository
}

// newPgxCycleRunRepository creates a new repository for cycle run data.
func newPgxCycleRunRepository(pool *pgxpool.Pool, accountRepo *PgxAccountRepository) *PgxCycleRunRepository {
	return &PgxCycleRunRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxCycleRunRepository implements portsrepo.CycleRunRepositoryFacade
var _ portsrepo.CycleRunRepositoryFacade = (*PgxCycleRunRepository)(nil)

func scanCycleRun(row rowScanner) (models.CycleRun, error) {
	var m models.CycleRun
	err := row.Scan(
		&m.RunID,
		&m.UserID,
		&m.CycleKey,
		&m.Source,
		&m.Status,
		&m.IdempotencyKey,
		&m.FailureReason,
		&m.AccountsUpdated,
		&m.CardCycles,
		&m.LoanCycles,
		&m.PurchasesPosted,
		&m.InterestAccrued,
		&m.PaymentsApplied,
		&m.SpendAdded,
		&m.CreatedAt,
	)
	return m, err
}

func (r *PgxCycleRunRepository) insertRunInTx(ctx context.Context, tx pgx.Tx, run domain.CycleRun) error {
	m := mapping.ToModelCycleRun(run)

	query := `
		INSERT INTO cycle_runs (` + cycleRunColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := tx.Exec(ctx, query,
		m.RunID,
		m.UserID,
		m.CycleKey,
		m.Source,
		m.Status,
		m.IdempotencyKey,
		m.FailureReason,
		m.AccountsUpdated,
		m.CardCycles,
		m.LoanCycles,
		m.PurchasesPosted,
		m.InterestAccrued,
		m.PaymentsApplied,
		m.SpendAdded,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			// Either the one-completed-run-per-cycle index or the
			// idempotency key index fired: another writer won.
			return fmt.Errorf("%w: cycle %s already has a completed run", apperrors.ErrConflict, m.CycleKey)
		}
		return fmt.Errorf("failed to insert cycle run %s: %w", m.RunID, err)
	}
	return nil
}

// ApplyCycle persists a completed run and every staged mutation in a single
// database transaction. The run row goes first: its partial unique index is
// what arbitrates between concurrent runs of the same cycle, so a conflict
// surfaces before any balance has moved.
func (r *PgxCycleRunRepository) ApplyCycle(ctx context.Context, apply portsrepo.CycleApply) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	run := apply.Run
	now := run.CreatedAt
	userID := run.UserID

	if err := r.insertRunInTx(ctx, tx, run); err != nil {
		return err
	}

	accountIDs := make([]string, 0, len(apply.AccountUpdates))
	for _, upd := range apply.AccountUpdates {
		accountIDs = append(accountIDs, upd.AccountID)
	}
	if _, err := r.accountRepo.lockAccountsForUpdate(ctx, tx, accountIDs); err != nil {
		return fmt.Errorf("failed to lock accounts for cycle run %s: %w", run.RunID, err)
	}

	batch := &pgx.Batch{}

	accountQuery := `
		UPDATE accounts
		SET balance = $2, last_cycle_at = $3, last_updated_at = $4, last_updated_by = $5
		WHERE account_id = $1;
	`
	for _, upd := range apply.AccountUpdates {
		batch.Queue(accountQuery, upd.AccountID, upd.NewBalance, upd.LastCycleAt, now, userID)
	}

	entryQuery := `
		INSERT INTO ledger_entries (entry_id, user_id, entry_type, description, occurred_at,
			reference_id, cycle_key, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	lineQuery := `
		INSERT INTO ledger_lines (line_id, entry_id, user_id, line_type, account_code, amount)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, entry := range apply.Entries {
		me := mapping.ToModelLedgerEntry(entry)
		batch.Queue(entryQuery,
			me.EntryID, me.UserID, me.EntryType, me.Description, me.OccurredAt,
			me.ReferenceID, me.CycleKey, me.CreatedAt, me.CreatedBy, me.LastUpdatedAt, me.LastUpdatedBy,
		)
		for _, line := range entry.Lines {
			ml := mapping.ToModelLedgerLine(line)
			batch.Queue(lineQuery,
				ml.LineID, ml.EntryID, ml.UserID, ml.LineType, ml.AccountCode, ml.Amount,
			)
		}
	}

	purchaseQuery := `
		UPDATE purchases
		SET status = 'POSTED', statement_month = $2, last_updated_at = $3, last_updated_by = $4
		WHERE purchase_id = $1 AND status = 'PENDING';
	`
	for _, upd := range apply.PurchaseUpdates {
		batch.Queue(purchaseQuery, upd.PurchaseID, string(upd.StatementMonth), now, userID)
	}

	audit := mapping.ToModelAuditLogRecord(apply.Audit)
	auditQuery := `
		INSERT INTO audit_log (audit_id, user_id, run_id, cycle_key, source, accounts_updated,
			card_cycles, loan_cycles, interest_accrued, payments_applied, spend_added, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	batch.Queue(auditQuery,
		audit.AuditID, audit.UserID, audit.RunID, audit.CycleKey, audit.Source,
		audit.AccountsUpdated, audit.CardCycles, audit.LoanCycles,
		audit.InterestAccrued, audit.PaymentsApplied, audit.SpendAdded, audit.CreatedAt,
	)

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute cycle apply batch for run %s: %w", run.RunID, err)
	}

	return r.Commit(ctx, tx)
}

// SaveFailedRun records a failed attempt outside any cycle transaction.
// Failed runs are not limited by the completed-run index, so repeated
// failures for the same cycle may accumulate.
func (r *PgxCycleRunRepository) SaveFailedRun(ctx context.Context, run domain.CycleRun) error {
	m := mapping.ToModelCycleRun(run)

	query := `
		INSERT INTO cycle_runs (` + cycleRunColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RunID,
		m.UserID,
		m.CycleKey,
		m.Source,
		m.Status,
		m.IdempotencyKey,
		m.FailureReason,
		m.AccountsUpdated,
		m.CardCycles,
		m.LoanCycles,
		m.PurchasesPosted,
		m.InterestAccrued,
		m.PaymentsApplied,
		m.SpendAdded,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: idempotency key already used", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to save failed run %s: %w", m.RunID, err)
	}
	return nil
}

// FindCompletedRun retrieves the completed run for (user, cycle key), if any.
func (r *PgxCycleRunRepository) FindCompletedRun(ctx context.Context, userID string, cycleKey domain.CycleKey) (*domain.CycleRun, error) {
	query := `
		SELECT ` + cycleRunColumns + `
		FROM cycle_runs
		WHERE user_id = $1 AND cycle_key = $2 AND status = 'COMPLETED';
	`
	m, err := scanCycleRun(r.Pool.QueryRow(ctx, query, userID, string(cycleKey)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find completed run for cycle %s: %w", cycleKey, err)
	}

	run := mapping.ToDomainCycleRun(m)
	return &run, nil
}

// FindRunByIdempotencyKey retrieves any run recorded under the key.
func (r *PgxCycleRunRepository) FindRunByIdempotencyKey(ctx context.Context, userID string, idempotencyKey string) (*domain.CycleRun, error) {
	query := `
		SELECT ` + cycleRunColumns + `
		FROM cycle_runs
		WHERE user_id = $1 AND idempotency_key = $2;
	`
	m, err := scanCycleRun(r.Pool.QueryRow(ctx, query, userID, idempotencyKey))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find run by idempotency key: %w", err)
	}

	run := mapping.ToDomainCycleRun(m)
	return &run, nil
}

// FindRunByID retrieves a run by its identifier.
func (r *PgxCycleRunRepository) FindRunByID(ctx context.Context, runID string) (*domain.CycleRun, error) {
	query := `SELECT ` + cycleRunColumns + ` FROM cycle_runs WHERE run_id = $1;`

	m, err := scanCycleRun(r.Pool.QueryRow(ctx, query, runID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find run %s: %w", runID, err)
	}

	run := mapping.ToDomainCycleRun(m)
	return &run, nil
}

// ListRunsByUser retrieves the user's runs, newest first.
func (r *PgxCycleRunRepository) ListRunsByUser(ctx context.Context, userID string, limit int) ([]domain.CycleRun, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT ` + cycleRunColumns + `
		FROM cycle_runs
		WHERE user_id = $1
		ORDER BY created_at DESC, run_id DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs for user %s: %w", userID, err)
	}
	defer rows.Close()

	runs := []models.CycleRun{}
	for rows.Next() {
		m, err := scanCycleRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cycle run row: %w", err)
		}
		runs = append(runs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cycle run rows: %w", err)
	}

	return mapping.ToDomainCycleRunSlice(runs), nil
}

// ListAuditRecordsByUser retrieves audit records, newest first.
func (r *PgxCycleRunRepository) ListAuditRecordsByUser(ctx context.Context, userID string, limit int) ([]domain.AuditLogRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT audit_id, user_id, run_id, cycle_key, source, accounts_updated,
		       card_cycles, loan_cycles, interest_accrued, payments_applied, spend_added, created_at
		FROM audit_log
		WHERE user_id = $1
		ORDER BY created_at DESC, audit_id DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit records for user %s: %w", userID, err)
	}
	defer rows.Close()

	records := []models.AuditLogRecord{}
	for rows.Next() {
		var m models.AuditLogRecord
		err := rows.Scan(
			&m.AuditID,
			&m.UserID,
			&m.RunID,
			&m.CycleKey,
			&m.Source,
			&m.AccountsUpdated,
			&m.CardCycles,
			&m.LoanCycles,
			&m.InterestAccrued,
			&m.PaymentsApplied,
			&m.SpendAdded,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit record row: %w", err)
		}
		records = append(records, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit record rows: %w", err)
	}

	return mapping.ToDomainAuditLogRecordSlice(records), nil
}
