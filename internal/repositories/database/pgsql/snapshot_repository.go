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
	"github.com/jackc/pgx/v5/pgxpool"
)

const snapshotColumns = `snapshot_id, user_id, cycle_key, monthly_income, monthly_bills,
	monthly_card_spend, monthly_card_minimums, monthly_loan_payments, monthly_commitments,
	liquid_assets, investment_assets, total_assets, total_liabilities, net_worth,
	runway_months, created_at`

type PgxSnapshotRepository struct {
	BaseRepository
}

// newPgxSnapshotRepository creates a new repository for month-close snapshots.
func newPgxSnapshotRepository(pool *pgxpool.Pool) *PgxSnapshotRepository {
	return &PgxSnapshotRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxSnapshotRepository implements portsrepo.SnapshotRepositoryFacade
var _ portsrepo.SnapshotRepositoryFacade = (*PgxSnapshotRepository)(nil)

func scanSnapshot(row rowScanner) (models.MonthCloseSnapshot, error) {
	var m models.MonthCloseSnapshot
	err := row.Scan(
		&m.SnapshotID,
		&m.UserID,
		&m.CycleKey,
		&m.MonthlyIncome,
		&m.MonthlyBills,
		&m.MonthlyCardSpend,
		&m.MonthlyCardMinimums,
		&m.MonthlyLoanPayments,
		&m.MonthlyCommitments,
		&m.LiquidAssets,
		&m.InvestmentAssets,
		&m.TotalAssets,
		&m.TotalLiabilities,
		&m.NetWorth,
		&m.RunwayMonths,
		&m.CreatedAt,
	)
	return m, err
}

// SaveSnapshot inserts a snapshot unless one already exists for its (user,
// cycle key), then returns the stored row. ON CONFLICT DO NOTHING plus a
// read-back makes the whole operation idempotent: the first writer's row is
// what every caller gets.
func (r *PgxSnapshotRepository) SaveSnapshot(ctx context.Context, snapshot domain.MonthCloseSnapshot) (*domain.MonthCloseSnapshot, error) {
	m := mapping.ToModelSnapshot(snapshot)

	query := `
		INSERT INTO month_close_snapshots (` + snapshotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (user_id, cycle_key) DO NOTHING;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SnapshotID,
		m.UserID,
		m.CycleKey,
		m.MonthlyIncome,
		m.MonthlyBills,
		m.MonthlyCardSpend,
		m.MonthlyCardMinimums,
		m.MonthlyLoanPayments,
		m.MonthlyCommitments,
		m.LiquidAssets,
		m.InvestmentAssets,
		m.TotalAssets,
		m.TotalLiabilities,
		m.NetWorth,
		m.RunwayMonths,
		m.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save snapshot for cycle %s: %w", m.CycleKey, err)
	}

	return r.FindSnapshot(ctx, snapshot.UserID, snapshot.CycleKey)
}

// FindSnapshot retrieves the snapshot for (user, cycle key), if any.
func (r *PgxSnapshotRepository) FindSnapshot(ctx context.Context, userID string, cycleKey domain.CycleKey) (*domain.MonthCloseSnapshot, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM month_close_snapshots
		WHERE user_id = $1 AND cycle_key = $2;
	`
	m, err := scanSnapshot(r.Pool.QueryRow(ctx, query, userID, string(cycleKey)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find snapshot for cycle %s: %w", cycleKey, err)
	}

	snapshot := mapping.ToDomainSnapshot(m)
	return &snapshot, nil
}

// ListSnapshotsByUser retrieves the user's snapshots, newest first.
func (r *PgxSnapshotRepository) ListSnapshotsByUser(ctx context.Context, userID string, limit int) ([]domain.MonthCloseSnapshot, error) {
	if limit <= 0 {
		limit = 12
	}

	query := `
		SELECT ` + snapshotColumns + `
		FROM month_close_snapshots
		WHERE user_id = $1
		ORDER BY cycle_key DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots for user %s: %w", userID, err)
	}
	defer rows.Close()

	snapshots := []models.MonthCloseSnapshot{}
	for rows.Next() {
		m, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		snapshots = append(snapshots, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshot rows: %w", err)
	}

	return mapping.ToDomainSnapshotSlice(snapshots), nil
}
