package pgsql

import (
	"context"
	"fmt"

	"github.com/centsible/centsible_backend/internal/core/domain"
	portsrepo "github.com/centsible/centsible_backend/internal/core/ports/repositories"
	"github.com/centsible/centsible_backend/internal/models"
	"github.com/centsible/centsible_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new read-only repository for income and
// bill data consumed by the snapshot recorder.
func newPgxBudgetRepository(pool *pgxpool.Pool) *PgxBudgetRepository {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxBudgetRepository implements portsrepo.BudgetReader
var _ portsrepo.BudgetReader = (*PgxBudgetRepository)(nil)

// ListActiveIncomeSources retrieves the user's active income streams.
func (r *PgxBudgetRepository) ListActiveIncomeSources(ctx context.Context, userID string) ([]domain.IncomeSource, error) {
	query := `
		SELECT income_id, user_id, name, amount, cadence, custom_every, custom_unit, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM income_sources
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY created_at, income_id;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query income sources for user %s: %w", userID, err)
	}
	defer rows.Close()

	incomes := []models.IncomeSource{}
	for rows.Next() {
		var m models.IncomeSource
		err := rows.Scan(
			&m.IncomeID,
			&m.UserID,
			&m.Name,
			&m.Amount,
			&m.Cadence,
			&m.CustomEvery,
			&m.CustomUnit,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan income source row: %w", err)
		}
		incomes = append(incomes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating income source rows: %w", err)
	}

	return mapping.ToDomainIncomeSourceSlice(incomes), nil
}

// ListActiveBills retrieves the user's active recurring bills.
func (r *PgxBudgetRepository) ListActiveBills(ctx context.Context, userID string) ([]domain.Bill, error) {
	query := `
		SELECT bill_id, user_id, name, amount, cadence, custom_every, custom_unit, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM bills
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY created_at, bill_id;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bills for user %s: %w", userID, err)
	}
	defer rows.Close()

	bills := []models.Bill{}
	for rows.Next() {
		var m models.Bill
		err := rows.Scan(
			&m.BillID,
			&m.UserID,
			&m.Name,
			&m.Amount,
			&m.Cadence,
			&m.CustomEvery,
			&m.CustomUnit,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill row: %w", err)
		}
		bills = append(bills, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bill rows: %w", err)
	}

	return mapping.ToDomainBillSlice(bills), nil
}
