package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centsible/centsible_backend/internal/apperrors"
	"github.com/centsible/centsible_backend/internal/core/domain"
	portsrepo "github.com/centsible/centsible_backend/internal/core/ports/repositories"
	portssvc "github.com/centsible/centsible_backend/internal/core/ports/services"
	"github.com/centsible/centsible_backend/internal/middleware"
	"github.com/centsible/centsible_backend/internal/utils/accounting"
)

// cycleService coordinates one full billing cycle across all due liability
// accounts of a user. It owns the only write path for account balances and
// cycle-originated ledger entries.
type cycleService struct {
	accountRepo  portsrepo.AccountRepositoryFacade
	cycleRepo    portsrepo.CycleRunRepositoryFacade
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	userRepo     portsrepo.UserReader
	snapshotSvc  portssvc.SnapshotSvcFacade
}

// NewCycleService creates a new CycleService.
func NewCycleService(
	accountRepo portsrepo.AccountRepositoryFacade,
	cycleRepo portsrepo.CycleRunRepositoryFacade,
	purchaseRepo portsrepo.PurchaseRepositoryFacade,
	userRepo portsrepo.UserReader,
	snapshotSvc portssvc.SnapshotSvcFacade,
) portssvc.CycleSvcFacade {
	return &cycleService{
		accountRepo:  accountRepo,
		cycleRepo:    cycleRepo,
		purchaseRepo: purchaseRepo,
		userRepo:     userRepo,
		snapshotSvc:  snapshotSvc,
	}
}

var _ portssvc.CycleSvcFacade = (*cycleService)(nil)

// accountCycleResult holds everything staged for one account's cycle.
type accountCycleResult struct {
	update                   portsrepo.AccountCycleUpdate
	entries                  []domain.LedgerEntry
	isCard                   bool
	interest, payment, spend decimal.Decimal
}

// RunCycle advances every due card and loan of the user by one billing
// cycle. The operation is idempotent by (user, cycle key) and by the
// optional idempotency key; the caller always receives a terminal run.
func (s *cycleService) RunCycle(ctx context.Context, cmd portssvc.RunCycleCommand) (*domain.CycleRun, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := domain.ParseCycleKey(cmd.CycleKey.String()); err != nil {
		return nil, err
	}
	if !cmd.Source.IsValid() {
		return nil, fmt.Errorf("%w: unknown cycle source %q", apperrors.ErrValidation, cmd.Source)
	}
	if _, err := s.userRepo.FindUserByID(ctx, cmd.UserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown user", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	// Idempotency: a completed run for this cycle key wins over everything.
	if run, err := s.cycleRepo.FindCompletedRun(ctx, cmd.UserID, cmd.CycleKey); err == nil {
		logger.Info("Cycle already completed, returning prior run", slog.String("cycle_key", cmd.CycleKey.String()), slog.String("run_id", run.RunID))
		return run, nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up completed run: %w", err)
	}

	// Idempotency key: a retried trigger returns the prior attempt's result
	// unchanged, completed or failed.
	if cmd.IdempotencyKey != nil && *cmd.IdempotencyKey != "" {
		if run, err := s.cycleRepo.FindRunByIdempotencyKey(ctx, cmd.UserID, *cmd.IdempotencyKey); err == nil {
			logger.Info("Duplicate trigger detected by idempotency key, returning prior run", slog.String("run_id", run.RunID))
			return run, nil
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up idempotency key: %w", err)
		}
	}

	cutoff := cmd.CycleKey.Cutoff()
	accounts, err := s.accountRepo.ListDueLiabilityAccounts(ctx, cmd.UserID, cutoff)
	if err != nil {
		logger.Error("Failed to load due liability accounts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load due accounts: %w", err)
	}

	// Stable processing order: counters and failure diagnostics must be
	// reproducible across retries with identical input state.
	sort.SliceStable(accounts, func(i, j int) bool {
		if !accounts[i].CreatedAt.Equal(accounts[j].CreatedAt) {
			return accounts[i].CreatedAt.Before(accounts[j].CreatedAt)
		}
		return accounts[i].AccountID < accounts[j].AccountID
	})

	now := time.Now().UTC()
	runID := uuid.NewString()

	results := make([]accountCycleResult, 0, len(accounts))
	dueCardIDs := make([]string, 0, len(accounts))
	for _, acc := range accounts {
		if !acc.Schedule.IsDue(acc.LastCycleAt, cutoff) {
			continue
		}
		result, err := s.stageAccountCycle(acc, cmd.CycleKey, runID, cmd.UserID, now)
		if err != nil {
			// ComputationFailure: abort the whole run, persist a failed
			// attempt, apply nothing.
			logger.Warn("Cycle computation failed", slog.String("account_id", acc.AccountID), slog.String("error", err.Error()))
			return s.recordFailedRun(ctx, cmd, runID, now, err)
		}
		results = append(results, result)
		if result.isCard {
			dueCardIDs = append(dueCardIDs, acc.AccountID)
		}
	}

	// Pending purchases on due cards post with this cycle's statement month.
	var purchaseUpdates []portsrepo.PurchaseStatementUpdate
	if len(dueCardIDs) > 0 {
		pending, err := s.purchaseRepo.ListPendingPurchasesByAccounts(ctx, cmd.UserID, dueCardIDs)
		if err != nil {
			logger.Error("Failed to load pending purchases", slog.String("error", err.Error()))
			return s.recordFailedRun(ctx, cmd, runID, now, fmt.Errorf("failed to load pending purchases: %w", err))
		}
		purchaseUpdates = make([]portsrepo.PurchaseStatementUpdate, len(pending))
		for i, p := range pending {
			purchaseUpdates[i] = portsrepo.PurchaseStatementUpdate{
				PurchaseID:     p.PurchaseID,
				StatementMonth: cmd.CycleKey,
			}
		}
	}

	run := s.buildRun(cmd, runID, now, results, len(purchaseUpdates), domain.RunCompleted, nil)
	apply := portsrepo.CycleApply{
		Run:             run,
		Audit:           buildAuditRecord(run),
		PurchaseUpdates: purchaseUpdates,
	}
	for _, r := range results {
		apply.AccountUpdates = append(apply.AccountUpdates, r.update)
		apply.Entries = append(apply.Entries, r.entries...)
	}

	if err := s.cycleRepo.ApplyCycle(ctx, apply); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// A concurrent writer won the race; their result stands.
			logger.Info("Lost cycle apply race, returning winner's run", slog.String("cycle_key", cmd.CycleKey.String()))
			return s.resolveConflict(ctx, cmd)
		}
		logger.Error("Failed to apply cycle atomically", slog.String("error", err.Error()))
		return s.recordFailedRun(ctx, cmd, runID, now, fmt.Errorf("cycle apply failed: %w", err))
	}

	logger.Info("Cycle completed",
		slog.String("run_id", run.RunID),
		slog.String("cycle_key", cmd.CycleKey.String()),
		slog.Int("accounts_updated", run.Counters.AccountsUpdated),
		slog.String("interest_accrued", run.Counters.InterestAccrued.String()),
	)

	if cmd.CloseMonth {
		if _, err := s.snapshotSvc.CloseMonth(ctx, cmd.UserID, cmd.CycleKey); err != nil {
			// The run is committed; the snapshot can be recreated by a
			// later close for the same key.
			logger.Error("Month-close snapshot failed after completed run", slog.String("error", err.Error()))
		}
	}

	return &run, nil
}

// stageAccountCycle computes one account's cycle deltas and builds the
// corresponding balanced ledger entries. Pure apart from minted IDs.
func (s *cycleService) stageAccountCycle(acc domain.Account, cycleKey domain.CycleKey, runID, userID string, now time.Time) (accountCycleResult, error) {
	if acc.Balance.LessThan(decimal.Zero) {
		return accountCycleResult{}, fmt.Errorf("account %s has negative balance %s", acc.AccountID, acc.Balance)
	}

	key := cycleKey
	refID := acc.AccountID

	switch acc.AccountType {
	case domain.AccountCreditCard:
		spend := accounting.CardSpendForCycle(acc.RecurringSpend)
		interest := accounting.AccrueCardInterest(acc.Balance, acc.InterestRateAPR)
		balanceWithSpend := acc.Balance.Add(spend)
		payment := accounting.CardPayment(balanceWithSpend, interest, acc.MinPayment)
		newBalance := balanceWithSpend.Add(interest).Sub(payment)

		entries, err := buildCycleEntries(userID, acc.Name, refID, &key, now, []PostingIntent{
			{EntryType: domain.EntryCycleCardSpend, Amount: spend, Description: fmt.Sprintf("Monthly spend on %s", acc.Name)},
			{EntryType: domain.EntryCycleCardInterest, Amount: interest, Description: fmt.Sprintf("Interest accrued on %s", acc.Name)},
			{EntryType: domain.EntryCycleCardPayment, Amount: payment, Description: fmt.Sprintf("Payment applied to %s", acc.Name)},
		})
		if err != nil {
			return accountCycleResult{}, err
		}
		return accountCycleResult{
			update: portsrepo.AccountCycleUpdate{
				AccountID:   acc.AccountID,
				NewBalance:  newBalance,
				LastCycleAt: now,
			},
			entries:  entries,
			isCard:   true,
			interest: interest,
			payment:  payment,
			spend:    spend,
		}, nil

	case domain.AccountLoan:
		interest, payment := accounting.LoanInterestAndPayment(acc.Balance, acc.InterestRateAPR, acc.MinPayment.FixedAmount)
		newBalance := acc.Balance.Add(interest).Sub(payment)

		entries, err := buildCycleEntries(userID, acc.Name, refID, &key, now, []PostingIntent{
			{EntryType: domain.EntryCycleLoanInterest, Amount: interest, Description: fmt.Sprintf("Interest accrued on %s", acc.Name)},
			{EntryType: domain.EntryCycleLoanPayment, Amount: payment, Description: fmt.Sprintf("Payment applied to %s", acc.Name)},
		})
		if err != nil {
			return accountCycleResult{}, err
		}
		return accountCycleResult{
			update: portsrepo.AccountCycleUpdate{
				AccountID:   acc.AccountID,
				NewBalance:  newBalance,
				LastCycleAt: now,
			},
			entries:  entries,
			interest: interest,
			payment:  payment,
		}, nil

	default:
		return accountCycleResult{}, fmt.Errorf("account %s is not a liability account (%s)", acc.AccountID, acc.AccountType)
	}
}

// buildCycleEntries builds entries for the non-zero intents, in the fixed
// order given.
func buildCycleEntries(userID, accountName, refID string, cycleKey *domain.CycleKey, now time.Time, intents []PostingIntent) ([]domain.LedgerEntry, error) {
	entries := make([]domain.LedgerEntry, 0, len(intents))
	for _, intent := range intents {
		if intent.Amount.LessThanOrEqual(decimal.Zero) {
			continue
		}
		intent.ReferenceID = &refID
		intent.CycleKey = cycleKey
		intent.OccurredAt = now
		entry, err := BuildLedgerEntry(userID, intent, userID, now)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// buildRun assembles a run record with aggregated counters.
func (s *cycleService) buildRun(cmd portssvc.RunCycleCommand, runID string, now time.Time, results []accountCycleResult, purchasesPosted int, status domain.CycleRunStatus, failureReason *string) domain.CycleRun {
	counters := domain.CycleCounters{
		PurchasesPosted: purchasesPosted,
		InterestAccrued: decimal.Zero,
		PaymentsApplied: decimal.Zero,
		SpendAdded:      decimal.Zero,
	}
	for _, r := range results {
		counters.AccountsUpdated++
		if r.isCard {
			counters.CardCycles++
		} else {
			counters.LoanCycles++
		}
		counters.InterestAccrued = counters.InterestAccrued.Add(r.interest)
		counters.PaymentsApplied = counters.PaymentsApplied.Add(r.payment)
		counters.SpendAdded = counters.SpendAdded.Add(r.spend)
	}

	return domain.CycleRun{
		RunID:          runID,
		UserID:         cmd.UserID,
		CycleKey:       cmd.CycleKey,
		Source:         cmd.Source,
		Status:         status,
		IdempotencyKey: cmd.IdempotencyKey,
		FailureReason:  failureReason,
		Counters:       counters,
		CreatedAt:      now,
	}
}

// recordFailedRun persists a failed attempt carrying the reason. No staged
// mutation is applied; the caller may retry the cycle from scratch.
func (s *cycleService) recordFailedRun(ctx context.Context, cmd portssvc.RunCycleCommand, runID string, now time.Time, cause error) (*domain.CycleRun, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	reason := cause.Error()
	run := s.buildRun(cmd, runID, now, nil, 0, domain.RunFailed, &reason)
	if err := s.cycleRepo.SaveFailedRun(ctx, run); err != nil {
		logger.Error("Failed to persist failed run", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to record failed run: %w", err)
	}
	logger.Warn("Cycle run failed", slog.String("run_id", run.RunID), slog.String("reason", reason))
	return &run, nil
}

// resolveConflict re-reads the run that won a concurrent apply race.
func (s *cycleService) resolveConflict(ctx context.Context, cmd portssvc.RunCycleCommand) (*domain.CycleRun, error) {
	if run, err := s.cycleRepo.FindCompletedRun(ctx, cmd.UserID, cmd.CycleKey); err == nil {
		return run, nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve apply conflict: %w", err)
	}
	if cmd.IdempotencyKey != nil && *cmd.IdempotencyKey != "" {
		if run, err := s.cycleRepo.FindRunByIdempotencyKey(ctx, cmd.UserID, *cmd.IdempotencyKey); err == nil {
			return run, nil
		}
	}
	return nil, apperrors.ErrConflict
}

// buildAuditRecord mirrors a completed run's counters for long-term audit.
func buildAuditRecord(run domain.CycleRun) domain.AuditLogRecord {
	return domain.AuditLogRecord{
		AuditID:         uuid.NewString(),
		UserID:          run.UserID,
		RunID:           run.RunID,
		CycleKey:        run.CycleKey,
		Source:          run.Source,
		AccountsUpdated: run.Counters.AccountsUpdated,
		CardCycles:      run.Counters.CardCycles,
		LoanCycles:      run.Counters.LoanCycles,
		InterestAccrued: run.Counters.InterestAccrued,
		PaymentsApplied: run.Counters.PaymentsApplied,
		SpendAdded:      run.Counters.SpendAdded,
		CreatedAt:       run.CreatedAt,
	}
}

// GetRunForCycle retrieves the completed run for a cycle key.
func (s *cycleService) GetRunForCycle(ctx context.Context, userID string, cycleKey domain.CycleKey) (*domain.CycleRun, error) {
	run, err := s.cycleRepo.FindCompletedRun(ctx, userID, cycleKey)
	if err != nil {
		return nil, fmt.Errorf("failed to find run for cycle %s: %w", cycleKey, err)
	}
	return run, nil
}

// ListRuns retrieves the user's runs, newest first.
func (s *cycleService) ListRuns(ctx context.Context, userID string, limit int) ([]domain.CycleRun, error) {
	if limit <= 0 {
		limit = 20
	}
	runs, err := s.cycleRepo.ListRunsByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list cycle runs: %w", err)
	}
	return runs, nil
}

// ListAuditRecords retrieves the user's audit trail, newest first.
func (s *cycleService) ListAuditRecords(ctx context.Context, userID string, limit int) ([]domain.AuditLogRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	records, err := s.cycleRepo.ListAuditRecordsByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}
	return records, nil
}
