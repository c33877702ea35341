package recurring

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	portsrepo "github.com/captainmuzzol/OpenPercento/internal/core/ports/repositories"
	"github.com/captainmuzzol/OpenPercento/internal/middleware"
)

// Runner drives every enabled rule through its due occurrences.
type Runner struct {
	store   portsrepo.LedgerStore
	applier Applier
	clock   Clock
	writeMu sync.Locker
	logger  *slog.Logger
}

// RunnerOption is a functional option for configuring the runner
type RunnerOption func(*Runner)

// WithApplier replaces the effect applier.
func WithApplier(applier Applier) RunnerOption {
	return func(r *Runner) {
		r.applier = applier
	}
}

// WithClock sets the clock "today" is read from.
func WithClock(clock Clock) RunnerOption {
	return func(r *Runner) {
		r.clock = clock
	}
}

// WithWriteLock sets the lock held for the whole pass. It must be the same lock
// every other ledger writer of the process takes.
func WithWriteLock(mu sync.Locker) RunnerOption {
	return func(r *Runner) {
		r.writeMu = mu
	}
}

// WithLogger sets the logger used for pass and rule outcomes.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a runner over store.
func NewRunner(store portsrepo.LedgerStore, opts ...RunnerOption) *Runner {
	r := &Runner{
		store:   store,
		clock:   SystemClock{},
		writeMu: &sync.Mutex{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.applier == nil {
		r.applier = NewEffectApplier(r.clock)
	}
	return r
}

// RunDue applies every due occurrence of every enabled rule, in ascending rule id order.
//
// Each occurrence is committed on its own together with the rule's new lastRun and
// nextRun, so a pass aborted by ctx or by a store error leaves the ledger consistent and
// the next pass resumes where it stopped. Declined occurrences do not abort the pass;
// they are reported in RunResult.Stuck.
func (r *Runner) RunDue(ctx context.Context) (domain.RunResult, error) {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	result := domain.RunResult{Stuck: []domain.StuckRule{}}
	logger := r.loggerFor(ctx)

	rules, err := r.store.ListEnabledRecurringRules(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to list enabled recurring rules: %w", err)
	}
	slices.SortFunc(rules, func(a, b domain.RecurringRule) int { return cmp.Compare(a.ID, b.ID) })

	today := r.clock.Today()
	for _, rule := range rules {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := r.catchUp(ctx, logger, rule, today, &result); err != nil {
			logger.Error("Recurring pass aborted",
				slog.Int64("rule_id", rule.ID),
				slog.String("error", err.Error()))
			return result, err
		}
	}

	logger.Info("Recurring pass finished",
		slog.String("today", domain.FormatDate(today)),
		slog.Int("rules", len(rules)),
		slog.Int("processed", result.Processed),
		slog.Int("executed", result.Executed),
		slog.Int("stuck", len(result.Stuck)))
	return result, nil
}

// catchUp advances one rule until it is no longer due, is declined, or reaches the
// per-pass bound.
func (r *Runner) catchUp(ctx context.Context, logger *slog.Logger, rule domain.RecurringRule, today time.Time, result *domain.RunResult) error {
	if !rule.Enabled {
		return nil
	}
	logger = logger.With(slog.Int64("rule_id", rule.ID))

	nextRun := rule.NextRun
	if nextRun == "" {
		nextRun = InitialNextRun(rule.Schedule, today)
		if nextRun == "" {
			logger.Warn("Recurring rule has no computable occurrence",
				slog.String("frequency", string(rule.Schedule.Frequency)))
			return nil
		}
		err := r.store.WithinTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
			return tx.UpdateRuleSchedule(ctx, rule.ID, nextRun, rule.LastRun, r.clock.Now())
		})
		if err != nil {
			return fmt.Errorf("failed to initialise next run of rule %d: %w", rule.ID, err)
		}
		logger.Debug("Recurring rule initialised", slog.String("next_run", nextRun))
	}

	due, ok := domain.ParseDate(nextRun)
	if !ok {
		logger.Warn("Recurring rule has an unparseable next run", slog.String("next_run", nextRun))
		return nil
	}

	// Without a known frequency the schedule cannot advance past the first
	// occurrence, so nothing is applied and the rule is reported instead.
	if !rule.Schedule.Frequency.Valid() {
		if due.After(today) {
			return nil
		}
		result.Processed++
		logger.Warn("Recurring rule has an unsupported frequency",
			slog.String("frequency", string(rule.Schedule.Frequency)),
			slog.String("next_run", nextRun))
		result.Stuck = append(result.Stuck, domain.StuckRule{
			RuleID:  rule.ID,
			NextRun: nextRun,
			Reason:  ErrUnsupportedFrequency.Error(),
		})
		return nil
	}

	for occ := range Occurrences(rule.Schedule, nextRun, today) {
		if err := ctx.Err(); err != nil {
			return err
		}
		result.Processed++

		// The effect and the schedule move commit together or not at all.
		lastRun := occ.Date
		err := r.store.WithinTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
			if err := r.applier.Apply(ctx, tx, rule, occ.Date); err != nil {
				return err
			}
			return tx.UpdateRuleSchedule(ctx, rule.ID, occ.Next, &lastRun, r.clock.Now())
		})
		// A declined occurrence stays due; later ones wait behind it.
		if IsDeclined(err) {
			logger.Warn("Recurring occurrence declined",
				slog.String("next_run", occ.Date),
				slog.String("reason", err.Error()))
			result.Stuck = append(result.Stuck, domain.StuckRule{
				RuleID:  rule.ID,
				NextRun: occ.Date,
				Reason:  err.Error(),
			})
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to apply rule %d occurrence %s: %w", rule.ID, occ.Date, err)
		}

		result.Executed++
		logger.Debug("Recurring occurrence applied",
			slog.String("date", occ.Date),
			slog.String("next_run", occ.Next))
	}
	return nil
}

// loggerFor prefers the request-scoped logger so passes triggered over HTTP
// carry the request id.
func (r *Runner) loggerFor(ctx context.Context) *slog.Logger {
	if logger, ok := middleware.LoggerFromCtx(ctx); ok {
		return logger
	}
	return r.logger
}
