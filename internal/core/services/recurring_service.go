package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/captainmuzzol/OpenPercento/internal/apperrors"
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	portsrepo "github.com/captainmuzzol/OpenPercento/internal/core/ports/repositories"
	portssvc "github.com/captainmuzzol/OpenPercento/internal/core/ports/services"
	"github.com/captainmuzzol/OpenPercento/internal/core/recurring"
	"github.com/captainmuzzol/OpenPercento/internal/dto"
)

type recurringRuleService struct {
	BaseService
	ruleRepo       portsrepo.RecurringRuleRepositoryFacade
	accountRepo    portsrepo.AccountReader
	investmentRepo portsrepo.InvestmentReader
	runner         portssvc.RecurringRunnerSvc
}

// NewRecurringRuleService creates the rule service. runner performs RunDue and takes
// the write lock itself, so it must share the lock given through WithWriteLock.
func NewRecurringRuleService(
	ruleRepo portsrepo.RecurringRuleRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	investmentRepo portsrepo.InvestmentReader,
	runner portssvc.RecurringRunnerSvc,
	options ...ServiceOption,
) portssvc.RecurringRuleSvcFacade {
	return &recurringRuleService{
		BaseService:    applyOptions(options),
		ruleRepo:       ruleRepo,
		accountRepo:    accountRepo,
		investmentRepo: investmentRepo,
		runner:         runner,
	}
}

var _ portssvc.RecurringRuleSvcFacade = (*recurringRuleService)(nil)

func (s *recurringRuleService) CreateRecurringRule(ctx context.Context, req dto.CreateRecurringRuleRequest) (*domain.RecurringRule, error) {
	action, ok := domain.ParseRuleAction(req.Action)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported action %q", apperrors.ErrValidation, req.Action)
	}
	schedule := domain.Schedule{
		Frequency: domain.Frequency(req.Frequency).Normalize(),
		Weekday:   req.Weekday,
		MonthDay:  req.MonthDay,
		YearDay:   req.YearDay,
	}
	if !schedule.Frequency.Valid() {
		return nil, fmt.Errorf("%w: unsupported frequency %q", apperrors.ErrValidation, req.Frequency)
	}
	if req.Amount == nil || !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	// Participants must exist now; the engine re-checks them per occurrence.
	payload := domain.NewRulePayload(action, domain.ParticipantRefs{
		AccountID:     req.AccountID,
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		InvestmentID:  req.InvestmentID,
	})
	if err := s.validatePayload(ctx, payload); err != nil {
		return nil, err
	}

	// Kind is a free-form label and defaults to the action.
	kind := strings.TrimSpace(req.Kind)
	if kind == "" {
		kind = string(action)
	}
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	// An explicit nextRun wins over the first occurrence on or after today.
	nextRun := recurring.InitialNextRun(schedule, s.Clock.Today())
	if req.NextRun != nil && *req.NextRun != "" {
		if _, ok := domain.ParseDate(*req.NextRun); !ok {
			return nil, fmt.Errorf("%w: nextRun must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		nextRun = *req.NextRun
	}

	now := s.now()
	rule := domain.RecurringRule{
		Kind:         kind,
		Schedule:     schedule,
		Payload:      payload,
		Amount:       *req.Amount,
		Note:         req.Note,
		Enabled:      enabled,
		NextRun:      nextRun,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
		StoredAction: string(action),
	}

	unlock := s.lockWrites()
	defer unlock()

	if err := s.ruleRepo.SaveRecurringRule(ctx, &rule); err != nil {
		s.LogError(ctx, err, "Failed to save recurring rule", slog.String("action", string(action)))
		return nil, fmt.Errorf("failed to create recurring rule: %w", err)
	}

	s.LogInfo(ctx, "Recurring rule created",
		slog.Int64("rule_id", rule.ID),
		slog.String("action", string(action)),
		slog.String("next_run", rule.NextRun))
	return &rule, nil
}

func (s *recurringRuleService) GetRecurringRuleByID(ctx context.Context, ruleID int64) (*domain.RecurringRule, error) {
	rule, err := s.ruleRepo.FindRecurringRuleByID(ctx, ruleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find recurring rule", slog.Int64("rule_id", ruleID))
		}
		return nil, err
	}
	return rule, nil
}

func (s *recurringRuleService) ListRecurringRules(ctx context.Context, params dto.ListRecurringRulesParams) ([]domain.RecurringRule, error) {
	rules, err := s.ruleRepo.ListRecurringRules(ctx, portsrepo.RecurringRuleFilter{
		Kind:         strings.TrimSpace(params.Kind),
		AccountID:    params.AccountID,
		InvestmentID: params.InvestmentID,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list recurring rules")
		return nil, fmt.Errorf("failed to list recurring rules: %w", err)
	}
	if rules == nil {
		return []domain.RecurringRule{}, nil
	}
	return rules, nil
}

// UpdateRecurringRule applies the given fields. A schedule change without an explicit
// nextRun restarts the rule from today's next occurrence.
func (s *recurringRuleService) UpdateRecurringRule(ctx context.Context, ruleID int64, req dto.UpdateRecurringRuleRequest) (*domain.RecurringRule, error) {
	unlock := s.lockWrites()
	defer unlock()

	// Fetch the current rule
	rule, err := s.ruleRepo.FindRecurringRuleByID(ctx, ruleID)
	if err != nil {
		return nil, err
	}

	// Stored action and references are kept unless the request touches them.
	action := rule.Action()
	if req.Action != nil {
		parsed, ok := domain.ParseRuleAction(*req.Action)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported action %q", apperrors.ErrValidation, *req.Action)
		}
		action = parsed
	}

	participantsChanged := req.Action != nil || req.AccountID != nil || req.FromAccountID != nil ||
		req.ToAccountID != nil || req.InvestmentID != nil
	if participantsChanged {
		refs := rule.Refs()
		if req.AccountID != nil {
			refs.AccountID = req.AccountID
		}
		if req.FromAccountID != nil {
			refs.FromAccountID = req.FromAccountID
		}
		if req.ToAccountID != nil {
			refs.ToAccountID = req.ToAccountID
		}
		if req.InvestmentID != nil {
			refs.InvestmentID = req.InvestmentID
		}
		payload := domain.NewRulePayload(action, refs)
		if payload == nil {
			return nil, fmt.Errorf("%w: unsupported action %q", apperrors.ErrValidation, action)
		}
		if err := s.validatePayload(ctx, payload); err != nil {
			return nil, err
		}
		rule.Payload = payload
		rule.StoredAction = string(action)
	}

	// Schedule fields
	scheduleChanged := false
	if req.Frequency != nil {
		freq := domain.Frequency(*req.Frequency).Normalize()
		if !freq.Valid() {
			return nil, fmt.Errorf("%w: unsupported frequency %q", apperrors.ErrValidation, *req.Frequency)
		}
		rule.Schedule.Frequency = freq
		scheduleChanged = true
	}
	if req.Weekday != nil {
		rule.Schedule.Weekday = req.Weekday
		scheduleChanged = true
	}
	if req.MonthDay != nil {
		rule.Schedule.MonthDay = req.MonthDay
		scheduleChanged = true
	}
	if req.YearDay != nil {
		rule.Schedule.YearDay = req.YearDay
		scheduleChanged = true
	}

	switch {
	// An explicit nextRun wins; otherwise a new schedule restarts from today.
	case req.NextRun != nil && *req.NextRun != "":
		if _, ok := domain.ParseDate(*req.NextRun); !ok {
			return nil, fmt.Errorf("%w: nextRun must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		rule.NextRun = *req.NextRun
	case scheduleChanged:
		rule.NextRun = recurring.InitialNextRun(rule.Schedule, s.Clock.Today())
	}

	// Remaining descriptive fields
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		rule.Amount = *req.Amount
	}
	if req.Kind != nil && strings.TrimSpace(*req.Kind) != "" {
		rule.Kind = strings.TrimSpace(*req.Kind)
	}
	if req.Note != nil {
		rule.Note = req.Note
	}
	if req.Enabled != nil {
		rule.Enabled = *req.Enabled
	}
	rule.UpdatedAt = s.now()

	if err := s.ruleRepo.UpdateRecurringRule(ctx, *rule); err != nil {
		s.LogError(ctx, err, "Failed to update recurring rule", slog.Int64("rule_id", ruleID))
		return nil, fmt.Errorf("failed to update recurring rule: %w", err)
	}

	s.LogInfo(ctx, "Recurring rule updated", slog.Int64("rule_id", ruleID), slog.String("next_run", rule.NextRun))
	return rule, nil
}

func (s *recurringRuleService) DeleteRecurringRule(ctx context.Context, ruleID int64) error {
	unlock := s.lockWrites()
	defer unlock()

	if err := s.ruleRepo.DeleteRecurringRule(ctx, ruleID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete recurring rule", slog.Int64("rule_id", ruleID))
		}
		return err
	}
	s.LogInfo(ctx, "Recurring rule deleted", slog.Int64("rule_id", ruleID))
	return nil
}

// RunDue delegates to the runner, which serialises itself on the shared write lock.
func (s *recurringRuleService) RunDue(ctx context.Context) (domain.RunResult, error) {
	result, err := s.runner.RunDue(ctx)
	if err != nil {
		s.LogError(ctx, err, "Recurring pass failed",
			slog.Int("processed", result.Processed),
			slog.Int("executed", result.Executed))
		return result, fmt.Errorf("failed to run due recurring rules: %w", err)
	}
	return result, nil
}

// validatePayload checks that every participant is set and exists when the rule is
// saved. The engine still re-checks on each occurrence.
func (s *recurringRuleService) validatePayload(ctx context.Context, payload domain.RulePayload) error {
	switch p := payload.(type) {
	case domain.IncomePayload:
		return s.requireAccount(ctx, "accountId", p.AccountID)
	case domain.TransferPayload:
		if err := s.requireAccount(ctx, "fromAccountId", p.FromAccountID); err != nil {
			return err
		}
		if err := s.requireAccount(ctx, "toAccountId", p.ToAccountID); err != nil {
			return err
		}
		if p.FromAccountID == p.ToAccountID {
			return fmt.Errorf("%w: transfer source and destination must differ", apperrors.ErrValidation)
		}
		return nil
	case domain.DCAPayload:
		if err := s.requireAccount(ctx, "fromAccountId", p.FromAccountID); err != nil {
			return err
		}
		return s.requireInvestment(ctx, p.InvestmentID)
	default:
		return fmt.Errorf("%w: unsupported action", apperrors.ErrValidation)
	}
}

func (s *recurringRuleService) requireAccount(ctx context.Context, field string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s is required", apperrors.ErrValidation, field)
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: %s %d does not exist", apperrors.ErrValidation, field, id)
		}
		return err
	}
	return nil
}

func (s *recurringRuleService) requireInvestment(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: investmentId is required", apperrors.ErrValidation)
	}
	if _, err := s.investmentRepo.FindInvestmentByID(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: investmentId %d does not exist", apperrors.ErrValidation, id)
		}
		return err
	}
	return nil
}
