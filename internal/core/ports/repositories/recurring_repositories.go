package repositories

import (
	"context"
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
)

// RecurringRuleFilter narrows a rule listing. Zero values are ignored.
type RecurringRuleFilter struct {
	Kind         string
	AccountID    *int64
	InvestmentID *int64
}

// RecurringRuleReader defines read operations for recurring rules
type RecurringRuleReader interface {
	// FindRecurringRuleByID retrieves a specific rule.
	FindRecurringRuleByID(ctx context.Context, ruleID int64) (*domain.RecurringRule, error)

	// ListRecurringRules retrieves rules matching filter, newest first.
	ListRecurringRules(ctx context.Context, filter RecurringRuleFilter) ([]domain.RecurringRule, error)

	// ListEnabledRecurringRules retrieves every enabled rule in ascending id order.
	ListEnabledRecurringRules(ctx context.Context) ([]domain.RecurringRule, error)
}

// RecurringRuleWriter defines owner-driven write operations for recurring rules
type RecurringRuleWriter interface {
	// SaveRecurringRule inserts a new rule and sets its ID.
	SaveRecurringRule(ctx context.Context, rule *domain.RecurringRule) error

	// UpdateRecurringRule replaces the stored fields of a rule.
	UpdateRecurringRule(ctx context.Context, rule domain.RecurringRule) error

	// DeleteRecurringRule removes a rule.
	DeleteRecurringRule(ctx context.Context, ruleID int64) error
}

// RuleScheduleWriter is the only rule write the recurring engine performs.
type RuleScheduleWriter interface {
	// UpdateRuleSchedule stores nextRun and lastRun of a rule. An empty nextRun is stored as NULL.
	UpdateRuleSchedule(ctx context.Context, ruleID int64, nextRun string, lastRun *string, now time.Time) error
}

// RecurringRuleRepositoryFacade combines the rule read and write interfaces
type RecurringRuleRepositoryFacade interface {
	RecurringRuleReader
	RecurringRuleWriter
}
