package services

import (
	"context"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/captainmuzzol/OpenPercento/internal/dto"
)

// RecurringRuleReaderSvc defines read operations for recurring rules
type RecurringRuleReaderSvc interface {
	GetRecurringRuleByID(ctx context.Context, ruleID int64) (*domain.RecurringRule, error)
	ListRecurringRules(ctx context.Context, params dto.ListRecurringRulesParams) ([]domain.RecurringRule, error)
}

// RecurringRuleWriterSvc defines owner-driven changes to recurring rules
type RecurringRuleWriterSvc interface {
	CreateRecurringRule(ctx context.Context, req dto.CreateRecurringRuleRequest) (*domain.RecurringRule, error)
	UpdateRecurringRule(ctx context.Context, ruleID int64, req dto.UpdateRecurringRuleRequest) (*domain.RecurringRule, error)
	DeleteRecurringRule(ctx context.Context, ruleID int64) error
}

// RecurringRunnerSvc triggers the recurring engine.
type RecurringRunnerSvc interface {
	// RunDue applies every due occurrence of every enabled rule up to today.
	RunDue(ctx context.Context) (domain.RunResult, error)
}

// RecurringPassReporter publishes the outcome of a finished recurring pass.
type RecurringPassReporter interface {
	ReportRecurringPass(trigger string, result domain.RunResult)
}

// RecurringRuleSvcFacade combines all recurring rule services
type RecurringRuleSvcFacade interface {
	RecurringRuleReaderSvc
	RecurringRuleWriterSvc
	RecurringRunnerSvc
}
