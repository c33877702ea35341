package dto

import (
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecurringRuleRequest defines the data needed to create a recurring rule.
// Which participant ids are required depends on Action:
// income needs accountId, transfer needs toAccountId and fromAccountId (or accountId),
// dca needs fromAccountId and investmentId.
// Enabled defaults to true; NextRun is computed from today when absent.
type CreateRecurringRuleRequest struct {
	Kind          string           `json:"kind"`
	Action        string           `json:"action" binding:"required,ruleaction"`
	AccountID     *int64           `json:"accountId" binding:"omitempty,min=1"`
	FromAccountID *int64           `json:"fromAccountId" binding:"omitempty,min=1"`
	ToAccountID   *int64           `json:"toAccountId" binding:"omitempty,min=1"`
	InvestmentID  *int64           `json:"investmentId" binding:"omitempty,min=1"`
	Frequency     string           `json:"frequency" binding:"required,frequency"`
	Weekday       *int             `json:"weekday" binding:"omitempty,min=0,max=7"`
	MonthDay      *int             `json:"monthDay" binding:"omitempty,min=1,max=31"`
	YearDay       *int             `json:"yearDay" binding:"omitempty,min=1,max=366"`
	Amount        *decimal.Decimal `json:"amount" binding:"required"`
	Note          *string          `json:"note"`
	Enabled       *bool            `json:"enabled"`
	NextRun       *string          `json:"nextRun" binding:"omitempty,isodate"`
}

// UpdateRecurringRuleRequest defines the fields an owner may change on a rule.
// Changing the schedule without giving nextRun recomputes it from today.
type UpdateRecurringRuleRequest struct {
	Kind          *string          `json:"kind"`
	Action        *string          `json:"action" binding:"omitempty,ruleaction"`
	AccountID     *int64           `json:"accountId" binding:"omitempty,min=1"`
	FromAccountID *int64           `json:"fromAccountId" binding:"omitempty,min=1"`
	ToAccountID   *int64           `json:"toAccountId" binding:"omitempty,min=1"`
	InvestmentID  *int64           `json:"investmentId" binding:"omitempty,min=1"`
	Frequency     *string          `json:"frequency" binding:"omitempty,frequency"`
	Weekday       *int             `json:"weekday" binding:"omitempty,min=0,max=7"`
	MonthDay      *int             `json:"monthDay" binding:"omitempty,min=1,max=31"`
	YearDay       *int             `json:"yearDay" binding:"omitempty,min=1,max=366"`
	Amount        *decimal.Decimal `json:"amount"`
	Note          *string          `json:"note"`
	Enabled       *bool            `json:"enabled"`
	NextRun       *string          `json:"nextRun" binding:"omitempty,isodate"`
}

// ListRecurringRulesParams defines query parameters for listing rules.
type ListRecurringRulesParams struct {
	Kind         string `form:"kind"`
	AccountID    *int64 `form:"accountId" binding:"omitempty,min=1"`
	InvestmentID *int64 `form:"investmentId" binding:"omitempty,min=1"`
}

// RecurringRuleResponse is the flat wire shape of a rule.
type RecurringRuleResponse struct {
	ID            int64           `json:"id"`
	Kind          string          `json:"kind"`
	Action        string          `json:"action"`
	AccountID     *int64          `json:"accountId"`
	FromAccountID *int64          `json:"fromAccountId"`
	ToAccountID   *int64          `json:"toAccountId"`
	InvestmentID  *int64          `json:"investmentId"`
	Frequency     string          `json:"frequency"`
	Weekday       *int            `json:"weekday"`
	MonthDay      *int            `json:"monthDay"`
	YearDay       *int            `json:"yearDay"`
	Amount        decimal.Decimal `json:"amount"`
	Note          *string         `json:"note"`
	Enabled       bool            `json:"enabled"`
	NextRun       *string         `json:"nextRun"`
	LastRun       *string         `json:"lastRun"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func ToRecurringRuleResponse(r *domain.RecurringRule) RecurringRuleResponse {
	refs := r.Refs()
	res := RecurringRuleResponse{
		ID:            r.ID,
		Kind:          r.Kind,
		Action:        string(r.Action()),
		AccountID:     refs.AccountID,
		FromAccountID: refs.FromAccountID,
		ToAccountID:   refs.ToAccountID,
		InvestmentID:  refs.InvestmentID,
		Frequency:     string(r.Schedule.Frequency),
		Weekday:       r.Schedule.Weekday,
		MonthDay:      r.Schedule.MonthDay,
		YearDay:       r.Schedule.YearDay,
		Amount:        r.Amount,
		Note:          r.Note,
		Enabled:       r.Enabled,
		LastRun:       r.LastRun,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.NextRun != "" {
		next := r.NextRun
		res.NextRun = &next
	}
	return res
}

func ToListRecurringRuleResponse(rules []domain.RecurringRule) []RecurringRuleResponse {
	res := make([]RecurringRuleResponse, len(rules))
	for i := range rules {
		res[i] = ToRecurringRuleResponse(&rules[i])
	}
	return res
}

type ListRecurringRulesResponse struct {
	Rules []RecurringRuleResponse `json:"rules"`
}

// RunDueResponse reports one pass of the recurring engine.
type RunDueResponse struct {
	Processed int                `json:"processed"`
	Executed  int                `json:"executed"`
	Stuck     []domain.StuckRule `json:"stuck"`
}

func ToRunDueResponse(res domain.RunResult) RunDueResponse {
	stuck := res.Stuck
	if stuck == nil {
		stuck = []domain.StuckRule{}
	}
	return RunDueResponse{Processed: res.Processed, Executed: res.Executed, Stuck: stuck}
}
