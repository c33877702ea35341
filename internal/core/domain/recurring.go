package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RuleAction is the financial effect a recurring rule applies on each occurrence.
type RuleAction string

const (
	ActionIncome   RuleAction = "income"
	ActionTransfer RuleAction = "transfer"
	ActionDCA      RuleAction = "dca"
)

// ParseRuleAction normalises a stored or requested action label.
// ok is false for labels that do not name a supported action.
func ParseRuleAction(s string) (RuleAction, bool) {
	switch a := RuleAction(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionIncome, ActionTransfer, ActionDCA:
		return a, true
	default:
		return RuleAction(s), false
	}
}

// Frequency is how often a recurring rule fires.
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

// Normalize lower-cases the frequency label.
func (f Frequency) Normalize() Frequency {
	return Frequency(strings.ToLower(strings.TrimSpace(string(f))))
}

// Valid reports whether f names a supported frequency.
func (f Frequency) Valid() bool {
	switch f.Normalize() {
	case Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}

// Schedule is the frequency descriptor of a rule. Only the parameter matching the
// frequency is consulted: Weekday for weekly, MonthDay for monthly, YearDay for yearly.
type Schedule struct {
	Frequency Frequency `json:"frequency"`
	Weekday   *int      `json:"weekday"`  // 0 = Sunday, 1-6 = Monday-Saturday
	MonthDay  *int      `json:"monthDay"` // 1-31
	YearDay   *int      `json:"yearDay"`  // 1-366
}

// TargetWeekday resolves the weekday a weekly rule fires on. Monday is used when none
// is set and 7 is accepted as Sunday; ok is false for any other out-of-range value.
func (s Schedule) TargetWeekday() (time.Weekday, bool) {
	if s.Weekday == nil {
		return time.Monday, true
	}
	w := *s.Weekday
	if w == 7 {
		w = 0
	}
	if w < 0 || w > 6 {
		return 0, false
	}
	return time.Weekday(w), true
}

// TargetMonthDay is the requested day of month clamped to [1,31]; unset means 1.
func (s Schedule) TargetMonthDay() int {
	if s.MonthDay == nil {
		return 1
	}
	return clampInt(*s.MonthDay, 1, 31)
}

// TargetYearDay is the requested 1-based day of year; unset or non-positive means 1.
// The upper bound depends on the target year and is applied by the calendar.
func (s Schedule) TargetYearDay() int {
	if s.YearDay == nil || *s.YearDay < 1 {
		return 1
	}
	return *s.YearDay
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RulePayload carries the participants of one rule action. It is implemented by
// IncomePayload, TransferPayload and DCAPayload only.
type RulePayload interface {
	Action() RuleAction
	isRulePayload()
}

// IncomePayload credits AccountID on every occurrence.
type IncomePayload struct {
	AccountID int64
}

// TransferPayload moves money from FromAccountID to ToAccountID.
type TransferPayload struct {
	FromAccountID int64
	ToAccountID   int64
}

// DCAPayload buys into InvestmentID with money from FromAccountID.
type DCAPayload struct {
	FromAccountID int64
	InvestmentID  int64
}

func (IncomePayload) Action() RuleAction   { return ActionIncome }
func (TransferPayload) Action() RuleAction { return ActionTransfer }
func (DCAPayload) Action() RuleAction      { return ActionDCA }

func (IncomePayload) isRulePayload()   {}
func (TransferPayload) isRulePayload() {}
func (DCAPayload) isRulePayload()      {}

// ParticipantRefs is the flat, storage-level view of the references a rule may carry.
// A zero or nil id means the reference is absent.
type ParticipantRefs struct {
	AccountID     *int64
	FromAccountID *int64
	ToAccountID   *int64
	InvestmentID  *int64
}

func refValue(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

func refPtr(v int64) *int64 {
	if v == 0 {
		return nil
	}
	return &v
}

// NewRulePayload builds the payload for action from flat references. Transfers take
// their source from FromAccountID and fall back to AccountID. It returns nil for an
// unsupported action.
func NewRulePayload(action RuleAction, refs ParticipantRefs) RulePayload {
	switch action {
	case ActionIncome:
		return IncomePayload{AccountID: refValue(refs.AccountID)}
	case ActionTransfer:
		from := refValue(refs.FromAccountID)
		if from == 0 {
			from = refValue(refs.AccountID)
		}
		return TransferPayload{FromAccountID: from, ToAccountID: refValue(refs.ToAccountID)}
	case ActionDCA:
		return DCAPayload{FromAccountID: refValue(refs.FromAccountID), InvestmentID: refValue(refs.InvestmentID)}
	default:
		return nil
	}
}

// RecurringRule is a rule that repeatedly applies a financial effect on a schedule.
type RecurringRule struct {
	ID       int64           `json:"id"`
	Kind     string          `json:"kind"` // Free-form label, e.g. "salary"
	Schedule Schedule        `json:"schedule"`
	Payload  RulePayload     `json:"-"` // nil when the stored action is not supported
	Amount   decimal.Decimal `json:"amount"`
	Note     *string         `json:"note"`
	Enabled  bool            `json:"enabled"`
	NextRun  string          `json:"nextRun"` // Next occurrence not yet applied, "" when unset
	LastRun  *string         `json:"lastRun"` // Most recently applied occurrence
	AuditFields

	// StoredAction and StoredRefs keep the row as persisted, so a rule with an
	// unsupported label survives a read/write round trip unchanged.
	StoredAction string          `json:"-"`
	StoredRefs   ParticipantRefs `json:"-"`
}

// Action returns the rule action, or the stored label when it is unsupported.
func (r RecurringRule) Action() RuleAction {
	if r.Payload != nil {
		return r.Payload.Action()
	}
	return RuleAction(r.StoredAction)
}

// Refs flattens the payload back into storage-level references. Without a payload the
// references read from storage are returned as they were.
func (r RecurringRule) Refs() ParticipantRefs {
	switch p := r.Payload.(type) {
	case IncomePayload:
		return ParticipantRefs{AccountID: refPtr(p.AccountID)}
	case TransferPayload:
		return ParticipantRefs{FromAccountID: refPtr(p.FromAccountID), ToAccountID: refPtr(p.ToAccountID)}
	case DCAPayload:
		return ParticipantRefs{FromAccountID: refPtr(p.FromAccountID), InvestmentID: refPtr(p.InvestmentID)}
	default:
		return r.StoredRefs
	}
}

// NoteOr returns the rule note when it is set and non-empty, otherwise fallback.
func (r RecurringRule) NoteOr(fallback string) string {
	if r.Note != nil && *r.Note != "" {
		return *r.Note
	}
	return fallback
}

// StuckRule reports a rule whose due occurrence was declined during a pass.
type StuckRule struct {
	RuleID  int64  `json:"ruleId"`
	NextRun string `json:"nextRun"`
	Reason  string `json:"reason"`
}

// RunResult aggregates one batch pass over all enabled rules.
// Processed counts every due-occurrence attempt; Executed only the applied ones.
type RunResult struct {
	Processed int         `json:"processed"`
	Executed  int         `json:"executed"`
	Stuck     []StuckRule `json:"stuck"`
}
