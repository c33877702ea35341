package mapping

import (
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/captainmuzzol/OpenPercento/internal/models"
)

// ToModelRecurringRule flattens the rule payload into nullable reference columns.
// A rule with an unsupported action keeps its stored label and references.
func ToModelRecurringRule(d domain.RecurringRule) models.RecurringRule {
	refs := d.Refs()
	m := models.RecurringRule{
		ID:            d.ID,
		Kind:          d.Kind,
		Action:        string(d.Action()),
		AccountID:     refs.AccountID,
		FromAccountID: refs.FromAccountID,
		ToAccountID:   refs.ToAccountID,
		InvestmentID:  refs.InvestmentID,
		Frequency:     string(d.Schedule.Frequency),
		Weekday:       d.Schedule.Weekday,
		MonthDay:      d.Schedule.MonthDay,
		YearDay:       d.Schedule.YearDay,
		Amount:        d.Amount,
		Note:          d.Note,
		Enabled:       d.Enabled,
		LastRun:       StringToDate(d.LastRun),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if d.NextRun != "" {
		m.NextRun = StringToDate(&d.NextRun)
	}
	return m
}

// ToDomainRecurringRule resolves the flat reference columns into the payload of the
// row's action. Transfers without from_account_id take their source from account_id.
func ToDomainRecurringRule(m models.RecurringRule) domain.RecurringRule {
	d := domain.RecurringRule{
		ID:   m.ID,
		Kind: m.Kind,
		Schedule: domain.Schedule{
			Frequency: domain.Frequency(m.Frequency),
			Weekday:   m.Weekday,
			MonthDay:  m.MonthDay,
			YearDay:   m.YearDay,
		},
		Amount:       m.Amount,
		Note:         m.Note,
		Enabled:      m.Enabled,
		LastRun:      DateToString(m.LastRun),
		StoredAction: m.Action,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	if next := DateToString(m.NextRun); next != nil {
		d.NextRun = *next
	}
	refs := domain.ParticipantRefs{
		AccountID:     m.AccountID,
		FromAccountID: m.FromAccountID,
		ToAccountID:   m.ToAccountID,
		InvestmentID:  m.InvestmentID,
	}
	if action, ok := domain.ParseRuleAction(m.Action); ok {
		d.Payload = domain.NewRulePayload(action, refs)
	} else {
		d.StoredRefs = refs
	}
	return d
}

func ToDomainRecurringRuleSlice(ms []models.RecurringRule) []domain.RecurringRule {
	ds := make([]domain.RecurringRule, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRecurringRule(m)
	}
	return ds
}
