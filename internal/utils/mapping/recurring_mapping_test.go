package mapping

import (
	"testing"
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/captainmuzzol/OpenPercento/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func i64(v int64) *int64 { return &v }

func TestToDomainRecurringRule_TransferFallsBackToAccountID(t *testing.T) {
	m := models.RecurringRule{
		ID:          1,
		Action:      "transfer",
		AccountID:   i64(3),
		ToAccountID: i64(4),
		Frequency:   "monthly",
		Amount:      decimal.NewFromInt(50),
		Enabled:     true,
	}

	d := ToDomainRecurringRule(m)

	assert.Equal(t, domain.TransferPayload{FromAccountID: 3, ToAccountID: 4}, d.Payload)
	assert.Equal(t, "", d.NextRun)
	assert.Nil(t, d.LastRun)
}

func TestToDomainRecurringRule_Dates(t *testing.T) {
	next := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	last := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	d := ToDomainRecurringRule(models.RecurringRule{Action: "income", AccountID: i64(1), NextRun: &next, LastRun: &last})

	assert.Equal(t, "2024-03-31", d.NextRun)
	require.NotNil(t, d.LastRun)
	assert.Equal(t, "2024-02-29", *d.LastRun)
}

func TestToDomainRecurringRule_UnsupportedActionSurvivesRoundTrip(t *testing.T) {
	m := models.RecurringRule{ID: 9, Action: "refund", AccountID: i64(1), ToAccountID: i64(2), InvestmentID: i64(7), Frequency: "daily"}

	d := ToDomainRecurringRule(m)
	assert.Nil(t, d.Payload)
	assert.Equal(t, domain.RuleAction("refund"), d.Action())

	back := ToModelRecurringRule(d)
	assert.Equal(t, "refund", back.Action)
	assert.Equal(t, i64(1), back.AccountID)
	assert.Nil(t, back.FromAccountID)
	assert.Equal(t, i64(2), back.ToAccountID)
	assert.Equal(t, i64(7), back.InvestmentID)
}

func TestRecurringRule_RoundTrip(t *testing.T) {
	last := "2024-01-31"
	monthDay := 31
	d := domain.RecurringRule{
		ID:       5,
		Kind:     "invest",
		Schedule: domain.Schedule{Frequency: domain.Monthly, MonthDay: &monthDay},
		Payload:  domain.DCAPayload{FromAccountID: 2, InvestmentID: 6},
		Amount:   decimal.RequireFromString("12.5"),
		Enabled:  true,
		NextRun:  "2024-02-29",
		LastRun:  &last,

		StoredAction: "dca",
	}

	m := ToModelRecurringRule(d)
	assert.Equal(t, "dca", m.Action)
	assert.Nil(t, m.AccountID)
	assert.Equal(t, int64(2), *m.FromAccountID)
	assert.Equal(t, int64(6), *m.InvestmentID)

	assert.Equal(t, d, ToDomainRecurringRule(m))
}

func TestSettingMapping_EmptyValueIsNull(t *testing.T) {
	m := ToModelSetting(domain.Setting{Key: "theme"})
	assert.Equal(t, "null", m.Value)
	assert.JSONEq(t, `{"dark":true}`, string(ToDomainSetting(models.Setting{Key: "theme", Value: `{"dark":true}`}).Value))
}
