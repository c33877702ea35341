// Package recurring computes when recurring rules fire and replays their due
// occurrences against the ledger.
package recurring

import (
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
)

// InitialNextRun returns the first occurrence of s on or after today, as YYYY-MM-DD.
// today is interpreted by its calendar date only. An unknown frequency yields "".
func InitialNextRun(s domain.Schedule, today time.Time) string {
	today = domain.DateOf(today)

	switch s.Frequency.Normalize() {
	case domain.Daily:
		return domain.FormatDate(today)

	case domain.Weekly:
		target, ok := s.TargetWeekday()
		if ok {
			for i := 0; i <= 7; i++ {
				d := today.AddDate(0, 0, i)
				if d.Weekday() == target {
					return domain.FormatDate(d)
				}
			}
		}
		return domain.FormatDate(today)

	case domain.Monthly:
		day := s.TargetMonthDay()
		candidate := monthDate(today.Year(), today.Month(), day)
		if candidate.Before(today) {
			candidate = monthDate(today.Year(), today.Month()+1, day)
		}
		return domain.FormatDate(candidate)

	case domain.Yearly:
		day := s.TargetYearDay()
		candidate := yearDate(today.Year(), day)
		if candidate.Before(today) {
			candidate = yearDate(today.Year()+1, day)
		}
		return domain.FormatDate(candidate)
	}
	return ""
}

// NextRun returns the occurrence following current. It returns "" when current cannot
// be parsed or the frequency is unknown; callers must stop advancing the rule then.
func NextRun(s domain.Schedule, current string) string {
	cur, ok := domain.ParseDate(current)
	if !ok {
		return ""
	}

	switch s.Frequency.Normalize() {
	case domain.Daily:
		return domain.FormatDate(cur.AddDate(0, 0, 1))
	case domain.Weekly:
		return domain.FormatDate(cur.AddDate(0, 0, 7))
	case domain.Monthly:
		return domain.FormatDate(monthDate(cur.Year(), cur.Month()+1, s.TargetMonthDay()))
	case domain.Yearly:
		return domain.FormatDate(yearDate(cur.Year()+1, s.TargetYearDay()))
	}
	return ""
}

// monthDate builds day of the given month, clamped to the month's length.
// month may overflow into the next year (e.g. 13 is January of year+1).
func monthDate(year int, month time.Month, day int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	if n := daysInMonth(first.Year(), first.Month()); day > n {
		day = n
	}
	return first.AddDate(0, 0, day-1)
}

// yearDate builds the 1-based day of year, clamped to 365 or 366.
func yearDate(year, day int) time.Time {
	if n := daysInYear(year); day > n {
		day = n
	}
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day-1)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysInYear(year int) int {
	if isLeapYear(year) {
		return 366
	}
	return 365
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
