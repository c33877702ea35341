package recurring

import (
	"iter"
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
)

// MaxOccurrencesPerPass bounds how many occurrences of one rule a single pass visits.
// A rule further behind is continued on the next pass.
const MaxOccurrencesPerPass = 366

// Occurrence is one due date of a rule together with the date that follows it.
// Next is "" when no later occurrence can be computed.
type Occurrence struct {
	Date string
	Next string
}

// Occurrences yields the due occurrences of s starting at nextRun, in order, while
// they are on or before today. It yields at most MaxOccurrencesPerPass values and
// stops early when a date cannot be parsed or advanced.
func Occurrences(s domain.Schedule, nextRun string, today time.Time) iter.Seq[Occurrence] {
	today = domain.DateOf(today)
	return func(yield func(Occurrence) bool) {
		current := nextRun
		for i := 0; i < MaxOccurrencesPerPass; i++ {
			d, ok := domain.ParseDate(current)
			if !ok || d.After(today) {
				return
			}
			next := NextRun(s, current)
			if !yield(Occurrence{Date: current, Next: next}) {
				return
			}
			if next == "" {
				return
			}
			current = next
		}
	}
}
