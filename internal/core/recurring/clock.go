package recurring

import (
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
)

// Clock supplies the current instant and the calendar date occurrences are due against.
type Clock interface {
	Now() time.Time
	// Today is the current calendar date at UTC midnight.
	Today() time.Time
}

// SystemClock reads the wall clock. Today uses the calendar date in Location,
// or the process local zone when Location is nil.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	return time.Now()
}

func (c SystemClock) Today() time.Time {
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	return domain.DateOf(time.Now().In(loc))
}

// FixedClock always reports the same instant. Useful for tests and replays.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time   { return c.At }
func (c FixedClock) Today() time.Time { return domain.DateOf(c.At) }
