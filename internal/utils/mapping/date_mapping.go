package mapping

import (
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
)

// DateToString renders a nullable DATE column, nil staying nil.
func DateToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := domain.FormatDate(*t)
	return &s
}

// StringToDate parses a nullable YYYY-MM-DD value. Empty or malformed input maps to nil.
func StringToDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, ok := domain.ParseDate(*s)
	if !ok {
		return nil
	}
	return &t
}
